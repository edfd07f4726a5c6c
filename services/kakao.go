package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/cppla/community/config"
)

var (
	// ErrProviderRejected means the provider refused the authorization code.
	ErrProviderRejected = errors.New("identity provider rejected the authorization code")
	// ErrProviderUnavailable means the provider could not be reached or answered garbage.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// ProviderError carries the provider's own explanation next to the failure kind.
type ProviderError struct {
	Kind   error
	Detail string
	Cause  error
}

func (e *ProviderError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *ProviderError) Unwrap() error { return e.Kind }

// SocialProfile is the identity the provider vouches for.
type SocialProfile struct {
	SocialID     string
	Nickname     string
	ProfileImage *string
}

// IdentityProvider exchanges an authorization code for a verified profile.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Resolve(ctx context.Context, code string) (*SocialProfile, error)
}

// KakaoProvider implements IdentityProvider against Kakao's OAuth and user APIs.
type KakaoProvider struct {
	oauth       *oauth2.Config
	userInfoURL string
	client      *http.Client
}

// NewKakaoProvider builds a provider from server config. A nil client gets a 10s timeout client.
func NewKakaoProvider(cfg config.AppConfig, client *http.Client) *KakaoProvider {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &KakaoProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.KakaoClientID,
			ClientSecret: cfg.KakaoClientSecret,
			RedirectURL:  cfg.KakaoRedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.KakaoAuthURL,
				TokenURL:  cfg.KakaoTokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		userInfoURL: cfg.KakaoUserInfoURL,
		client:      client,
	}
}

// AuthCodeURL returns the consent page URL the browser should visit.
func (k *KakaoProvider) AuthCodeURL(state string) string {
	return k.oauth.AuthCodeURL(state)
}

// Resolve exchanges code once and fetches the account profile. It never retries.
func (k *KakaoProvider) Resolve(ctx context.Context, code string) (*SocialProfile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, k.client)
	tok, err := k.oauth.Exchange(ctx, code)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			return nil, &ProviderError{Kind: ErrProviderRejected, Detail: retrieveDetail(re), Cause: err}
		}
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "token exchange failed", Cause: err}
	}
	return k.fetchProfile(ctx, tok.AccessToken)
}

type kakaoUser struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname     string `json:"nickname"`
		ProfileImage string `json:"profile_image"`
	} `json:"properties"`
	KakaoAccount struct {
		Profile struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func (k *KakaoProvider) fetchProfile(ctx context.Context, accessToken string) (*SocialProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.userInfoURL, nil)
	if err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "build user info request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "user info request failed", Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "read user info", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{
			Kind:   ErrProviderUnavailable,
			Detail: fmt.Sprintf("user info returned %d: %s", resp.StatusCode, body),
		}
	}

	var u kakaoUser
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "decode user info", Cause: err}
	}
	if u.ID == 0 {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Detail: "user info has no id"}
	}

	profile := &SocialProfile{
		SocialID: strconv.FormatInt(u.ID, 10),
		Nickname: firstNonEmpty(u.Properties.Nickname, u.KakaoAccount.Profile.Nickname),
	}
	if img := firstNonEmpty(u.Properties.ProfileImage, u.KakaoAccount.Profile.ProfileImageURL); img != "" {
		profile.ProfileImage = &img
	}
	return profile, nil
}

// retrieveDetail prefers the provider's error_description over the raw body.
func retrieveDetail(re *oauth2.RetrieveError) string {
	var payload struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if json.Unmarshal(re.Body, &payload) == nil {
		if payload.Description != "" {
			return payload.Description
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if len(re.Body) > 0 {
		return string(re.Body)
	}
	if re.Response != nil {
		return re.Response.Status
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
