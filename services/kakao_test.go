package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cppla/community/config"
	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

type fakeKakao struct {
	server      *httptest.Server
	exchanges   atomic.Int32
	rejectCode  string
	profileJSON string
	profileCode int
}

func newFakeKakao(t *testing.T) *fakeKakao {
	t.Helper()
	f := &fakeKakao{
		rejectCode:  "bad-code",
		profileCode: http.StatusOK,
		profileJSON: `{"id":12345,"properties":{"nickname":"kim","profile_image":"http://img/k.png"}}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.exchanges.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		if r.PostForm.Get("code") == f.rejectCode {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"authorization code not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "provider-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/user/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.profileCode)
		_, _ = w.Write([]byte(f.profileJSON))
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeKakao) config() config.AppConfig {
	return config.AppConfig{
		KakaoClientID:     "client-id",
		KakaoClientSecret: "client-secret",
		KakaoRedirectURI:  "http://localhost:3000/auth/kakao/callback",
		KakaoAuthURL:      f.server.URL + "/oauth/authorize",
		KakaoTokenURL:     f.server.URL + "/oauth/token",
		KakaoUserInfoURL:  f.server.URL + "/v2/user/me",
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDatabase(config.AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		LogLevel:       "silent",
	}, models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })
	return db
}

func TestKakaoResolve(t *testing.T) {
	f := newFakeKakao(t)
	p := NewKakaoProvider(f.config(), f.server.Client())

	profile, err := p.Resolve(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "12345", profile.SocialID)
	assert.Equal(t, "kim", profile.Nickname)
	require.NotNil(t, profile.ProfileImage)
	assert.Equal(t, "http://img/k.png", *profile.ProfileImage)
}

func TestKakaoResolveFallsBackToAccountProfile(t *testing.T) {
	f := newFakeKakao(t)
	f.profileJSON = `{"id":7,"kakao_account":{"profile":{"nickname":"lee"}}}`
	p := NewKakaoProvider(f.config(), f.server.Client())

	profile, err := p.Resolve(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "7", profile.SocialID)
	assert.Equal(t, "lee", profile.Nickname)
	assert.Nil(t, profile.ProfileImage)
}

func TestKakaoRejectedCodeCarriesDetail(t *testing.T) {
	f := newFakeKakao(t)
	p := NewKakaoProvider(f.config(), f.server.Client())

	_, err := p.Resolve(context.Background(), "bad-code")
	require.ErrorIs(t, err, ErrProviderRejected)
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "authorization code not found", pe.Detail)
	assert.EqualValues(t, 1, f.exchanges.Load())
}

func TestKakaoUserInfoFailureIsUnavailable(t *testing.T) {
	f := newFakeKakao(t)
	f.profileCode = http.StatusInternalServerError
	f.profileJSON = `{"msg":"down"}`
	p := NewKakaoProvider(f.config(), f.server.Client())

	_, err := p.Resolve(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestAuthCodeURL(t *testing.T) {
	f := newFakeKakao(t)
	p := NewKakaoProvider(f.config(), nil)
	u := p.AuthCodeURL("xyz")
	assert.Contains(t, u, f.server.URL+"/oauth/authorize?")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "state=xyz")
	assert.Contains(t, u, "response_type=code")
}

func TestLoginCreatesUserOnceAndIssuesToken(t *testing.T) {
	f := newFakeKakao(t)
	users := repository.NewUserRepository(openTestDB(t))
	tokens := utils.NewTokenIssuer("secret", 0)
	svc := NewAuthService(NewKakaoProvider(f.config(), f.server.Client()), users, tokens, 0)
	ctx := context.Background()

	first, err := svc.Login(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "12345", first.User.SocialID)
	assert.True(t, first.User.IsActive)
	assert.False(t, first.User.IsAdmin)

	claims, err := tokens.Parse(first.AccessToken)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, id)

	// profile changes upstream are not synced into the existing row
	f.profileJSON = `{"id":12345,"properties":{"nickname":"renamed"}}`
	second, err := svc.Login(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "kim", second.User.Nickname)
}

func TestLoginFailureCreatesNoUser(t *testing.T) {
	f := newFakeKakao(t)
	db := openTestDB(t)
	svc := NewAuthService(
		NewKakaoProvider(f.config(), f.server.Client()),
		repository.NewUserRepository(db),
		utils.NewTokenIssuer("secret", 0),
		0,
	)

	_, err := svc.Login(context.Background(), "bad-code")
	require.ErrorIs(t, err, ErrProviderRejected)

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFindOrCreateDefaultsNickname(t *testing.T) {
	svc := NewAuthService(nil, repository.NewUserRepository(openTestDB(t)), utils.NewTokenIssuer("s", 0), 0)
	u, err := svc.FindOrCreate(context.Background(), &SocialProfile{SocialID: "55"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNickname, u.Nickname)
}
