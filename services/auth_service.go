package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// TokenType is echoed to clients next to every issued access token.
const TokenType = "bearer"

// LoginResult is what a successful social login hands back to the client.
type LoginResult struct {
	User        *models.User
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService turns a provider authorization code into a local session.
type AuthService struct {
	provider IdentityProvider
	users    repository.UserRepository
	tokens   *utils.TokenIssuer
	ttl      time.Duration
}

// NewAuthService wires the login flow. ttl <= 0 uses the issuer default.
func NewAuthService(provider IdentityProvider, users repository.UserRepository, tokens *utils.TokenIssuer, ttl time.Duration) *AuthService {
	return &AuthService{provider: provider, users: users, tokens: tokens, ttl: ttl}
}

// AuthCodeURL returns the provider consent URL for state.
func (s *AuthService) AuthCodeURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// Login resolves code with the provider, finds or creates the local user and issues a token.
// Provider failures are returned before any row is written.
func (s *AuthService) Login(ctx context.Context, code string) (*LoginResult, error) {
	profile, err := s.provider.Resolve(ctx, code)
	if err != nil {
		return nil, err
	}
	user, err := s.FindOrCreate(ctx, profile)
	if err != nil {
		return nil, err
	}
	token, exp, err := s.tokens.Issue(user.ID, s.ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: token, ExpiresAt: exp}, nil
}

// FindOrCreate returns the user bound to profile.SocialID, creating it on first login.
// Existing users are returned unchanged. A concurrent first login surfaces repository.ErrConflict.
func (s *AuthService) FindOrCreate(ctx context.Context, profile *SocialProfile) (*models.User, error) {
	user, err := s.users.GetBySocialID(ctx, profile.SocialID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = models.NewSocialUser(profile.SocialID, profile.Nickname, profile.ProfileImage)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	utils.Logger.Info("registered social user", zap.Uint("user_id", user.ID), zap.String("social_id", user.SocialID))
	return user, nil
}
