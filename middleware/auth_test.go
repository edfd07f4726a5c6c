package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/utils"
)

// memUsers is a map-backed UserRepository.
type memUsers struct {
	byID map[uint]*models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetBySocialID(_ context.Context, socialID string) (*models.User, error) {
	for _, u := range m.byID {
		if u.SocialID == socialID {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) Update(_ context.Context, u *models.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

func newGate(t *testing.T) (*gin.Engine, *utils.TokenIssuer, *memUsers) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := utils.NewTokenIssuer("gate-secret", time.Hour)
	users := &memUsers{byID: map[uint]*models.User{
		1: {ID: 1, SocialID: "a", Nickname: "active", IsActive: true},
		2: {ID: 2, SocialID: "b", Nickname: "dormant", IsActive: false},
	}}
	r := gin.New()
	r.GET("/me", AuthRequired(tokens, users), func(ctx *gin.Context) {
		u, ok := CurrentUser(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"id": u.ID})
	})
	return r, tokens, users
}

func call(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredResolvesUser(t *testing.T) {
	r, tokens, _ := newGate(t)
	token, _, err := tokens.Issue(1, 0)
	require.NoError(t, err)

	w := call(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())

	// scheme is case-insensitive
	assert.Equal(t, http.StatusOK, call(r, "bearer "+token).Code)
}

func TestAuthRequiredRejections(t *testing.T) {
	r, tokens, _ := newGate(t)
	unknown, _, err := tokens.Issue(99, 0)
	require.NoError(t, err)
	foreign, _, err := utils.NewTokenIssuer("other", 0).Issue(1, 0)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"no header":      "",
		"basic scheme":   "Basic abc",
		"empty token":    "Bearer ",
		"foreign secret": "Bearer " + foreign,
		"unknown user":   "Bearer " + unknown,
	} {
		t.Run(name, func(t *testing.T) {
			w := call(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestAuthRequiredInactiveUser(t *testing.T) {
	r, tokens, _ := newGate(t)
	token, _, err := tokens.Issue(2, 0)
	require.NoError(t, err)

	w := call(r, "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inactive account")
}

func TestAuthRequiredRevokedToken(t *testing.T) {
	utils.SetRedis(nil)
	r, tokens, _ := newGate(t)
	token, exp, err := tokens.Issue(1, 0)
	require.NoError(t, err)
	claims, err := tokens.Parse(token)
	require.NoError(t, err)

	utils.BlacklistToken(context.Background(), claims.ID, exp)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer "+token).Code)
}
