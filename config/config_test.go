package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("DB_READ_DSNS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL())
	assert.Equal(t, "https://kauth.kakao.com/oauth/authorize", cfg.KakaoAuthURL)
	assert.Equal(t, "https://kauth.kakao.com/oauth/token", cfg.KakaoTokenURL)
	assert.Equal(t, "https://kapi.kakao.com/v2/user/me", cfg.KakaoUserInfoURL)
}

func TestInitDatabaseSQLite(t *testing.T) {
	type widget struct {
		ID   uint
		Name string
	}
	db, err := InitDatabase(AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
		LogLevel:       "silent",
	}, &widget{})
	require.NoError(t, err)
	defer func() { _ = CloseDatabase(db) }()

	require.NoError(t, db.Create(&widget{Name: "bolt"}).Error)
	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestInitDatabaseUnknownDriver(t *testing.T) {
	_, err := InitDatabase(AppConfig{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestPrimaryDSN(t *testing.T) {
	dsn := primaryDSN(AppConfig{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBName: "community"})
	assert.Equal(t, "u:p@tcp(h:3306)/community?charset=utf8mb4&parseTime=True&loc=Local", dsn)
	assert.Equal(t, "x.db", primaryDSN(AppConfig{DBDriver: "sqlite", DBName: "x"}))
}
