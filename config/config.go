package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2/kakao"
)

// AppConfig holds environment driven configuration values.
// Secrets have no defaults in code and must come from .env, config.json or the environment.
type AppConfig struct {
	AppPort        string
	GinMode        string
	GinPath        string
	AllowedOrigins []string
	// Session tokens
	JWTSecret     string
	TokenTTLHours int
	// Database
	DBDriver        string
	DatabaseURI     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBReadDSNs      []string
	DBMaxIdleConns  int
	DBMaxOpenConns  int
	DBConnLifetimeM int
	// Kakao login
	KakaoClientID     string
	KakaoClientSecret string
	KakaoRedirectURI  string
	KakaoAuthURL      string
	KakaoTokenURL     string
	KakaoUserInfoURL  string
	// Redis for OAuth state and revoked tokens
	RedisEnabled  bool
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// ErrMissingJWTSecret is returned by Load when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Load reads configuration during boot.
// Precedence: .env -> config/config.json -> defaults -> environment variables.
func Load() (AppConfig, error) {
	// .env only seeds variables that are not already set in the process environment.
	_ = godotenv.Load()

	var c AppConfig
	if err := loadJSONConfig(filepath.Join("config", "config.json"), &c); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&c)
	applyEnvOverrides(&c)

	if c.JWTSecret == "" {
		return AppConfig{}, ErrMissingJWTSecret
	}

	return c, nil
}

// TokenTTL is the default lifetime of issued session tokens.
func (c AppConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads the grouped JSON file into out if present. A missing file is not an error.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var raw struct {
		App struct {
			AppPort        string   `json:"AppPort"`
			GinMode        string   `json:"GinMode"`
			GinPath        string   `json:"GinPath"`
			AllowedOrigins []string `json:"AllowedOrigins"`
			JWTSecret      string   `json:"JWTSecret"`
			TokenTTLHours  int      `json:"TokenTTLHours"`
		} `json:"app"`
		Database struct {
			Driver       string   `json:"Driver"`
			DatabaseURI  string   `json:"DatabaseURI"`
			DBHost       string   `json:"DBHost"`
			DBPort       string   `json:"DBPort"`
			DBUser       string   `json:"DBUser"`
			DBPassword   string   `json:"DBPassword"`
			DBName       string   `json:"DBName"`
			ReadDSNs     []string `json:"ReadDSNs"`
			MaxIdleConns int      `json:"MaxIdleConns"`
			MaxOpenConns int      `json:"MaxOpenConns"`
		} `json:"database"`
		Kakao struct {
			ClientID     string `json:"ClientID"`
			ClientSecret string `json:"ClientSecret"`
			RedirectURI  string `json:"RedirectURI"`
			AuthURL      string `json:"AuthURL"`
			TokenURL     string `json:"TokenURL"`
			UserInfoURL  string `json:"UserInfoURL"`
		} `json:"kakao"`
		Redis struct {
			Enabled  bool   `json:"Enabled"`
			Host     string `json:"Host"`
			Port     int    `json:"Port"`
			DB       int    `json:"DB"`
			Password string `json:"Password"`
		} `json:"redis"`
		Log struct {
			Level      string `json:"Level"`
			Path       string `json:"Path"`
			MaxSizeMB  int    `json:"MaxSizeMB"`
			MaxBackups int    `json:"MaxBackups"`
			MaxAgeDays int    `json:"MaxAgeDays"`
			Compress   bool   `json:"Compress"`
		} `json:"log"`
	}
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	out.AppPort = raw.App.AppPort
	out.GinMode = raw.App.GinMode
	out.GinPath = raw.App.GinPath
	out.AllowedOrigins = raw.App.AllowedOrigins
	out.JWTSecret = raw.App.JWTSecret
	out.TokenTTLHours = raw.App.TokenTTLHours

	out.DBDriver = raw.Database.Driver
	out.DatabaseURI = raw.Database.DatabaseURI
	out.DBHost = raw.Database.DBHost
	out.DBPort = raw.Database.DBPort
	out.DBUser = raw.Database.DBUser
	out.DBPassword = raw.Database.DBPassword
	out.DBName = raw.Database.DBName
	out.DBReadDSNs = raw.Database.ReadDSNs
	out.DBMaxIdleConns = raw.Database.MaxIdleConns
	out.DBMaxOpenConns = raw.Database.MaxOpenConns

	out.KakaoClientID = raw.Kakao.ClientID
	out.KakaoClientSecret = raw.Kakao.ClientSecret
	out.KakaoRedirectURI = raw.Kakao.RedirectURI
	out.KakaoAuthURL = raw.Kakao.AuthURL
	out.KakaoTokenURL = raw.Kakao.TokenURL
	out.KakaoUserInfoURL = raw.Kakao.UserInfoURL

	out.RedisEnabled = raw.Redis.Enabled
	out.RedisHost = raw.Redis.Host
	out.RedisPort = raw.Redis.Port
	out.RedisDB = raw.Redis.DB
	out.RedisPassword = raw.Redis.Password

	out.LogLevel = raw.Log.Level
	out.LogPath = raw.Log.Path
	out.LogMaxSizeMB = raw.Log.MaxSizeMB
	out.LogMaxBackups = raw.Log.MaxBackups
	out.LogMaxAgeDays = raw.Log.MaxAgeDays
	out.LogCompress = raw.Log.Compress
	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8000"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	if c.TokenTTLHours == 0 {
		c.TokenTTLHours = 24
	}
	if c.DBDriver == "" {
		c.DBDriver = "mysql"
	}
	if c.DBHost == "" {
		c.DBHost = "127.0.0.1"
	}
	if c.DBPort == "" {
		c.DBPort = "3306"
	}
	if c.DBUser == "" {
		c.DBUser = "root"
	}
	if c.DBName == "" {
		c.DBName = "community"
	}
	if c.DBMaxIdleConns == 0 {
		c.DBMaxIdleConns = 5
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 20
	}
	if c.DBConnLifetimeM == 0 {
		c.DBConnLifetimeM = 60
	}
	if c.KakaoAuthURL == "" {
		c.KakaoAuthURL = kakao.Endpoint.AuthURL
	}
	if c.KakaoTokenURL == "" {
		c.KakaoTokenURL = kakao.Endpoint.TokenURL
	}
	if c.KakaoUserInfoURL == "" {
		c.KakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := getEnv("JWT_SECRET", ""); v != "" {
		c.JWTSecret = v
	}
	if v := getEnv("TOKEN_TTL_HOURS", ""); v != "" {
		c.TokenTTLHours = mustParseInt(v)
	}
	if v := getEnv("DB_DRIVER", ""); v != "" {
		c.DBDriver = strings.ToLower(v)
	}
	if v := getEnv("DATABASE_URI", ""); v != "" {
		c.DatabaseURI = v
	}
	if v := getEnv("DB_HOST", ""); v != "" {
		c.DBHost = v
	}
	if v := getEnv("DB_PORT", ""); v != "" {
		c.DBPort = v
	}
	if v := getEnv("DB_USER", ""); v != "" {
		c.DBUser = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		c.DBPassword = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		c.DBName = v
	}
	if v := getEnv("DB_READ_DSNS", ""); v != "" {
		c.DBReadDSNs = splitAndTrim(v)
	}
	if v := getEnv("DB_MAX_IDLE_CONNS", ""); v != "" {
		c.DBMaxIdleConns = mustParseInt(v)
	}
	if v := getEnv("DB_MAX_OPEN_CONNS", ""); v != "" {
		c.DBMaxOpenConns = mustParseInt(v)
	}
	if v := getEnv("KAKAO_CLIENT_ID", ""); v != "" {
		c.KakaoClientID = v
	}
	if v := getEnv("KAKAO_CLIENT_SECRET", ""); v != "" {
		c.KakaoClientSecret = v
	}
	if v := getEnv("KAKAO_REDIRECT_URI", ""); v != "" {
		c.KakaoRedirectURI = v
	}
	if v := getEnv("KAKAO_AUTH_URL", ""); v != "" {
		c.KakaoAuthURL = v
	}
	if v := getEnv("KAKAO_TOKEN_URL", ""); v != "" {
		c.KakaoTokenURL = v
	}
	if v := getEnv("KAKAO_USERINFO_URL", ""); v != "" {
		c.KakaoUserInfoURL = v
	}
	if v := getEnv("REDIS_ENABLED", ""); v != "" {
		c.RedisEnabled = v == "true"
	}
	if v := getEnv("REDIS_HOST", ""); v != "" {
		c.RedisHost = v
	}
	if v := getEnv("REDIS_PORT", ""); v != "" {
		c.RedisPort = mustParseInt(v)
	}
	if v := getEnv("REDIS_DB", ""); v != "" {
		c.RedisDB = mustParseInt(v)
	}
	if v := getEnv("REDIS_PASSWORD", ""); v != "" {
		c.RedisPassword = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = mustParseInt(v)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = mustParseInt(v)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}
}

func mustParseInt(val string) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("invalid integer value %s: %v", val, err)
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
