package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSigningKey is used when auth.signing_key is not configured. main logs
// a warning when it is in effect.
const DefaultSigningKey = "dev-signing-key-change-me"

type Config struct {
	Port     string
	LogLevel string
	DBPath   string
	Auth     AuthConfig
	Remote   RemoteConfig
}

type AuthConfig struct {
	SigningKey   string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
}

type RemoteConfig struct {
	DealersURL    string
	SentimentURL  string
	SentimentPath string
	ReviewPath    string
	Timeout       time.Duration
	RateLimit     float64 // requests per second; 0 disables limiting
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.session_ttl", 24*time.Hour)
	v.SetDefault("auth.cookie_name", "session_token")
	v.SetDefault("auth.cookie_secure", false)

	v.SetDefault("remote.dealers_url", "http://localhost:3030")
	v.SetDefault("remote.sentiment_url", "http://localhost:5050")
	v.SetDefault("remote.sentiment_path", "/analyze")
	v.SetDefault("remote.review_path", "/insert_review")
	v.SetDefault("remote.timeout", 10*time.Second)
	v.SetDefault("remote.rate_limit", 0)
}

// Load reads configs/config.yml (if present) from the given search paths,
// then applies environment overrides. A .env file in the working directory is
// loaded into the environment first. DB_PATH overrides db.path and so on.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DBPath:   v.GetString("db.path"),
		Auth: AuthConfig{
			SigningKey:   v.GetString("auth.signing_key"),
			SessionTTL:   v.GetDuration("auth.session_ttl"),
			CookieName:   v.GetString("auth.cookie_name"),
			CookieSecure: v.GetBool("auth.cookie_secure"),
		},
		Remote: RemoteConfig{
			DealersURL:    strings.TrimRight(v.GetString("remote.dealers_url"), "/"),
			SentimentURL:  strings.TrimRight(v.GetString("remote.sentiment_url"), "/"),
			SentimentPath: v.GetString("remote.sentiment_path"),
			ReviewPath:    v.GetString("remote.review_path"),
			Timeout:       v.GetDuration("remote.timeout"),
			RateLimit:     v.GetFloat64("remote.rate_limit"),
		},
	}
	return cfg, cfg.validate()
}

// UsesDefaultSigningKey reports whether no signing key was configured.
func (c *Config) UsesDefaultSigningKey() bool {
	return c.Auth.SigningKey == DefaultSigningKey
}

func (c *Config) validate() error {
	if c.Auth.SigningKey == "" {
		c.Auth.SigningKey = DefaultSigningKey
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive, got %s", c.Auth.SessionTTL)
	}
	if c.Remote.DealersURL == "" {
		return errors.New("remote.dealers_url is required")
	}
	if c.Remote.SentimentURL == "" {
		return errors.New("remote.sentiment_url is required")
	}
	if c.Remote.RateLimit < 0 {
		return fmt.Errorf("remote.rate_limit must be >= 0, got %v", c.Remote.RateLimit)
	}
	return nil
}
