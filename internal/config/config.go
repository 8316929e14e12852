package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr           string
		TrustedProxies []string
	}
	Backend struct {
		BaseURL     string
		Timeout     time.Duration
		SeedOnEmpty bool
	}
	Session struct {
		DBPath        string
		CookieName    string
		Secure        bool
		PurgeInterval time.Duration
	}
	Security struct {
		CSRFKey string
	}
	RateLimit struct {
		PerMinute int
		Burst     int
	}
	Cache struct {
		RedisAddr       string
		RedisPassword   string
		RedisDB         int
		UniversitiesTTL time.Duration
	}
	Metrics struct {
		Enabled bool
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	// .env never overrides variables already set in the environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PROPSOURCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:3000")
	v.SetDefault("server.trustedproxies", []string{})
	v.SetDefault("backend.baseurl", "http://localhost:8000")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.seedonempty", true)
	v.SetDefault("session.dbpath", "data/sessions.db")
	v.SetDefault("session.cookiename", "ps_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.purgeinterval", "15m")
	v.SetDefault("security.csrfkey", "")
	v.SetDefault("ratelimit.perminute", 10)
	v.SetDefault("ratelimit.burst", 5)
	v.SetDefault("cache.redisaddr", "")
	v.SetDefault("cache.redispassword", "")
	v.SetDefault("cache.redisdb", 0)
	v.SetDefault("cache.universitiesttl", "10m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base url %q is not an absolute url", c.Backend.BaseURL)
	}
	if c.Session.CookieName == "" {
		return errors.New("session cookie name is required")
	}
	if c.Security.CSRFKey != "" && len(c.Security.CSRFKey) != 32 {
		return errors.New("csrf key must be 32 bytes")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return errors.New("rate limit values must not be negative")
	}
	return nil
}
