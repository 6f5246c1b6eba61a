package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Provider struct {
		BaseURL               string `yaml:"base_url"`
		APIKey                string `yaml:"api_key"`
		RateLimitDelaySeconds int    `yaml:"rate_limit_delay_seconds"`
		CacheTTLMinutes       int    `yaml:"cache_ttl_minutes"`
	} `yaml:"provider"`
	Tickers  []string `yaml:"tickers"`
	Analysis struct {
		ShortSMAPeriod  int `yaml:"short_sma_period"`
		LongSMAPeriod   int `yaml:"long_sma_period"`
		RSIPeriod       int `yaml:"rsi_period"`
		BollingerPeriod int `yaml:"bollinger_period"`
		MACDMinPoints   int `yaml:"macd_min_points"`
		StaleAfterDays  int `yaml:"stale_after_days"`
	} `yaml:"analysis"`
	Cache struct {
		Backend       string `yaml:"backend"` // memory, sqlite or redis
		SQLitePath    string `yaml:"sqlite_path"`
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
	} `yaml:"cache"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// RateLimitDelay returns the minimum interval between outbound provider calls.
func (c *Config) RateLimitDelay() time.Duration {
	return time.Duration(c.Provider.RateLimitDelaySeconds) * time.Second
}

// CacheTTL returns how long a cached provider payload stays valid.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Provider.CacheTTLMinutes) * time.Minute
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PROVIDER_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitTickers(v)
	}
	if v := os.Getenv("RATE_LIMIT_DELAY_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Provider.RateLimitDelaySeconds = n
		}
	}
	if v := os.Getenv("CACHE_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Provider.CacheTTLMinutes = n
		}
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://www.alphavantage.co"
	}
	if cfg.Provider.RateLimitDelaySeconds == 0 {
		cfg.Provider.RateLimitDelaySeconds = 12
	}
	if cfg.Provider.CacheTTLMinutes == 0 {
		cfg.Provider.CacheTTLMinutes = 60
	}
	if cfg.Analysis.ShortSMAPeriod == 0 {
		cfg.Analysis.ShortSMAPeriod = 50
	}
	if cfg.Analysis.LongSMAPeriod == 0 {
		cfg.Analysis.LongSMAPeriod = 100
	}
	if cfg.Analysis.RSIPeriod == 0 {
		cfg.Analysis.RSIPeriod = 14
	}
	if cfg.Analysis.BollingerPeriod == 0 {
		cfg.Analysis.BollingerPeriod = 20
	}
	if cfg.Analysis.MACDMinPoints == 0 {
		cfg.Analysis.MACDMinPoints = 35
	}
	if cfg.Analysis.StaleAfterDays == 0 {
		cfg.Analysis.StaleAfterDays = 3
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/quote_cache.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Provider.APIKey == "" {
		return fmt.Errorf("provider.api_key is required")
	}
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	if c.Provider.RateLimitDelaySeconds < 0 {
		return fmt.Errorf("provider.rate_limit_delay_seconds must not be negative")
	}
	if c.Analysis.ShortSMAPeriod <= 0 || c.Analysis.LongSMAPeriod <= 0 {
		return fmt.Errorf("analysis SMA periods must be positive")
	}
	if c.Analysis.ShortSMAPeriod >= c.Analysis.LongSMAPeriod {
		return fmt.Errorf("analysis.short_sma_period must be less than long_sma_period")
	}
	switch c.Cache.Backend {
	case "memory", "sqlite":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be memory, sqlite or redis, got %q", c.Cache.Backend)
	}
	return nil
}

func splitTickers(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
