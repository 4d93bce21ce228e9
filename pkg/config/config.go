package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Places struct {
		BaseURL string        `yaml:"base_url"`
		APIKey  string        `yaml:"api_key"`
		Country string        `yaml:"country"`
		Types   []string      `yaml:"types"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"places"`
	Redis struct {
		Enabled     bool          `yaml:"enabled"`
		Host        string        `yaml:"host"`
		Port        int           `yaml:"port"`
		Password    string        `yaml:"password"`
		DB          int           `yaml:"db"`
		TLSEnabled  bool          `yaml:"tls_enabled"`
		TLSCertFile string        `yaml:"tls_cert_file"`
		PlaceTTL    time.Duration `yaml:"place_ttl"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		Disabled  bool   `yaml:"disabled"`
	} `yaml:"auth"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute"`
		Burst     int `yaml:"burst"`
	} `yaml:"rate_limit"`
	Address struct {
		// Strict is the default validation profile when a request omits it.
		Strict *bool `yaml:"strict"`
	} `yaml:"address"`
	Modes struct {
		Debug         bool          `yaml:"debug"`
		FallbackRetry time.Duration `yaml:"fallback_retry"`
	} `yaml:"modes"`
}

// StrictDefault reports the configured validation profile, true when unset.
func (c *Config) StrictDefault() bool {
	return c.Address.Strict == nil || *c.Address.Strict
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. A missing file is not an error; the
// environment and defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Server.Port = portNum
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if baseURL := os.Getenv("PLACES_BASE_URL"); baseURL != "" {
		cfg.Places.BaseURL = baseURL
	}
	if apiKey := os.Getenv("PLACES_API_KEY"); apiKey != "" {
		cfg.Places.APIKey = apiKey
	}
	if country := os.Getenv("PLACES_COUNTRY"); country != "" {
		cfg.Places.Country = country
	}
	if types := os.Getenv("PLACES_TYPES"); types != "" {
		cfg.Places.Types = splitList(types)
	}
	if enabled := os.Getenv("REDIS_ENABLED"); enabled != "" {
		cfg.Redis.Enabled = enabled == "true"
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %w", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		cfg.Redis.DB = dbNum
	}
	if tlsEnabled := os.Getenv("REDIS_TLS_ENABLED"); tlsEnabled != "" {
		cfg.Redis.TLSEnabled = tlsEnabled == "true"
	}
	if tlsCertFile := os.Getenv("REDIS_TLS_CERT_FILE"); tlsCertFile != "" {
		cfg.Redis.TLSCertFile = tlsCertFile
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if disabled := os.Getenv("AUTH_DISABLED"); disabled != "" {
		cfg.Auth.Disabled = disabled == "true"
	}
	if strict := os.Getenv("ADDRESS_STRICT"); strict != "" {
		v := strict != "false"
		cfg.Address.Strict = &v
	}
	if debug := os.Getenv("DEBUG_MODE"); debug != "" {
		cfg.Modes.Debug = debug == "true"
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.Modes.Debug {
		cfg.Log.Level = "DEBUG"
	}
	if cfg.Modes.FallbackRetry == 0 {
		cfg.Modes.FallbackRetry = 5 * time.Minute
	}
	if cfg.Places.Country == "" {
		cfg.Places.Country = "us"
	}
	if len(cfg.Places.Types) == 0 {
		cfg.Places.Types = []string{"address"}
	}
	if cfg.Places.Timeout == 0 {
		cfg.Places.Timeout = 10 * time.Second
	}
	cfg.Places.BaseURL = strings.TrimRight(cfg.Places.BaseURL, "/")
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.PlaceTTL == 0 {
		cfg.Redis.PlaceTTL = 24 * time.Hour
	}
	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 120
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 20
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535")
	}
	if c.Places.BaseURL == "" {
		return fmt.Errorf("PLACES_BASE_URL is required")
	}
	if c.Redis.Port <= 0 || c.Redis.Port > 65535 {
		return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must be non-negative")
	}
	if c.Redis.TLSEnabled && c.Redis.TLSCertFile != "" {
		if _, err := os.Stat(c.Redis.TLSCertFile); os.IsNotExist(err) {
			return fmt.Errorf("TLS certificate file does not exist: %s", c.Redis.TLSCertFile)
		}
	}
	if !c.Auth.Disabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required unless auth is disabled")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must be non-negative")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
