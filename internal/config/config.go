package config

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "NEXUS_CONFIG"
	geminiKeyEnv   = "GEMINI_API_KEY"
	finnhubKeyEnv  = "FINNHUB_API_KEY"
	portEnv        = "PORT"
	frontendURLEnv = "FRONTEND_URL"
)

// Config holds all runtime settings for the service.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Market  MarketConfig  `yaml:"market"`
	Auth    AuthConfig    `yaml:"auth"`
	Refresh RefreshConfig `yaml:"refresh"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	FrontendURL string `yaml:"frontendUrl"`
}

type AIConfig struct {
	APIKey   string `yaml:"apiKey"`
	Model    string `yaml:"model"`
	TTSModel string `yaml:"ttsModel"`
	Voice    string `yaml:"voice"`
}

type MarketConfig struct {
	FinnhubAPIKey string `yaml:"finnhubApiKey"`
}

// DemoAccount is a credential bypass granted when the identity provider
// rejects a login for one of these exact addresses.
type DemoAccount struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Admin bool   `yaml:"admin"`
}

type AuthConfig struct {
	AdminEmail   string        `yaml:"adminEmail"`
	DemoAccounts []DemoAccount `yaml:"demoAccounts"`
}

// RefreshConfig bounds the feed refresh pipeline. AllowLists maps a feed
// category to the curated subset of source ids eligible for refresh.
type RefreshConfig struct {
	Interval   time.Duration       `yaml:"interval"`
	MaxSources int                 `yaml:"maxSources"`
	AllowLists map[string][]string `yaml:"allowLists"`
	EgyptIDs   []string            `yaml:"egyptIds"`
}

// Load reads the YAML file named by NEXUS_CONFIG (if any) over the defaults,
// then applies environment overrides.
func Load() Config {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("config file unreadable, using defaults", "path", path, "error", err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			slog.Warn("config file invalid, using defaults", "path", path, "error", err)
			cfg = Default()
		}
	}

	if v := os.Getenv(geminiKeyEnv); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv(finnhubKeyEnv); v != "" {
		cfg.Market.FinnhubAPIKey = v
	}
	if v := os.Getenv(portEnv); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv(frontendURLEnv); v != "" {
		cfg.Server.FrontendURL = v
	}

	if cfg.Refresh.Interval <= 0 {
		cfg.Refresh.Interval = Default().Refresh.Interval
	}
	if cfg.Refresh.MaxSources <= 0 {
		cfg.Refresh.MaxSources = Default().Refresh.MaxSources
	}
	if len(cfg.Refresh.AllowLists) == 0 {
		cfg.Refresh.AllowLists = Default().Refresh.AllowLists
	}

	return cfg
}

// Default returns the built-in configuration, matching the curated source
// subsets and demo accounts the platform ships with.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		AI: AIConfig{
			Model:    "gemini-2.5-flash",
			TTSModel: "gemini-2.5-flash-preview-tts",
			Voice:    "Kore",
		},
		Auth: AuthConfig{
			AdminEmail: "admin@edafaa.com",
			DemoAccounts: []DemoAccount{
				{Email: "admin@edafaa.com", Name: "Admin User", Admin: true},
				{Email: "guest@nexus.demo", Name: "Guest User", Admin: false},
			},
		},
		Refresh: RefreshConfig{
			Interval:   2 * time.Second,
			MaxSources: 2,
			AllowLists: map[string][]string{
				"latest":  {"r_dne", "r_almal", "r_tc", "r_bi", "r_forbes", "r_verge", "r_wired", "r_fast"},
				"startup": {"r_pb", "r_cb", "r_cbi", "r_wamda", "r_mena", "r_flat6"},
			},
			EgyptIDs: []string{"dne", "almal", "wamda"},
		},
	}
}
