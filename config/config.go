package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Telegram struct {
		Token string `yaml:"token"`
	} `yaml:"telegram"`

	Gemini struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Extractor struct {
		// Mode selects the extraction adapter: "browser" (headless Chrome)
		// or "static" (plain fetch, for hosts without Chrome).
		Mode           string `yaml:"mode"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
		// RenderWaitSeconds is how long the browser adapter waits after
		// navigation for script-driven content to settle.
		RenderWaitSeconds int `yaml:"renderWaitSeconds"`
	} `yaml:"extractor"`

	Explain struct {
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"explain"`
}

// LoadConfig reads the configuration file and overlays the two secrets from
// the TELEGRAM_TOKEN and GEMINI_API_KEY environment variables when set.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Extractor.Mode == "" {
		c.Extractor.Mode = "browser"
	}
	if c.Extractor.TimeoutSeconds == 0 {
		c.Extractor.TimeoutSeconds = 45
	}
	if c.Extractor.RenderWaitSeconds == 0 {
		c.Extractor.RenderWaitSeconds = 3
	}
	if c.Explain.TimeoutSeconds == 0 {
		c.Explain.TimeoutSeconds = 30
	}
}

// Validate reports missing required secrets. Startup must not proceed past a
// validation error.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram token is not set (config telegram.token or TELEGRAM_TOKEN)")
	}
	if c.Gemini.APIKey == "" {
		return errors.New("gemini api key is not set (config gemini.apiKey or GEMINI_API_KEY)")
	}
	if c.Extractor.Mode != "browser" && c.Extractor.Mode != "static" {
		return fmt.Errorf("unknown extractor mode %q", c.Extractor.Mode)
	}
	return nil
}
