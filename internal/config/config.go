package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

const (
	configVarName   = "CONFIG" // if set, load this JSONC config file first
	apiKeyVarName   = "NASA_API_KEY"
	baseURLVarName  = "NEOWS_BASE_URL"
	logLevelVarName = "LOG_LEVEL"

	defaultBaseURL = "https://api.nasa.gov"
)

type Config struct {
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url"`
	LogLevel string `json:"log_level"`
}

// Load reads the optional JSONC config file named by CONFIG, then
// applies environment overrides. The API key is required.
func Load() (*Config, error) {
	cfg := &Config{BaseURL: defaultBaseURL, LogLevel: "Info"}

	if path := os.Getenv(configVarName); path != "" {
		if err := deserializeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if key := os.Getenv(apiKeyVarName); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv(baseURLVarName); base != "" {
		cfg.BaseURL = base
	}
	if level := os.Getenv(logLevelVarName); level != "" {
		cfg.LogLevel = level
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s is required", apiKeyVarName)
	}
	return cfg, nil
}

func deserializeFile(fileName string, cfg *Config) error {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	raw, err = standardizeJSON(raw)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", fileName, err)
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", fileName, err)
	}
	return nil
}

// JSONC => JSON
func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
