// Package config provides centralized configuration management for the rejestr.io MCP server.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the rejestr.io API v2 origin used when no override is configured.
const DefaultBaseURL = "https://rejestr.io/api/v2"

// Config holds the complete configuration for the server. It is built once at
// startup and never mutated afterwards.
type Config struct {
	// Rejestr.io API configuration
	Rejestr struct {
		APIKey  string
		BaseURL string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		// Set default values
		v.SetDefault("rejestr_io_base_url", DefaultBaseURL)

		// Load from environment variables
		v.AutomaticEnv()

		config = &Config{}
		config.Rejestr.APIKey = v.GetString("rejestr_io_api_key")
		config.Rejestr.BaseURL = v.GetString("rejestr_io_base_url")
	})

	return config
}

// Validate checks if all required configuration values are set. A missing API
// key is reported but not fatal: requests still go out and the remote rejects
// them, so the failure surfaces on first use where the caller can see it.
func (c *Config) Validate() error {
	if c.Rejestr.APIKey == "" {
		return fmt.Errorf("REJESTR_IO_API_KEY is not set; requests will fail remote authentication")
	}

	return nil
}
