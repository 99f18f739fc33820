// Package optimizer provides a client for the external code-optimization
// pipeline service.
package optimizer

import (
	"os"
	"time"
)

// Config holds configuration for the optimizer service client.
type Config struct {
	BaseURL string        // Base URL of the pipeline service
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads optimizer configuration from environment variables.
// Pipeline runs can take a while on large inputs, hence the generous timeout.
func LoadConfig() Config {
	return Config{
		BaseURL: os.Getenv("OPTIMIZER_BASE_URL"),
		Timeout: 60 * time.Second,
	}
}
