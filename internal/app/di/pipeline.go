// Package di provides dependency injection factories for creating application components.
package di

import (
	"opticode_backend/internal/feature/analysis/adapters/optimizer"
	infrahttp "opticode_backend/internal/platform/http"
)

// NewPipeline creates a fully configured optimizer client with HTTP client.
func NewPipeline() *optimizer.Client {
	cfg := optimizer.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return optimizer.NewClient(cfg, httpClient)
}
