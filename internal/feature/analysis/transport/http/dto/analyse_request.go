// Package dto defines data transfer objects for the analysis feature's HTTP transport layer.
package dto

// AnalyseReq represents the request body for the /api/analyse endpoint.
type AnalyseReq struct {
	Code              string `json:"code"`
	OptimizationLevel string `json:"optimization_level"`
}
