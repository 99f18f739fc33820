package dto

// RenameReq represents the request body for the /api/history/:id/rename endpoint.
type RenameReq struct {
	Name string `json:"name"`
}
