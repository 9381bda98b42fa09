package models

// ErrorResponse is the standard error payload for every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
