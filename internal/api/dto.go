package api

import (
	"github.com/framelightapp/framelight-server/internal/store"
)

// MessageResponse is a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a confirmation message for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// PaginationResponse mirrors the listing page metadata.
type PaginationResponse = store.Pagination
