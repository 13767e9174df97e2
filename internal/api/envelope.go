package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelope is the wire shape every response is wrapped in. Success
// responses carry data; failures carry error. The two are never set
// together.
type envelope struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *envelopeError `json:"error,omitempty"`
}

// envelopeError is the error half of the envelope.
type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the envelope so
// clients always unwrap the same structure.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if v == nil {
		return envelope{Success: true}, nil
	}

	if apiErr, ok := v.(*APIError); ok {
		return envelope{
			Success: false,
			Error: &envelopeError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		}, nil
	}

	if _, ok := v.(envelope); ok {
		return v, nil
	}

	return envelope{Success: true, Data: v}, nil
}
