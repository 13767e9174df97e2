package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/store"
)

// APIError implements huma.StatusError and carries the machine-readable
// code clients branch on.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to render domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		// Schema rejections come in as 422; the API reports every
		// validation failure as 400.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return &APIError{
					status:  domainErr.HTTPStatus(),
					Code:    string(domainErr.Code),
					Message: domainErr.Message,
					Details: domainErr.Details,
				}
			}

			// Raw store sentinels that slipped past the service layer.
			if errors.Is(err, store.ErrNotFound) {
				return &APIError{
					status:  http.StatusNotFound,
					Code:    string(domainerrors.CodeNotFound),
					Message: "Resource not found",
				}
			}
			if errors.Is(err, store.ErrAlreadyExists) {
				return &APIError{
					status:  http.StatusConflict,
					Code:    string(domainerrors.CodeAlreadyExists),
					Message: "Resource already exists",
				}
			}
		}

		var details []string
		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}

		apiErr := &APIError{
			status:  status,
			Code:    statusToCode(status),
			Message: message,
		}
		if len(details) > 0 {
			apiErr.Details = details
		}
		return apiErr
	}
}

// statusToCode maps HTTP status codes to domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return string(domainerrors.CodeValidation)
	case http.StatusUnauthorized:
		return string(domainerrors.CodeUnauthorized)
	case http.StatusForbidden:
		return string(domainerrors.CodeForbidden)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusConflict:
		return string(domainerrors.CodeConflict)
	case http.StatusBadGateway:
		return string(domainerrors.CodeUpstream)
	default:
		return string(domainerrors.CodeInternal)
	}
}
