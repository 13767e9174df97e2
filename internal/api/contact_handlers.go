package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerContactRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "submitContact",
		Method:      http.MethodPost,
		Path:        "/api/v1/contact",
		Summary:     "Submit contact form",
		Description: "Relays a visitor message to the studio inbox",
		Tags:        []string{"Contact"},
	}, s.handleSubmitContact)
}

// === DTOs ===

// ContactRequestBody is a contact form submission.
type ContactRequestBody struct {
	Name        string `json:"name" doc:"Visitor name"`
	Email       string `json:"email" doc:"Visitor email"`
	Phone       string `json:"phone" doc:"Visitor phone"`
	InquiryType string `json:"inquiry_type" doc:"Inquiry category code"`
	Message     string `json:"message" doc:"Message body"`
}

// SubmitContactInput wraps the contact form for Huma.
type SubmitContactInput struct {
	XForwardedFor string `header:"X-Forwarded-For"`
	XRealIP       string `header:"X-Real-IP"`
	Body          ContactRequestBody
}

// === Handlers ===

func (s *Server) handleSubmitContact(ctx context.Context, input *SubmitContactInput) (*MessageOutput, error) {
	ip := extractIP(input.XForwardedFor, input.XRealIP)
	if ip != "" && !s.contactRateLimit.Allow(ip) {
		s.logger.Warn("contact form throttled", "ip", ip)
		return nil, huma.Error429TooManyRequests("Too many submissions. Please try again later.")
	}

	err := s.services.Contact.Submit(ctx, service.ContactRequest{
		Name:        input.Body.Name,
		Email:       input.Body.Email,
		Phone:       input.Body.Phone,
		InquiryType: input.Body.InquiryType,
		Message:     input.Body.Message,
	})
	if err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Message sent"}}, nil
}
