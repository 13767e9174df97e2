package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/framelightapp/framelight-server/internal/mail"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// ContactService relays visitor messages to the studio inbox.
type ContactService struct {
	mailer    *mail.Mailer
	validator *validation.Validator
	logger    *slog.Logger
}

// NewContactService creates a new contact service.
func NewContactService(mailer *mail.Mailer, validator *validation.Validator, logger *slog.Logger) *ContactService {
	return &ContactService{
		mailer:    mailer,
		validator: validator,
		logger:    logger,
	}
}

// ContactRequest is a contact form submission. The subject line is
// derived server-side; unknown inquiry type codes pass through and
// appear verbatim in the relayed mail.
type ContactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=40"`
	InquiryType string `json:"inquiry_type" validate:"required,max=120"`
	Message     string `json:"message" validate:"required,max=10000"`
}

// Submit validates the form and sends it to the studio inbox. Mail is
// sent synchronously so the visitor learns right away when the relay
// is down.
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.validator.Validate(req); err != nil {
		return err
	}

	msg := mail.Message{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
		Body:        req.Message,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("contact mail failed", "inquiry_type", req.InquiryType, "error", err)
		return fmt.Errorf("send contact mail: %w", err)
	}

	s.logger.Info("contact form relayed", "inquiry_type", req.InquiryType)
	return nil
}
