package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/mail"
)

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	env := newTestEnv(t)

	// Points at a port nothing listens on; only failure paths send.
	mailer, err := mail.New(mail.Config{
		Host: "127.0.0.1",
		Port: 1,
		From: "site@framelight.example",
		To:   "inbox@framelight.example",
	}, env.logger)
	require.NoError(t, err)

	return NewContactService(mailer, env.validator, env.logger)
}

func validContactRequest() ContactRequest {
	return ContactRequest{
		Name:        "Sam Okafor",
		Email:       "sam@example.com",
		Phone:       "555-0100",
		InquiryType: "project_inquiry",
		Message:     "We are producing a documentary and would like to talk.",
	}
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	svc := newContactService(t)

	req := validContactRequest()
	req.Email = "not-an-email"
	req.Message = ""

	err := svc.Submit(context.Background(), req)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestContactService_Submit_MissingPhone(t *testing.T) {
	svc := newContactService(t)

	req := validContactRequest()
	req.Phone = "   "

	err := svc.Submit(context.Background(), req)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestContactService_Submit_UnknownInquiryType(t *testing.T) {
	svc := newContactService(t)

	req := validContactRequest()
	req.InquiryType = "casting"

	// Unknown codes pass validation; the only failure left is the
	// relay, which is down in this test.
	err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	var derr *domainerrors.Error
	assert.False(t, errors.As(err, &derr) && derr.Code == domainerrors.CodeValidation)
}

func TestContactService_Submit_RelayDown(t *testing.T) {
	svc := newContactService(t)

	err := svc.Submit(context.Background(), validContactRequest())
	require.Error(t, err)

	// The failure surfaces instead of being swallowed.
	var derr *domainerrors.Error
	assert.False(t, errors.As(err, &derr) && derr.Code == domainerrors.CodeValidation)
}
