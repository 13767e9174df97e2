package mail

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer(t *testing.T) (*Mailer, *capturedSend) {
	t.Helper()

	m, err := New(Config{
		Host: "smtp.example.com",
		Port: 587,
		From: "noreply@framelight.example",
		To:   "hello@framelight.example",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	captured := &capturedSend{}
	m.send = captured.send
	return m, captured
}

type capturedSend struct {
	addr string
	from string
	to   []string
	msg  string
}

func (c *capturedSend) send(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
	c.addr = addr
	c.from = from
	c.to = to
	c.msg = string(msg)
	return nil
}

func TestMailer_Send(t *testing.T) {
	m, captured := testMailer(t)

	err := m.Send(context.Background(), Message{
		Name:        "Dana Wells",
		Email:       "dana@example.com",
		Phone:       "555-0100",
		InquiryType: "project_inquiry",
		Body:        "We have footage from three years of filming.",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", captured.addr)
	assert.Equal(t, "noreply@framelight.example", captured.from)
	assert.Equal(t, []string{"hello@framelight.example"}, captured.to)

	assert.Contains(t, captured.msg, "Subject: [Project Inquiry] New contact form submission from Dana Wells")
	assert.Contains(t, captured.msg, "Reply-To: Dana Wells <dana@example.com>")
	assert.Contains(t, captured.msg, "Phone: 555-0100")
	assert.Contains(t, captured.msg, "three years of filming")
}

func TestMailer_Send_HeaderInjection(t *testing.T) {
	m, captured := testMailer(t)

	err := m.Send(context.Background(), Message{
		Name:        "Evil\r\nBcc: victim@example.com",
		Email:       "evil@example.com",
		InquiryType: "other",
		Body:        "hi",
	})
	require.NoError(t, err)

	assert.NotContains(t, captured.msg, "Bcc: victim@example.com\r\n")
}

func TestMailer_Send_CanceledContext(t *testing.T) {
	m, captured := testMailer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Message{Email: "a@b.c", Body: "y"})
	require.Error(t, err)
	assert.Empty(t, captured.msg)
}

func TestInquiryLabel(t *testing.T) {
	assert.Equal(t, "Collaboration", InquiryLabel("collaboration"))
	assert.Equal(t, "Skills & Crew", InquiryLabel("skill"))
	assert.Equal(t, "Project Inquiry", InquiryLabel("project"))
	// Unknown codes pass through verbatim.
	assert.Equal(t, "casting", InquiryLabel("casting"))
}

func TestSendMailTimeout_SilentRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// Accept the connection but never speak SMTP.
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		io.Copy(io.Discard, conn)
	}()

	start := time.Now()
	err = sendMailTimeout(ln.Addr().String(), nil, "a@b.c", []string{"d@e.f"}, []byte("x"), 100*time.Millisecond)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNew_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(Config{}, logger)
	require.Error(t, err)

	_, err = New(Config{Host: "smtp.example.com"}, logger)
	require.Error(t, err)
}
