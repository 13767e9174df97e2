// Package mail delivers contact form submissions to the studio inbox
// over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope sender, e.g. noreply@framelight.example.
	From string
	// To is the studio inbox that receives contact submissions.
	To string
}

// Message is a contact form submission ready to send.
type Message struct {
	Name        string
	Email       string
	Phone       string
	InquiryType string
	Body        string
}

// inquiryLabels maps the contact form's inquiry type codes to the
// subject line labels the studio inbox filters on. The later codes are
// kept for older form versions still cached by clients.
var inquiryLabels = map[string]string{
	"collaboration":   "Collaboration",
	"project_inquiry": "Project Inquiry",
	"information":     "Information Request",
	"project":         "Project Inquiry",
	"skill":           "Skills & Crew",
	"donation":        "Donation",
	"volunteer":       "Volunteering",
	"other":           "Other",
}

// InquiryLabel returns the display label for an inquiry type code.
// Unknown codes pass through verbatim so a form revision never drops
// submissions.
func InquiryLabel(code string) string {
	if label, ok := inquiryLabels[code]; ok {
		return label
	}
	return code
}

// Mailer sends mail over a configured SMTP relay.
type Mailer struct {
	cfg    Config
	logger *slog.Logger

	// send is swappable for tests.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a Mailer. Delivery happens per message; no connection is
// held open between sends.
func New(cfg Config, logger *slog.Logger) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host cannot be empty")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("smtp from and to addresses are required")
	}

	return &Mailer{
		cfg:    cfg,
		logger: logger,
		send:   sendMail,
	}, nil
}

// sendTimeout bounds the whole SMTP conversation, dial included, so a
// stalled relay fails the request instead of hanging it.
const sendTimeout = 15 * time.Second

func sendMail(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	return sendMailTimeout(addr, auth, from, to, msg, sendTimeout)
}

// sendMailTimeout mirrors smtp.SendMail with a dial timeout and a
// connection deadline covering the rest of the exchange.
func sendMailTimeout(addr string, auth smtp.Auth, from string, to []string, msg []byte, timeout time.Duration) error {
	conn, err := (&net.Dialer{Timeout: timeout}).Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// Send delivers a contact submission. The visitor's address goes into
// Reply-To so the studio can answer directly; the envelope sender stays
// our own domain to keep SPF happy.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("[%s] New contact form submission from %s", InquiryLabel(msg.InquiryType), msg.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "From: Framelight Contact <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.To)
	fmt.Fprintf(&b, "Reply-To: %s <%s>\r\n", sanitizeHeader(msg.Name), sanitizeHeader(msg.Email))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "Name: %s\r\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\r\n", msg.Phone)
	}
	fmt.Fprintf(&b, "Inquiry type: %s\r\n", InquiryLabel(msg.InquiryType))
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")

	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("contact mail delivered",
		"inquiry_type", msg.InquiryType,
		"from", msg.Email,
	)

	return nil
}

// sanitizeHeader strips CR and LF to prevent header injection through
// form fields.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
