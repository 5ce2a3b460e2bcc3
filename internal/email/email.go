package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"jobportal_backend/internal/config"
)

// Provider sends transactional mail. Sends are best-effort everywhere in the
// application: a failed mail never fails the request that triggered it.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// SMTPProvider delivers through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopProvider is used when email is disabled and in tests.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error { return nil }

// NewProvider picks the provider for the current configuration.
func NewProvider(cfg *config.Config) Provider {
	if !cfg.Email.Enabled {
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

// VerificationEmail renders the address-confirmation mail body.
func VerificationEmail(baseURL, token string) (subject, body string) {
	subject = "Verify your email address"
	body = fmt.Sprintf(
		`<p>Welcome to the job portal!</p>
<p>Please confirm your email address by clicking the link below:</p>
<p><a href="%s/api/auth/verify-email?token=%s">Verify email</a></p>
<p>If you did not create this account, you can ignore this message.</p>`,
		baseURL, token,
	)
	return subject, body
}
