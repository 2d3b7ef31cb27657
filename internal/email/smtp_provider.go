package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the connection settings for the SMTP provider.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	message := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = message.FormatAddress(p.config.From, p.config.FromName)
	}
	message.SetHeader("From", from)
	message.SetHeader("To", email.To...)
	message.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		message.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			message.AddAlternative("text/plain", email.Body)
		}
	} else {
		message.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

func (p *SMTPProvider) Close() error {
	return nil
}

// NoopProvider drops mail. Used in tests and environments without SMTP.
type NoopProvider struct{}

func (NoopProvider) Send(*Email) error                                  { return nil }
func (NoopProvider) SendWithTemplate(string, TemplateData, *Email) error { return nil }
func (NoopProvider) Validate() error                                    { return nil }
func (NoopProvider) Close() error                                       { return nil }
