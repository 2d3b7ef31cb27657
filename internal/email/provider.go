package email

// Provider sends transactional mail.
type Provider interface {
	// Send delivers a fully-built message.
	Send(email *Email) error

	// SendWithTemplate renders templateName with data into the HTML body,
	// then delivers the message.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
