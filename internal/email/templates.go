package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateManager keeps parsed HTML templates keyed by name.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// LoadTemplates reads every .html file under dirPath, keyed by base name.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}
		return nil
	})
}

// RegisterDefaults installs the built-in templates used when no templates
// directory is configured.
func (tm *TemplateManager) RegisterDefaults() error {
	defaults := map[string]string{
		"application_status": applicationStatusTemplate,
		"welcome":            welcomeTemplate,
	}
	for name, body := range defaults {
		if err := tm.AddTemplate(name, body); err != nil {
			return err
		}
	}
	return nil
}

const welcomeTemplate = `<html><body>
<h2>Welcome, {{.Name}}!</h2>
<p>Your account has been created. Sign in to explore formations, capsules and job offers.</p>
</body></html>`

const applicationStatusTemplate = `<html><body>
<h2>Application update</h2>
<p>Hello {{.Name}},</p>
<p>Your application for <strong>{{.OfferTitle}}</strong> is now <strong>{{.Status}}</strong>.</p>
</body></html>`
