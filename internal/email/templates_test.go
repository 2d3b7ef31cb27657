package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaultTemplates(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.RegisterDefaults())

	body, err := tm.Render("welcome", TemplateData{"Name": "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Welcome, Ada!")

	body, err = tm.Render("application_status", TemplateData{
		"Name":       "Ada",
		"OfferTitle": "Backend Developer",
		"Status":     "accepted",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Backend Developer")
	assert.Contains(t, body, "accepted")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("missing", TemplateData{})
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.RegisterDefaults())

	body, err := tm.Render("welcome", TemplateData{"Name": "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestLoadTemplatesOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "welcome.html")
	require.NoError(t, os.WriteFile(custom, []byte("<p>Custom hello {{.Name}}</p>"), 0644))

	tm := NewTemplateManager()
	require.NoError(t, tm.RegisterDefaults())
	require.NoError(t, tm.LoadTemplates(dir))

	body, err := tm.Render("welcome", TemplateData{"Name": "Ada"})
	require.NoError(t, err)
	assert.Contains(t, body, "Custom hello Ada")
}
