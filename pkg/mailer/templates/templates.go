package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
)

//go:embed *.tmpl
var FS embed.FS

var parsed = htmpl.Must(htmpl.ParseFS(FS, "*.tmpl"))

// Subject returns the subject line for a known template name.
func Subject(name string) string {
	switch name {
	case "welcome":
		return "Welcome aboard"
	default:
		return "Notification"
	}
}

// RenderHTML renders the named template with the given data.
func RenderHTML(name string, data map[string]any) (string, error) {
	t := parsed.Lookup(name + ".tmpl")
	if t == nil {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
