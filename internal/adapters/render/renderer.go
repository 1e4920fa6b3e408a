// Package render turns report statistics into HTML using html/template.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// HTMLRenderer renders named templates parsed once at startup.
// Template names are file names without the .html extension.
type HTMLRenderer struct {
	templates *template.Template
}

var _ portssvc.ReportRenderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses every templates/*.html file of fsys.
func NewHTMLRenderer(fsys fs.FS) (*HTMLRenderer, error) {
	tmpl, err := template.New("").Option("missingkey=error").ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// NewDefaultRenderer returns a renderer over the embedded templates.
func NewDefaultRenderer() (*HTMLRenderer, error) {
	return NewHTMLRenderer(TemplatesFS)
}

func (r *HTMLRenderer) Render(templateName string, vars map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName+".html", vars); err != nil {
		return "", fmt.Errorf("render %s: %w", templateName, err)
	}
	return buf.String(), nil
}
