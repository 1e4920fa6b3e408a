package render

import "embed"

// TemplatesFS embeds the HTML templates reports are rendered from.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
