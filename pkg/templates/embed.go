package templates

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.elm.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded declaration bundle for callers that want
// to inspect or re-render the canonical texts themselves.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to the raw FS so the bundle
		// remains usable.
		return embeddedTemplates
	}
	return sub
}
