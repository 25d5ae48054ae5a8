package emit

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// TemplatesFS exposes the embedded document templates so callers can replace
// individual files while keeping the rest of the bundle.
func TemplatesFS() fs.FS {
	return templatesFS
}
