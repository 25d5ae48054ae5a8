// Package template defines the engine seam the emitter renders through, so
// document generation can be tested against a fake and the pongo2-backed
// engine stays swappable.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract. RenderTemplate resolves a named template from the configured
// source; RenderString treats its first argument as inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
