// Package emit turns parsed feature specifications into the documents of a
// generated project: per-feature layered sources and tests, plus the shared
// infrastructure files written once per project. Emission is deterministic;
// the same inputs always produce the same set of (path, content) pairs.
package emit

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/tsclean/tsclean/pkg/fieldspec"
	rendertemplate "github.com/tsclean/tsclean/pkg/render/template"
	gotemplate "github.com/tsclean/tsclean/pkg/render/template/gotemplate"
	"github.com/tsclean/tsclean/pkg/typemap"
)

// File is one generated document, addressed relative to the project root.
type File struct {
	Path    string
	Content []byte
}

// ProjectParams carries the project-level values shared documents render
// with.
type ProjectParams struct {
	Name     string
	Port     int
	MongoURI string
}

// Option configures the emitter before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
	renderer   rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// Emitter renders feature and project documents through the template seam.
type Emitter struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs an Emitter, defaulting to the embedded template bundle.
func New(options ...Option) (*Emitter, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.renderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("emit: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Emitter{templates: renderer}, nil
}

// Shared renders the project-level documents written once per project:
// manifest, compiler and test-runner configuration, environment file, and
// the Core utility modules.
func (e *Emitter) Shared(p ProjectParams) ([]File, error) {
	ctx := map[string]any{
		"project":  p.Name,
		"port":     p.Port,
		"mongoUri": p.MongoURI,
	}

	documents := []struct {
		template string
		path     string
	}{
		{"package.json", "package.json"},
		{"tsconfig.json", "tsconfig.json"},
		{"jest.config.ts", "jest.config.ts"},
		{"env", ".env"},
		{"gitignore", ".gitignore"},
		{"result.ts", "Core/result/result.ts"},
		{"custom-error.ts", "Core/error/custom-error.ts"},
		{"database.ts", "Core/config/database.ts"},
	}

	files := make([]File, 0, len(documents))
	for _, doc := range documents {
		rendered, err := e.render(doc.template, ctx)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: doc.path, Content: rendered})
	}
	return files, nil
}

// wiringView is the minimal per-feature context the entry point needs.
type wiringView struct {
	Name  string
	Ident string
}

// EntryPoint renders Server/index.ts wiring every registered feature, in
// registration order. It is rendered whole every time so that re-rendering
// with a merged feature list stays deterministic.
func (e *Emitter) EntryPoint(features []string) (File, error) {
	views := make([]wiringView, len(features))
	for i, name := range features {
		views[i] = wiringView{Name: name, Ident: inflect.Capitalize(name)}
	}

	rendered, err := e.render("server-index.ts", map[string]any{"features": views})
	if err != nil {
		return File{}, err
	}
	return File{Path: "Server/index.ts", Content: rendered}, nil
}

// Feature renders the full vertical slice for one feature: DI container,
// domain, data and delivery layers, and the two Jest test files. Every
// document derives from the same featureView, which is what keeps the
// interface, persistence schema, validator and sample payload consistent.
func (e *Emitter) Feature(feat fieldspec.FeatureSpec) ([]File, error) {
	view := newFeatureView(feat)
	ctx := map[string]any{"feature": view}

	root := path.Join("Features", feat.Name)
	tests := path.Join("__tests__", "Features", feat.Name)

	documents := []struct {
		template string
		path     string
	}{
		{"container.ts", path.Join(root, "container.ts")},
		{"entity.ts", path.Join(root, "domain", "entity", feat.Name+".entity.ts")},
		{"repository-interface.ts", path.Join(root, "domain", "repositories", feat.Name+".repository.interface.ts")},
		{"usecase.ts", path.Join(root, "domain", "usecases", "create-"+feat.Name+".usecase.ts")},
		{"model.ts", path.Join(root, "data", "models", feat.Name+".model.ts")},
		{"datasource.ts", path.Join(root, "data", "datasources", feat.Name+".datasource.ts")},
		{"repository.ts", path.Join(root, "data", "repositories", feat.Name+".repository.ts")},
		{"middleware.ts", path.Join(root, "delivery", "middlewares", "validate-"+feat.Name+".middleware.ts")},
		{"controller.ts", path.Join(root, "delivery", "controllers", feat.Name+".controller.ts")},
		{"usecase.test.ts", path.Join(tests, feat.Name+".usecase.test.ts")},
		{"controller.test.ts", path.Join(tests, feat.Name+".controller.test.ts")},
	}

	files := make([]File, 0, len(documents))
	for _, doc := range documents {
		rendered, err := e.render(doc.template, ctx)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: doc.path, Content: rendered})
	}
	return files, nil
}

// exampleView backs one curl example in the generated README.
type exampleView struct {
	Name       string
	SampleJSON string
}

// Readme renders README.md. The structure section lists every registered
// feature; curl examples are only emitted for the features generated in this
// run, the only ones whose sample payloads are known.
func (e *Emitter) Readme(p ProjectParams, registered []string, generated []fieldspec.FeatureSpec) (File, error) {
	examples := make([]exampleView, len(generated))
	for i, feat := range generated {
		examples[i] = exampleView{Name: feat.Name, SampleJSON: typemap.SampleJSON(feat.Fields)}
	}

	ctx := map[string]any{
		"project":     p.Name,
		"port":        p.Port,
		"examples":    examples,
		"featureList": strings.Join(registered, ", "),
	}

	rendered, err := e.render("readme.md", ctx)
	if err != nil {
		return File{}, err
	}
	return File{Path: "README.md", Content: rendered}, nil
}

func (e *Emitter) render(name string, ctx map[string]any) ([]byte, error) {
	rendered, err := e.templates.RenderTemplate(path.Join("templates", name), ctx)
	if err != nil {
		return nil, fmt.Errorf("emit: render %s: %w", name, err)
	}
	return []byte(rendered), nil
}
