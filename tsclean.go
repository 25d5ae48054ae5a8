// Package tsclean exposes the generator as a library: parse field
// definitions, emit project documents, or run full project generation
// without going through the CLI.
package tsclean

import (
	"context"

	"github.com/tsclean/tsclean/pkg/config"
	"github.com/tsclean/tsclean/pkg/emit"
	"github.com/tsclean/tsclean/pkg/fieldspec"
	"github.com/tsclean/tsclean/pkg/scaffold"
)

// FieldSpec is one parsed name:type:rule field definition.
type FieldSpec = fieldspec.FieldSpec

// FeatureSpec names a feature and its fields.
type FeatureSpec = fieldspec.FeatureSpec

// ProjectRequest describes a project to create.
type ProjectRequest = scaffold.ProjectRequest

// FeatureRequest describes a feature to add to an existing project.
type FeatureRequest = scaffold.FeatureRequest

// Config carries generation settings.
type Config = config.Config

// File is one generated document.
type File = emit.File

// ParseFields parses a comma-separated field definition list.
func ParseFields(s string) ([]FieldSpec, error) {
	return fieldspec.Parse(s)
}

// GenerateProject creates a new project on disk, running preflight and
// dependency installation with the default toolchain.
func GenerateProject(ctx context.Context, req ProjectRequest, options ...scaffold.Option) error {
	gen, err := scaffold.New(options...)
	if err != nil {
		return err
	}
	return gen.NewProject(ctx, req)
}

// AddFeature generates one feature inside an existing project and rewires
// its entry point.
func AddFeature(ctx context.Context, req FeatureRequest, options ...scaffold.Option) error {
	gen, err := scaffold.New(options...)
	if err != nil {
		return err
	}
	return gen.AddFeature(ctx, req)
}
