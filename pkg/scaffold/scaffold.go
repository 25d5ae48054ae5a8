// Package scaffold orchestrates project generation: toolchain preflight,
// document emission, filesystem writes, and dependency installation. It
// owns the two top-level operations the CLI exposes, creating a project and
// adding a feature to an existing one.
package scaffold

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsclean/tsclean/internal/preflight"
	"github.com/tsclean/tsclean/internal/projectfs"
	"github.com/tsclean/tsclean/internal/toolrunner"
	"github.com/tsclean/tsclean/internal/ui"
	"github.com/tsclean/tsclean/pkg/config"
	"github.com/tsclean/tsclean/pkg/emit"
	"github.com/tsclean/tsclean/pkg/fieldspec"
)

// entryPointPath marks a directory as a generated project; AddFeature
// refuses to run where it is missing.
const entryPointPath = "Server/index.ts"

// fallbackProjectName is used when an existing project's package.json does
// not yield a name.
const fallbackProjectName = "my-express-api"

// Preflighter validates the host toolchain before generation.
type Preflighter interface {
	Check(ctx context.Context) error
}

// Installer installs the generated project's dependencies.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// npmInstaller is the default Installer, shelling out to npm install.
type npmInstaller struct{}

func (npmInstaller) Install(ctx context.Context, dir string) error {
	return toolrunner.New(dir).NpmInstall(ctx)
}

// ProjectRequest describes a project to create.
type ProjectRequest struct {
	// Name becomes the directory and package name.
	Name string
	// Path is the parent directory; empty means the current directory.
	Path string
	// Features to generate alongside the shared skeleton. May be empty.
	Features []fieldspec.FeatureSpec
}

// FeatureRequest describes a feature to add to an existing project.
type FeatureRequest struct {
	// Root is the project root; empty means the current directory.
	Root string
	// Feature to generate and wire into the entry point.
	Feature fieldspec.FeatureSpec
}

// Option configures a Generator.
type Option func(*Generator)

// WithConfig supplies resolved generation settings.
func WithConfig(cfg config.Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithEmitter injects a custom emitter.
func WithEmitter(emitter *emit.Emitter) Option {
	return func(g *Generator) {
		if emitter != nil {
			g.emitter = emitter
		}
	}
}

// WithPreflight replaces the host toolchain check.
func WithPreflight(p Preflighter) Option {
	return func(g *Generator) {
		if p != nil {
			g.preflight = p
		}
	}
}

// WithInstaller replaces the dependency installation step.
func WithInstaller(i Installer) Option {
	return func(g *Generator) {
		if i != nil {
			g.installer = i
		}
	}
}

// Generator runs generation end to end.
type Generator struct {
	cfg       config.Config
	emitter   *emit.Emitter
	preflight Preflighter
	installer Installer
}

// New constructs a Generator with the default emitter, preflight checker,
// and npm installer unless options override them.
func New(options ...Option) (*Generator, error) {
	gen := &Generator{cfg: config.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(gen)
	}

	if gen.emitter == nil {
		emitter, err := emit.New()
		if err != nil {
			return nil, fmt.Errorf("scaffold: %w", err)
		}
		gen.emitter = emitter
	}
	if gen.preflight == nil {
		gen.preflight = preflight.New(gen.cfg.NodeVersion)
	}
	if gen.installer == nil {
		gen.installer = npmInstaller{}
	}
	return gen, nil
}

// NewProject creates a full project at <req.Path>/<req.Name>: shared
// skeleton, every requested feature, entry point, and README, followed by a
// best-effort npm install. The target directory must not already exist.
func (g *Generator) NewProject(ctx context.Context, req ProjectRequest) error {
	if req.Name == "" {
		return fmt.Errorf("scaffold: project name required")
	}

	parent := req.Path
	if parent == "" {
		parent = "."
	}
	target := filepath.Join(parent, req.Name)
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("scaffold: directory %s already exists", target)
	}

	if err := g.preflight.Check(ctx); err != nil {
		return err
	}

	ui.Info("Creating project '%s'...", req.Name)
	pfs := projectfs.New(target)
	params := emit.ProjectParams{
		Name:     req.Name,
		Port:     g.cfg.Port,
		MongoURI: g.cfg.MongoURIFor(req.Name),
	}

	shared, err := g.emitter.Shared(params)
	if err != nil {
		return err
	}
	if err := writeAll(pfs, shared); err != nil {
		return err
	}

	names := make([]string, len(req.Features))
	for i, feat := range req.Features {
		names[i] = feat.Name
	}

	for _, feat := range req.Features {
		files, err := g.emitter.Feature(feat)
		if err != nil {
			return err
		}
		if err := writeAll(pfs, files); err != nil {
			return err
		}
		ui.Info("Created feature '%s'", feat.Name)
	}

	entry, err := g.emitter.EntryPoint(names)
	if err != nil {
		return err
	}
	if err := pfs.WriteFile(entry.Path, entry.Content); err != nil {
		return err
	}

	readme, err := g.emitter.Readme(params, names, req.Features)
	if err != nil {
		return err
	}
	if err := pfs.WriteFile(readme.Path, readme.Content); err != nil {
		return err
	}

	g.install(ctx, target)
	ui.Success("Project setup complete!")
	ui.Info("Next steps:")
	ui.Info("  cd %s", target)
	ui.Info("  npm run dev")
	return nil
}

// AddFeature generates one feature inside an existing project and rewires
// the entry point and README around the merged feature list. The project is
// recognized by its Server/index.ts.
func (g *Generator) AddFeature(ctx context.Context, req FeatureRequest) error {
	root := req.Root
	if root == "" {
		root = "."
	}
	pfs := projectfs.New(root)
	if !pfs.Exists(entryPointPath) {
		return fmt.Errorf("scaffold: %s is not a generated project (missing %s), run this command from the project root", root, entryPointPath)
	}

	if err := g.preflight.Check(ctx); err != nil {
		return err
	}

	project := readProjectName(pfs)
	ui.Info("Adding feature '%s' to %s...", req.Feature.Name, project)

	files, err := g.emitter.Feature(req.Feature)
	if err != nil {
		return err
	}
	if err := writeAll(pfs, files); err != nil {
		return err
	}

	existing, err := pfs.ReadFile(entryPointPath)
	if err != nil {
		return err
	}
	merged := mergeFeatures(RegisteredFeatures(existing), []string{req.Feature.Name})

	entry, err := g.emitter.EntryPoint(merged)
	if err != nil {
		return err
	}
	if err := pfs.WriteFile(entry.Path, entry.Content); err != nil {
		return err
	}

	params := emit.ProjectParams{
		Name:     project,
		Port:     g.cfg.Port,
		MongoURI: g.cfg.MongoURIFor(project),
	}
	readme, err := g.emitter.Readme(params, merged, []fieldspec.FeatureSpec{req.Feature})
	if err != nil {
		return err
	}
	if err := pfs.WriteFile(readme.Path, readme.Content); err != nil {
		return err
	}

	ui.Success("Feature '%s' added", req.Feature.Name)
	return nil
}

// install runs dependency installation and downgrades failure to a warning;
// the generated tree is complete and usable with a manual npm install.
func (g *Generator) install(ctx context.Context, dir string) {
	ui.Info("Installing dependencies...")
	if err := g.installer.Install(ctx, dir); err != nil {
		ui.Warning("npm install failed, run it manually in %s: %v", dir, err)
	}
}

func writeAll(pfs *projectfs.ProjectFS, files []emit.File) error {
	for _, file := range files {
		if err := pfs.WriteFile(file.Path, file.Content); err != nil {
			return err
		}
		ui.Info("Created %s", file.Path)
	}
	return nil
}

// readProjectName pulls the package name from the project's package.json,
// falling back to a generic name when the manifest is missing or malformed.
func readProjectName(pfs *projectfs.ProjectFS) string {
	data, err := pfs.ReadFile("package.json")
	if err != nil {
		return fallbackProjectName
	}
	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil || manifest.Name == "" {
		return fallbackProjectName
	}
	return manifest.Name
}
