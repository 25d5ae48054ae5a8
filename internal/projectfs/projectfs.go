// Package projectfs performs the filesystem writes for a generated project,
// with every path addressed relative to the project root. Writes are plain
// and non-transactional: a failure mid-generation leaves a partial tree.
package projectfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsclean/tsclean/internal/ui"
)

// ProjectFS writes files beneath a fixed root directory.
type ProjectFS struct {
	root string
}

// New creates a ProjectFS rooted at dir. The directory itself is created
// lazily by the first write.
func New(dir string) *ProjectFS {
	return &ProjectFS{root: dir}
}

// Root returns the root directory.
func (p *ProjectFS) Root() string {
	return p.root
}

// Exists reports whether a path exists relative to the root.
func (p *ProjectFS) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(rel)))
	return err == nil
}

// ReadFile reads a file relative to the root.
func (p *ProjectFS) ReadFile(rel string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("projectfs: read %s: %w", rel, err)
	}
	return data, nil
}

// WriteFile writes a file relative to the root, creating parent directories
// as needed.
func (p *ProjectFS) WriteFile(rel string, data []byte) error {
	full := filepath.Join(p.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("projectfs: create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("projectfs: write %s: %w", rel, err)
	}
	ui.Debug("wrote %s", rel)
	return nil
}
