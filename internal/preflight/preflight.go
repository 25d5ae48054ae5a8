// Package preflight verifies the host has the Node.js toolchain a generated
// project needs before any file is written.
package preflight

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsclean/tsclean/internal/toolrunner"
	"github.com/tsclean/tsclean/internal/ui"
)

// Checker validates the host toolchain: node at or above a minimum major
// version, npm, and a global tsc (installed on the fly when missing).
type Checker struct {
	runner       *toolrunner.Runner
	minNodeMajor int
}

// New creates a Checker requiring at least the given Node.js major version.
func New(minNodeMajor int) *Checker {
	return &Checker{runner: toolrunner.New(""), minNodeMajor: minNodeMajor}
}

// Check runs all preflight validations. The first failure aborts.
func (c *Checker) Check(ctx context.Context) error {
	if !c.runner.LookPath("node") {
		return fmt.Errorf("preflight: Node.js is not installed, install Node.js %d or higher and retry", c.minNodeMajor)
	}

	version, err := c.runner.NodeVersion(ctx)
	if err != nil {
		return fmt.Errorf("preflight: determine Node.js version: %w", err)
	}
	major, err := ParseNodeMajor(version)
	if err != nil {
		return fmt.Errorf("preflight: parse Node.js version %q: %w", version, err)
	}
	if major < c.minNodeMajor {
		return fmt.Errorf("preflight: Node.js %d or higher required, found %s", c.minNodeMajor, version)
	}

	if !c.runner.LookPath("npm") {
		return fmt.Errorf("preflight: npm is not installed")
	}

	if !c.runner.LookPath("tsc") {
		ui.Info("TypeScript is not installed globally. Installing...")
		if err := c.runner.NpmInstallGlobal(ctx, "typescript"); err != nil {
			return fmt.Errorf("preflight: install typescript: %w", err)
		}
	}
	return nil
}

// ParseNodeMajor extracts the major version from a node --version string
// such as "v18.19.0".
func ParseNodeMajor(version string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(version), "v")
	majorPart, _, _ := strings.Cut(trimmed, ".")
	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return 0, fmt.Errorf("no major version in %q", version)
	}
	return major, nil
}
