// Package toolrunner executes the external Node.js tooling a generated
// project depends on. Commands run in a fixed working directory with their
// output captured, never streamed.
package toolrunner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tsclean/tsclean/internal/ui"
)

// Result captures one finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes commands in a fixed working directory.
type Runner struct {
	workDir string
}

// New creates a Runner rooted at workDir. An empty workDir runs commands in
// the process working directory.
func New(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

// LookPath reports whether an executable is available on PATH.
func (r *Runner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes a command and captures its output. A non-zero exit returns
// both the Result and an error describing the failure.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	ui.Debug("running %s %s", name, strings.Join(args, " "))

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, fmt.Errorf("toolrunner: %s exited with code %d: %s",
				name, result.ExitCode, strings.TrimSpace(result.Stderr))
		}
		return result, fmt.Errorf("toolrunner: run %s: %w", name, err)
	}
	return result, nil
}

// NodeVersion returns the installed Node.js version string, e.g. "v18.19.0".
func (r *Runner) NodeVersion(ctx context.Context) (string, error) {
	result, err := r.Run(ctx, "node", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// NpmInstall installs the project dependencies declared in package.json.
func (r *Runner) NpmInstall(ctx context.Context) error {
	_, err := r.Run(ctx, "npm", "install")
	return err
}

// NpmInstallGlobal installs a package globally.
func (r *Runner) NpmInstallGlobal(ctx context.Context, pkg string) error {
	_, err := r.Run(ctx, "npm", "install", "-g", pkg)
	return err
}
