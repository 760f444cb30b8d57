// Package scaffold turns a project.Spec into a concrete file tree on disk.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// Strategy produces the kind-specific files for one project kind.
type Strategy interface {
	// Kind returns the project kind this strategy handles.
	Kind() project.Kind

	// Apply writes the kind-specific files into path.
	Apply(spec project.Spec, path string) error
}

// Options tune a single generation run.
type Options struct {
	// Commit records an initial git commit after a successful scaffold.
	Commit bool
}

// Generator maps a Spec to files on disk, dispatching on the spec's kind.
type Generator struct {
	strategies map[project.Kind]Strategy
	opts       Options
}

// New creates a Generator with the default strategy per kind.
func New(opts Options) *Generator {
	g := &Generator{
		strategies: make(map[project.Kind]Strategy),
		opts:       opts,
	}
	for _, s := range []Strategy{
		&pythonStrategy{},
		&rustStrategy{Initializer: "cargo"},
		&commonStrategy{},
	} {
		g.strategies[s.Kind()] = s
	}
	return g
}

// Register replaces the strategy for a kind. Tests use this to substitute a
// fake rust initializer.
func (g *Generator) Register(s Strategy) {
	g.strategies[s.Kind()] = s
}

// Generate creates spec.Path (and missing ancestors) and applies the strategy
// for spec.Kind. Generation is additive: pre-existing entries in the target
// are left alone, and a failure mid-way leaves already-written files on disk.
func (g *Generator) Generate(spec project.Spec) project.Result {
	if err := os.MkdirAll(spec.Path, 0755); err != nil {
		return failure(err)
	}

	strategy, ok := g.strategies[spec.Kind]
	if !ok {
		// Anything outside python/rust falls back to the common layout.
		strategy = g.strategies[project.KindCommon]
	}
	if err := strategy.Apply(spec, spec.Path); err != nil {
		return failure(err)
	}

	result := project.Result{
		Success:     true,
		Message:     fmt.Sprintf("Successfully created %s project: %s", spec.Kind, spec.Name),
		ProjectPath: spec.Path,
	}

	if g.opts.Commit {
		if err := commitScaffold(spec); err != nil {
			// The scaffold itself succeeded; a commit failure is only noted.
			result.Message += fmt.Sprintf(" (initial commit skipped: %v)", err)
		}
	}
	return result
}

func failure(err error) project.Result {
	message := fmt.Sprintf("Failed to create project: %v", err)
	var initErr *initializerError
	if errors.As(err, &initErr) {
		message = err.Error()
	}
	return project.Result{
		Success: false,
		Message: message,
		Errors:  []string{err.Error()},
	}
}

// writeFile writes content, creating missing parent directories first.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
