package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// rustStrategy delegates the project layout to an external cargo-compatible
// initializer and only adds the README on top.
type rustStrategy struct {
	// Initializer is the binary invoked as
	// [initializer, "init", "--name", <name>]. Tests point it at a stub.
	Initializer string
}

// initializerError marks a non-zero exit from the external initializer so the
// generator can report it without the generic failure prefix.
type initializerError struct {
	stderr string
}

func (e *initializerError) Error() string {
	return fmt.Sprintf("Failed to initialize Rust project: %s", e.stderr)
}

func (*rustStrategy) Kind() project.Kind { return project.KindRust }

func (s *rustStrategy) Apply(spec project.Spec, path string) error {
	// Always an argument list, never a shell string.
	cmd := exec.Command(s.Initializer, "init", "--name", spec.Name)
	cmd.Dir = path

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Only a non-zero exit gets the initializer label with captured
		// stderr; a missing or non-executable binary surfaces through the
		// generic failure path with its real cause.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &initializerError{stderr: stderr.String()}
		}
		return err
	}

	return writeReadme(spec, path)
}
