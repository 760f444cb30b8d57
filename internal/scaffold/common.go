package scaffold

import (
	"os"
	"path/filepath"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// commonStrategy is the layout for anything that is neither python nor rust.
type commonStrategy struct{}

func (*commonStrategy) Kind() project.Kind { return project.KindCommon }

func (*commonStrategy) Apply(spec project.Spec, path string) error {
	for _, dir := range []string{"src", "docs", "examples"} {
		if err := os.MkdirAll(filepath.Join(path, dir), 0755); err != nil {
			return err
		}
	}
	return writeReadme(spec, path)
}
