package scaffold

import (
	"os"
	"path/filepath"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// pythonStrategy lays out a src/ package with a setup.py, a requirements
// placeholder, a version declaration, and a unittest stub.
type pythonStrategy struct{}

func (*pythonStrategy) Kind() project.Kind { return project.KindPython }

func (*pythonStrategy) Apply(spec project.Spec, path string) error {
	srcDir := filepath.Join(path, "src")
	pkgDir := filepath.Join(srcDir, spec.Name)
	testsDir := filepath.Join(srcDir, "tests")
	for _, dir := range []string{srcDir, pkgDir, testsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// Empty package markers.
	if err := writeFile(filepath.Join(pkgDir, "__init__.py"), ""); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(testsDir, "__init__.py"), ""); err != nil {
		return err
	}

	// Dependencies from spec.Details are not merged here yet: the manifest
	// carries the comment header only.
	if err := writeFile(filepath.Join(path, "requirements.txt"), "# Core dependencies\n"); err != nil {
		return err
	}

	data := newTemplateData(spec)

	setup, err := render("setup", setupTemplate, data)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(path, "setup.py"), setup); err != nil {
		return err
	}

	stub, err := render("test stub", testStubTemplate, data)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(testsDir, "test_"+spec.Name+".py"), stub); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(pkgDir, "__version__.py"), versionFileContent); err != nil {
		return err
	}

	return writeReadme(spec, path)
}
