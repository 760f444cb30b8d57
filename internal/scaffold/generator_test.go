package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

func pythonSpec(t *testing.T, name, description string) project.Spec {
	t.Helper()
	return project.Spec{
		Name:        name,
		Description: description,
		Kind:        project.KindPython,
		Path:        filepath.Join(t.TempDir(), name),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestGenerate_PythonLayout(t *testing.T) {
	spec := pythonSpec(t, "test-project", "A test Python project")

	result := New(Options{}).Generate(spec)
	if !result.Success {
		t.Fatalf("Generate failed: %s (%v)", result.Message, result.Errors)
	}
	if result.ProjectPath != spec.Path {
		t.Errorf("project_path = %q, want %q", result.ProjectPath, spec.Path)
	}
	if result.Errors != nil {
		t.Errorf("errors set on success: %v", result.Errors)
	}
	if result.Message != "Successfully created python project: test-project" {
		t.Errorf("unexpected message: %q", result.Message)
	}

	wantFiles := []string{
		"README.md",
		"requirements.txt",
		"setup.py",
		filepath.Join("src", "test-project", "__init__.py"),
		filepath.Join("src", "test-project", "__version__.py"),
		filepath.Join("src", "tests", "__init__.py"),
		filepath.Join("src", "tests", "test_test-project.py"),
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(spec.Path, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	if got := readFile(t, filepath.Join(spec.Path, "src", "test-project", "__version__.py")); got != `__version__ = "0.1.0"` {
		t.Errorf("version file = %q", got)
	}
	if got := readFile(t, filepath.Join(spec.Path, "requirements.txt")); got != "# Core dependencies\n" {
		t.Errorf("requirements.txt = %q", got)
	}

	setup := readFile(t, filepath.Join(spec.Path, "setup.py"))
	if !strings.Contains(setup, `name="test-project"`) || !strings.Contains(setup, `version="0.1.0"`) {
		t.Errorf("setup.py missing name/version:\n%s", setup)
	}

	stub := readFile(t, filepath.Join(spec.Path, "src", "tests", "test_test-project.py"))
	if !strings.Contains(stub, "from test-project import __version__") {
		t.Errorf("test stub missing version import:\n%s", stub)
	}
	if !strings.Contains(stub, "self.assertTrue(__version__)") {
		t.Errorf("test stub missing assertion:\n%s", stub)
	}

	readme := readFile(t, filepath.Join(spec.Path, "README.md"))
	for _, want := range []string{"test-project", "A test Python project", "python", "venv", "pip install -r requirements.txt"} {
		if !strings.Contains(readme, want) {
			t.Errorf("README missing %q:\n%s", want, readme)
		}
	}
}

func TestGenerate_CommonLayout(t *testing.T) {
	spec := project.Spec{
		Name:        "shared-docs",
		Description: "Grab-bag project",
		Kind:        project.KindCommon,
		Path:        filepath.Join(t.TempDir(), "shared-docs"),
	}

	result := New(Options{}).Generate(spec)
	if !result.Success {
		t.Fatalf("Generate failed: %s", result.Message)
	}

	for _, dir := range []string{"src", "docs", "examples"} {
		info, err := os.Stat(filepath.Join(spec.Path, dir))
		if err != nil {
			t.Fatalf("missing %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}

	readme := readFile(t, filepath.Join(spec.Path, "README.md"))
	if !strings.Contains(readme, "common") {
		t.Errorf("README missing kind label:\n%s", readme)
	}
	if strings.Contains(readme, "cargo") || strings.Contains(readme, "venv") {
		t.Errorf("README has kind-specific steps for common project:\n%s", readme)
	}
}

func TestGenerate_ReadmeRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		projName    string
		description string
	}{
		{"unicode", "प्रोजेक्ट-日本語", "説明 with émojis 🎉 and ümlauts"},
		{"empty description", "empty-desc", ""},
		{"very long description", "long-desc", strings.Repeat("long description segment ", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := project.Spec{
				Name:        tt.projName,
				Description: tt.description,
				Kind:        project.KindCommon,
				Path:        filepath.Join(t.TempDir(), "out"),
			}
			result := New(Options{}).Generate(spec)
			if !result.Success {
				t.Fatalf("Generate failed: %s", result.Message)
			}
			readme := readFile(t, filepath.Join(spec.Path, "README.md"))
			if !strings.Contains(readme, tt.projName) {
				t.Errorf("README does not contain name %q", tt.projName)
			}
			if !strings.Contains(readme, tt.description) {
				t.Errorf("README does not contain description verbatim")
			}
		})
	}
}

func TestGenerate_Additive(t *testing.T) {
	dir := t.TempDir()
	unrelated := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "existing", "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	spec := project.Spec{
		Name:        "additive",
		Description: "does not clobber",
		Kind:        project.KindPython,
		Path:        dir,
	}
	result := New(Options{}).Generate(spec)
	if !result.Success {
		t.Fatalf("Generate failed: %s", result.Message)
	}

	if got := readFile(t, unrelated); got != "keep me" {
		t.Errorf("pre-existing file changed: %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "existing", "nested")); err != nil {
		t.Errorf("pre-existing directory removed: %v", err)
	}
}

func TestGenerate_DetailsIgnored(t *testing.T) {
	// Extra structured data is carried on the spec but never merged into
	// generated files; its presence must not change the outcome.
	base := pythonSpec(t, "with-details", "details are inert")
	withDetails := base
	withDetails.Path = filepath.Join(t.TempDir(), "with-details")
	withDetails.Details = map[string]any{
		"dependencies": []any{"flask", "sqlalchemy"},
	}

	for _, spec := range []project.Spec{base, withDetails} {
		result := New(Options{}).Generate(spec)
		if !result.Success {
			t.Fatalf("Generate failed: %s", result.Message)
		}
		reqs := readFile(t, filepath.Join(spec.Path, "requirements.txt"))
		if reqs != "# Core dependencies\n" {
			t.Errorf("requirements.txt = %q, details leaked into manifest", reqs)
		}
	}
}

func TestGenerate_FilesystemFailure(t *testing.T) {
	dir := t.TempDir()
	// Occupy src with a regular file so directory creation fails.
	if err := os.WriteFile(filepath.Join(dir, "src"), []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	spec := project.Spec{
		Name:        "blocked",
		Description: "cannot create src",
		Kind:        project.KindPython,
		Path:        dir,
	}
	result := New(Options{}).Generate(spec)
	if result.Success {
		t.Fatal("expected failure when src is a regular file")
	}
	if !strings.HasPrefix(result.Message, "Failed to create project: ") {
		t.Errorf("message = %q", result.Message)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one entry", result.Errors)
	}
	if result.ProjectPath != "" {
		t.Errorf("project_path set on failure: %q", result.ProjectPath)
	}
}

func TestGenerate_EndToEndScenario(t *testing.T) {
	dir := t.TempDir()
	spec := project.Spec{
		Name:        "test-project",
		Description: "A test Python project",
		Kind:        project.KindPython,
		Path:        dir,
	}

	result := New(Options{}).Generate(spec)
	if !result.Success || result.ProjectPath != dir {
		t.Fatalf("result = %+v", result)
	}

	readme := readFile(t, filepath.Join(dir, "README.md"))
	if !strings.Contains(readme, "test-project") || !strings.Contains(readme, "A test Python project") {
		t.Errorf("README incomplete:\n%s", readme)
	}
	version := readFile(t, filepath.Join(dir, "src", "test-project", "__version__.py"))
	if version != `__version__ = "0.1.0"` {
		t.Errorf("version file = %q", version)
	}
}
