package scaffold

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

//go:embed templates/readme.md.tmpl
var readmeTemplate string

//go:embed templates/setup.py.tmpl
var setupTemplate string

//go:embed templates/test_stub.py.tmpl
var testStubTemplate string

// versionFileContent is written verbatim as the package version declaration.
const versionFileContent = `__version__ = "0.1.0"`

// templateData is what the embedded templates see. Name and Description are
// inserted verbatim, text/template does no escaping.
type templateData struct {
	Name        string
	Description string
	Kind        string
	ClassName   string
}

func newTemplateData(spec project.Spec) templateData {
	return templateData{
		Name:        spec.Name,
		Description: spec.Description,
		Kind:        string(spec.Kind),
		ClassName:   capitalize(spec.Name),
	}
}

func render(name, text string, data templateData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return sb.String(), nil
}

// writeReadme renders the shared README template into path.
func writeReadme(spec project.Spec, path string) error {
	content, err := render("readme", readmeTemplate, newTemplateData(spec))
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(path, "README.md"), content)
}

// capitalize uppercases the first rune and lowercases the rest, matching the
// class naming in the generated test stub.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
