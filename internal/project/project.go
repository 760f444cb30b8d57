// Package project defines the validated specification model shared by the
// scaffold generator and the extraction clients.
package project

import (
	"fmt"
	"path/filepath"
)

// Kind selects which scaffold strategy runs.
type Kind string

const (
	KindPython Kind = "python"
	KindRust   Kind = "rust"
	KindCommon Kind = "common"
)

// Kinds returns every supported project kind.
func Kinds() []Kind {
	return []Kind{KindPython, KindRust, KindCommon}
}

// ParseKind validates a raw kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPython, KindRust, KindCommon:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown project type: %q (supported: python, rust, common)", s)
}

// Spec describes the project to scaffold. It is built once per generation
// attempt and never mutated. Name and Path are used verbatim: there is no
// sanitization against filesystem-reserved characters or traversal segments,
// the host filesystem decides what it accepts.
type Spec struct {
	Name        string
	Description string
	Kind        Kind
	Path        string

	// Details carries extra structured data from the extraction step. The
	// generator accepts it but does not merge it into generated manifests
	// or READMEs yet.
	Details map[string]any
}

// Result is the outcome of a single generation attempt. Exactly one of
// ProjectPath and Errors is populated.
type Result struct {
	Success     bool
	Message     string
	ProjectPath string
	Errors      []string
}

// TaskRecord is a task fetched from the task store. It lives only for the
// duration of one extraction call.
type TaskRecord struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Project     string         `json:"project"`
	Metadata    map[string]any `json:"metadata"`
}

// SpecFromDetails validates the mapping returned by an extraction client and
// builds a Spec rooted at outputDir/<name>. The extraction clients return
// decoded function-call arguments as-is, so type errors surface here.
func SpecFromDetails(details map[string]any, outputDir string) (*Spec, error) {
	name, ok := details["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("extraction result missing project name")
	}
	description, ok := details["description"].(string)
	if !ok {
		return nil, fmt.Errorf("extraction result missing description")
	}
	rawKind, ok := details["project_type"].(string)
	if !ok {
		return nil, fmt.Errorf("extraction result missing project_type")
	}
	kind, err := ParseKind(rawKind)
	if err != nil {
		return nil, err
	}

	var extra map[string]any
	if raw, present := details["additional_details"]; present && raw != nil {
		extra, ok = raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("additional_details must be an object, got %T", raw)
		}
	}

	return &Spec{
		Name:        name,
		Description: description,
		Kind:        kind,
		Path:        filepath.Join(outputDir, name),
		Details:     extra,
	}, nil
}
