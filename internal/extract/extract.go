// Package extract turns a task record into a project specification mapping
// through a function-calling completion endpoint. Two implementations exist:
// the live GemmaClient and the deterministic OfflineClient used for testing
// and credential-free environments.
package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// Client derives structured project details from a task id. The returned
// mapping carries "name", "description", "project_type", and optionally an
// "additional_details" object; see project.SpecFromDetails for validation.
type Client interface {
	GenerateFromTask(ctx context.Context, taskID string) (map[string]any, error)
}

// functionName is the single callable declared to the model.
const functionName = "generate_project_structure"

// functionSchema declares the structured output the model is forced to emit.
func functionSchema() map[string]any {
	return map[string]any{
		"name":        functionName,
		"description": "Generate a new project structure based on a todo description",
		"parameters": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Project name (in kebab-case format)",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Short description of the project",
				},
				"project_type": map[string]any{
					"type":        "string",
					"enum":        []string{"python", "rust", "common"},
					"description": "Type of project to create",
				},
				"additional_details": map[string]any{
					"type":        "object",
					"description": "Additional project details specific to the project type",
				},
			},
			"required": []string{"name", "description", "project_type"},
		},
	}
}

// buildPrompt renders the instruction sent to the model for one task record.
// Metadata is pretty-printed with sorted keys, so identical records always
// produce identical prompt text.
func buildPrompt(task *project.TaskRecord) string {
	extraContext := "No additional context provided."
	if len(task.Metadata) > 0 {
		if pretty, err := json.MarshalIndent(task.Metadata, "", "  "); err == nil {
			extraContext = string(pretty)
		}
	}

	return fmt.Sprintf(`Generate a project structure based on the following TODO item:

Description: %s
Project: %s

Additional context:
%s

Your task is to determine:
1. An appropriate project name (in kebab-case format)
2. A concise project description
3. The most suitable project type (python, rust, or common)
4. Any additional details needed for the project setup

Please use the function calling to provide structured output.`,
		task.Description, task.Project, extraContext)
}
