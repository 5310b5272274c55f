package questgen

import "github.com/chemcat/chemcat/internal/llm"

// QuestionsSchema defines the JSON schema for practice question
// generation. The root is an object so every provider's structured
// output mode can enforce it.
var QuestionsSchema = &llm.Schema{
	Name:        "practice-questions",
	Description: "A set of practice questions for a chemistry lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple-choice", "fill-in-the-blank", "select-all-that-apply"},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text; fill-in-the-blank uses ___ for the blank",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Choices for multiple-choice and select-all questions",
						},
						"answer": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "The correct answer(s); a single element except for select-all",
						},
						"alternatives": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Accepted alternative spellings for fill-in-the-blank answers",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"type", "question", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
