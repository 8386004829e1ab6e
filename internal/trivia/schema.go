package trivia

import "github.com/deepdish/chicagotrail/internal/llm"

// QuestionsTool is the tool the model is forced to call when generating
// a day's questions. Its argument object is a batch of question
// descriptors in the shared wire format.
var QuestionsTool = &llm.Tool{
	Name:        "provide_questions",
	Description: "Provide a batch of Chicago trivia questions, each with 4 multiple choice options",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The requested number of trivia questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The trivia question about Chicago",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options",
						},
						"correctIndex": map[string]any{
							"type":        "integer",
							"description": "The 0-based index of the correct answer in the options array",
						},
					},
					"required":             []any{"question", "options", "correctIndex"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
