package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/nismprep/internal/llm"
)

const systemPrompt = `You are a tutor for Indian securities-market certification exams.
A candidate just missed a multiple-choice question. Explain the concept
clearly and concretely. Keep the tone factual and encouraging. Do not
invent regulations or numbers that are not in the question material.`

// ExplanationSchema defines the JSON schema for explanation responses.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "An expanded explanation of one missed exam question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentences on why the correct option is right",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Step-by-step walkthrough of the question, including why the candidate's choice falls short",
			},
			"exam_tip": map[string]any{
				"type":        "string",
				"description": "A short memorable pointer for this concept",
			},
		},
		"required":             []any{"summary", "reasoning", "exam_tip"},
		"additionalProperties": false,
	},
}

// buildUserMessage renders the missed question for the prompt.
func buildUserMessage(input Input) string {
	var b strings.Builder

	q := input.Question
	fmt.Fprintf(&b, "Module: %s\n\n", input.ModuleName)
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", q.Prompt)
	for i, opt := range q.Options {
		marker := ""
		switch i {
		case q.Correct:
			marker = " (correct)"
		case input.ChosenIndex:
			marker = " (candidate's choice)"
		}
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, opt, marker)
	}
	if input.ChosenIndex < 0 {
		b.WriteString("\nThe candidate left this question unanswered.\n")
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "\nStored explanation: %s\n", q.Explanation)
	}
	b.WriteString("\nExpand on this for the candidate.")

	return b.String()
}
