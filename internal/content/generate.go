package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pacelab/pacer/internal/skills"
	"github.com/pacelab/pacer/internal/variation"
)

const systemPrompt = `You are a practice content generator for an adaptive learning system.
You produce question variations and retrieval prompts that keep the underlying
concept intact while changing the surface presentation. Output only the
requested JSON.`

// Generation defaults. Variations are short rewrites, retrieval prompts
// shorter still.
const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)

// Generator produces varied questions and retrieval prompts through a
// content Provider.
type Generator struct {
	provider    Provider
	maxTokens   int
	temperature float64
}

// NewGenerator creates a Generator over the given provider.
func NewGenerator(provider Provider) *Generator {
	return &Generator{
		provider:    provider,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

// VariedQuestion is a question rewritten under a variation type.
type VariedQuestion struct {
	OriginalQuestion     string `json:"original_question"`
	VariedQuestion       string `json:"varied_question"`
	VariationType        string `json:"variation_type"`
	VariationDescription string `json:"variation_description"`
}

// variedQuestionSchema defines the JSON schema for variation responses.
var variedQuestionSchema = &Schema{
	Name:        "varied-question",
	Description: "A practice question rewritten under a specific variation type",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"original_question": map[string]any{
				"type":        "string",
				"description": "The question before variation, unchanged",
			},
			"varied_question": map[string]any{
				"type":        "string",
				"description": "The rewritten question testing the same concept",
			},
			"variation_type": map[string]any{
				"type":        "string",
				"enum":        []any{"context", "format", "numerical", "phrasing"},
				"description": "Which aspect of the question was varied",
			},
			"variation_description": map[string]any{
				"type":        "string",
				"description": "One sentence describing what changed",
			},
		},
		"required":             []any{"original_question", "varied_question", "variation_type", "variation_description"},
		"additionalProperties": false,
	},
}

// Vary rewrites a base question under the given variation prompt.
func (g *Generator) Vary(ctx context.Context, skill skills.Skill, baseQuestion string, prompt variation.Prompt) (*VariedQuestion, error) {
	ctx = WithPurpose(ctx, "variation")

	userMsg := fmt.Sprintf(
		"Skill: %s (difficulty %.1f, Bloom level %s)\nBase question: %s\n\n%s",
		skill.Name, skill.Difficulty, skill.BloomLevel.Label(), baseQuestion, prompt.Instruction,
	)

	resp, err := g.provider.Generate(ctx, Request{
		System:      systemPrompt,
		Prompt:      userMsg,
		Schema:      variedQuestionSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate variation: %w", err)
	}

	var vq VariedQuestion
	if err := json.Unmarshal(resp.Content, &vq); err != nil {
		return nil, fmt.Errorf("parse variation response: %w", err)
	}
	return &vq, nil
}

// RetrievalQuestion is an open-ended retrieval prompt with an expected
// answer outline for self-assessment.
type RetrievalQuestion struct {
	Question      string `json:"question"`
	AnswerOutline string `json:"answer_outline"`
}

// retrievalQuestionSchema defines the JSON schema for retrieval responses.
var retrievalQuestionSchema = &Schema{
	Name:        "retrieval-question",
	Description: "An open-ended retrieval practice prompt with an expected answer outline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "An open-ended question requiring recall without cues",
			},
			"answer_outline": map[string]any{
				"type":        "string",
				"description": "Key points a complete answer should cover",
			},
		},
		"required":             []any{"question", "answer_outline"},
		"additionalProperties": false,
	},
}

// Retrieval expands a templated retrieval prompt into a full open-ended
// question with an answer outline.
func (g *Generator) Retrieval(ctx context.Context, skill skills.Skill, basePrompt string) (*RetrievalQuestion, error) {
	ctx = WithPurpose(ctx, "retrieval")

	userMsg := fmt.Sprintf(
		"Skill: %s (Bloom level %s)\nRetrieval prompt: %s\n\nExpand this into a complete open-ended question. Do not include hints or multiple choice options.",
		skill.Name, skill.BloomLevel.Label(), basePrompt,
	)

	resp, err := g.provider.Generate(ctx, Request{
		System:      systemPrompt,
		Prompt:      userMsg,
		Schema:      retrievalQuestionSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate retrieval question: %w", err)
	}

	var rq RetrievalQuestion
	if err := json.Unmarshal(resp.Content, &rq); err != nil {
		return nil, fmt.Errorf("parse retrieval response: %w", err)
	}
	return &rq, nil
}
