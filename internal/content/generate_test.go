package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pacelab/pacer/internal/skills"
	"github.com/pacelab/pacer/internal/variation"
)

func testSkill() skills.Skill {
	return skills.Skill{
		ID:         "fractions",
		Name:       "Fraction Addition",
		BloomLevel: skills.BloomApply,
		Difficulty: 0.6,
		PMastery:   0.5,
	}
}

func TestGeneratorVary(t *testing.T) {
	canned := VariedQuestion{
		OriginalQuestion:     "What is 1/2 + 1/4?",
		VariedQuestion:       "A recipe needs 1/2 cup of flour and another 1/4 cup. How much flour in total?",
		VariationType:        "context",
		VariationDescription: "Wrapped the sum in a cooking scenario",
	}
	body, _ := json.Marshal(canned)

	mock := NewMockProvider(MockResponse{Content: body})
	gen := NewGenerator(mock)

	prompt := variation.BuildPrompt(testSkill(), variation.TypeContext)
	got, err := gen.Vary(context.Background(), testSkill(), "What is 1/2 + 1/4?", prompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.VariationType != "context" {
		t.Errorf("variation type = %q, want \"context\"", got.VariationType)
	}
	if got.VariedQuestion != canned.VariedQuestion {
		t.Errorf("varied question = %q", got.VariedQuestion)
	}

	// The request must carry the skill, base question, and instruction.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "varied-question" {
		t.Errorf("expected varied-question schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Prompt, "Fraction Addition") {
		t.Errorf("prompt missing skill name: %q", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "What is 1/2 + 1/4?") {
		t.Errorf("prompt missing base question: %q", req.Prompt)
	}
	if !strings.Contains(req.Prompt, prompt.Instruction) {
		t.Errorf("prompt missing variation instruction: %q", req.Prompt)
	}
}

func TestGeneratorVaryProviderError(t *testing.T) {
	mock := NewMockProvider() // empty queue returns ErrProviderUnavailable
	gen := NewGenerator(mock)

	prompt := variation.BuildPrompt(testSkill(), variation.TypePhrasing)
	_, err := gen.Vary(context.Background(), testSkill(), "base", prompt)
	if err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestGeneratorRetrieval(t *testing.T) {
	canned := RetrievalQuestion{
		Question:      "Explain how you would add two fractions with different denominators.",
		AnswerOutline: "Find a common denominator, convert, add numerators, simplify.",
	}
	body, _ := json.Marshal(canned)

	mock := NewMockProvider(MockResponse{Content: body})
	gen := NewGenerator(mock)

	got, err := gen.Retrieval(context.Background(), testSkill(), "What do you remember about common denominators?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Question != canned.Question {
		t.Errorf("question = %q", got.Question)
	}
	if got.AnswerOutline == "" {
		t.Error("expected non-empty answer outline")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "retrieval-question" {
		t.Errorf("expected retrieval-question schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Prompt, "common denominators") {
		t.Errorf("prompt missing base retrieval prompt: %q", req.Prompt)
	}
}

func TestGeneratorVaryMalformedResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"varied_question":`)})
	gen := NewGenerator(mock)

	prompt := variation.BuildPrompt(testSkill(), variation.TypeNumerical)
	_, err := gen.Vary(context.Background(), testSkill(), "base", prompt)
	if err == nil {
		t.Fatal("expected parse error for malformed response")
	}
}
