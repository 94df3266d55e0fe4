package retrieval

import (
	"strings"
	"testing"
)

func drain(p *PromptSource) []string {
	var out []string
	for {
		prompt, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, prompt)
	}
}

func TestPrompts_TierEscalation(t *testing.T) {
	basic := drain(Prompts("Fractions", nil, 0))
	application := drain(Prompts("Fractions", nil, 4))
	connection := drain(Prompts("Fractions", nil, 8))

	if len(basic) != 2 || len(application) != 2 || len(connection) != 2 {
		t.Fatalf("tier sizes = %d/%d/%d, want 2 each",
			len(basic), len(application), len(connection))
	}
	if !strings.Contains(basic[0], "your own words") {
		t.Errorf("basic tier prompt = %q", basic[0])
	}
	if !strings.Contains(application[0], "situation") {
		t.Errorf("application tier prompt = %q", application[0])
	}
	if !strings.Contains(connection[0], "connect") {
		t.Errorf("connection tier prompt = %q", connection[0])
	}
}

func TestPrompts_OnePerKeyConcept(t *testing.T) {
	concepts := []string{"numerator", "denominator", "common factor"}
	prompts := drain(Prompts("Fractions", concepts, 4))

	if len(prompts) != 2+len(concepts) {
		t.Fatalf("got %d prompts, want %d", len(prompts), 2+len(concepts))
	}
	for i, concept := range concepts {
		if !strings.Contains(prompts[2+i], concept) {
			t.Errorf("prompt %d = %q, want mention of %q", 2+i, prompts[2+i], concept)
		}
	}
}

func TestPrompts_NonRestartable(t *testing.T) {
	p := Prompts("Fractions", []string{"numerator"}, 0)
	drain(p)

	if _, ok := p.Next(); ok {
		t.Error("drained source yielded another prompt")
	}
	if p.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", p.Remaining())
	}
}

func TestPrompts_RemainingCountsDown(t *testing.T) {
	p := Prompts("Fractions", []string{"numerator"}, 0)
	if p.Remaining() != 3 {
		t.Fatalf("Remaining = %d, want 3", p.Remaining())
	}
	p.Next()
	if p.Remaining() != 2 {
		t.Errorf("Remaining after one draw = %d, want 2", p.Remaining())
	}
}
