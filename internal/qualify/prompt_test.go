package qualify

import (
	"strings"
	"testing"
)

func TestBuildPromptIsDeterministic(t *testing.T) {
	lead := LeadInput{
		Name:     "Jane Smith",
		Email:    "jane@acme.example",
		Company:  "Acme Corp",
		Message:  "We need a CRM for 50 users",
		Budget:   "$10k",
		Timeline: "2 months",
	}

	first := BuildPrompt(lead)
	second := BuildPrompt(lead)
	if first != second {
		t.Fatalf("identical leads produced different prompts")
	}

	for _, want := range []string{"Jane Smith", "Acme Corp", "jane@acme.example", "$10k", "2 months"} {
		if !strings.Contains(first, want) {
			t.Errorf("prompt missing lead field %q", want)
		}
	}
}

func TestBuildPromptFillsMissingFields(t *testing.T) {
	lead := LeadInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Just browsing",
	}

	prompt := BuildPrompt(lead)

	if got := strings.Count(prompt, notProvided); got != 3 {
		t.Fatalf("expected 3 %q placeholders for company, budget and timeline, got %d", notProvided, got)
	}
	if !strings.Contains(prompt, "Company: "+notProvided) {
		t.Errorf("empty company not substituted")
	}
	if strings.Contains(prompt, "Name: "+notProvided) {
		t.Errorf("provided name was substituted")
	}
}

func TestBuildPromptTreatsWhitespaceAsMissing(t *testing.T) {
	lead := LeadInput{Name: "Bob", Email: "bob@example.com", Message: "hi", Budget: "   "}

	prompt := BuildPrompt(lead)

	if !strings.Contains(prompt, "Budget: "+notProvided) {
		t.Fatalf("whitespace-only budget should render as %q", notProvided)
	}
}
