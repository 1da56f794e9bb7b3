package email

import (
	"strings"
	"testing"
)

func TestRenderHotLeadAlert(t *testing.T) {
	content, err := renderHotLeadAlert(HotLeadAlert{
		LeadName:    "Jane Smith",
		LeadEmail:   "jane@acme.example",
		Company:     "Acme Corp",
		Score:       92,
		Category:    "Hot",
		Reasoning:   "Clear budget and short timeline",
		NextActions: []string{"Schedule a demo", "Send pricing"},
	})
	if err != nil {
		t.Fatalf("renderHotLeadAlert: %v", err)
	}

	for _, want := range []string{"Jane Smith", "jane@acme.example", "Acme Corp", "92", "Schedule a demo"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered alert missing %q", want)
		}
	}
}

func TestRenderHotLeadAlertOmitsEmptySections(t *testing.T) {
	content, err := renderHotLeadAlert(HotLeadAlert{LeadName: "Bob", LeadEmail: "bob@example.com", Score: 85, Category: "Hot"})
	if err != nil {
		t.Fatalf("renderHotLeadAlert: %v", err)
	}

	if strings.Contains(content, "Company") {
		t.Errorf("empty company rendered")
	}
	if strings.Contains(content, "Suggested next actions") {
		t.Errorf("empty next actions rendered")
	}
}

func TestRenderHotLeadAlertEscapesHTML(t *testing.T) {
	content, err := renderHotLeadAlert(HotLeadAlert{LeadName: "<script>alert(1)</script>", LeadEmail: "x@example.com"})
	if err != nil {
		t.Fatalf("renderHotLeadAlert: %v", err)
	}
	if strings.Contains(content, "<script>") {
		t.Fatalf("lead-provided content not escaped")
	}
}
