package qualify

import "strings"

// FallbackReasoning marks results produced without the external qualifier.
const FallbackReasoning = "Rule-based qualification due to AI service failure."

var (
	fallbackBudgetKeywords  = []string{"budget", "price", "cost", "pricing", "quote"}
	fallbackUrgencyKeywords = []string{"urgent", "asap", "immediately", "now", "deadline"}
)

// FallbackEngine produces a conservative rule-based qualification from the
// raw lead text when the external path fails. It inspects only the lead
// itself, never any partial qualifier output, and cannot fail.
type FallbackEngine struct {
	thresholds CategoryThresholds
}

func NewFallbackEngine(thresholds CategoryThresholds) *FallbackEngine {
	return &FallbackEngine{thresholds: thresholds}
}

// Qualify scores a lead by keyword inspection of its message. The budget
// and timeline fields are ignored here: a budget field reading "no budget"
// must not earn the budget bonus. Results are deliberately coarse, with a
// fixed confidence, no risk factors and a manual-review next action.
func (e *FallbackEngine) Qualify(lead LeadInput) QualificationResult {
	text := strings.ToLower(lead.Message)

	score := 50
	signals := []string{}

	if containsAny(text, fallbackBudgetKeywords...) {
		score += 20
		signals = append(signals, "Budget mentioned")
	}
	if containsAny(text, fallbackUrgencyKeywords...) {
		score += 15
		signals = append(signals, "Urgency expressed")
	}
	if score > 100 {
		score = 100
	}

	return QualificationResult{
		Score:         score,
		Category:      e.thresholds.Categorize(score),
		Confidence:    0.7,
		Reasoning:     FallbackReasoning,
		BuyingSignals: signals,
		RiskFactors:   []string{},
		NextActions:   []string{"Manual review required"},
	}
}
