package qualify

import (
	"fmt"
	"strings"
)

// ScoringEngine recomputes a lead score from a validated qualifier payload.
// The model's own score only contributes a dampened fraction of the final
// number; the rest comes from the confidence base and from phrase-matching
// the reported signals and risks against the configured weight tables.
type ScoringEngine struct {
	cfg Config
}

func NewScoringEngine(cfg Config) *ScoringEngine {
	return &ScoringEngine{cfg: cfg}
}

// Score derives the composite score, category and per-component breakdown
// from a payload that has already passed schema validation. It is pure:
// the same payload always yields the same result.
func (e *ScoringEngine) Score(payload Payload) (int, string, *ScoringBreakdown) {
	confidence := *payload.Confidence
	aiScore := *payload.Score

	base := int(confidence * e.cfg.ConfidenceScale)
	aiInfluence := int(aiScore * e.cfg.AIInfluenceFactor)

	signalsText := strings.ToLower(strings.Join(payload.BuyingSignals, " "))
	risksText := strings.ToLower(strings.Join(payload.RiskFactors, " "))

	signalScore := 0
	for _, wp := range e.cfg.SignalWeights {
		if fuzzyMatch(wp.Phrase, signalsText) {
			signalScore += wp.Weight
		}
	}
	if signalScore > e.cfg.SignalCap {
		signalScore = e.cfg.SignalCap
	}

	riskScore := 0
	for _, wp := range e.cfg.RiskWeights {
		if fuzzyMatch(wp.Phrase, risksText) {
			riskScore += wp.Weight
		}
	}
	if riskScore < e.cfg.RiskFloor {
		riskScore = e.cfg.RiskFloor
	}

	bonus := combinationBonus(signalsText + " " + risksText)

	total := base + aiInfluence + signalScore + riskScore + bonus
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	category := e.cfg.ScoringThresholds.Categorize(total)

	breakdown := &ScoringBreakdown{
		BaseConfidenceScore: base,
		AIInfluenceScore:    aiInfluence,
		BuyingSignalsScore:  signalScore,
		RiskFactorsScore:    riskScore,
		CombinationBonus:    bonus,
		TotalScore:          total,
		Category:            category,
		Breakdown: map[string]string{
			"confidence_contribution": percentage(base, total),
			"ai_contribution":         percentage(aiInfluence, total),
			"signals_contribution":    percentage(signalScore, total),
			"risks_contribution":      percentage(riskScore, total),
		},
	}

	return total, category, breakdown
}

// combinationBonus rewards co-occurring signal groups that individually
// score well but together indicate a genuinely sales-ready lead.
func combinationBonus(text string) int {
	bonus := 0

	hasBudget := containsAny(text, "budget", "$", "k/month", "allocated")
	hasTimeline := containsAny(text, "timeline", "asap", "months", "weeks", "q1", "q2", "q3", "q4")
	hasUrgency := containsAny(text, "asap", "urgent", "pressure", "losing money")
	hasPain := containsAny(text, "pain", "terrible", "losing", "replace", "current vendor")
	hasLargeBudget := containsAny(text, "50k", "$50k", "50,000", "100k", "$100k")

	if hasBudget && hasTimeline {
		bonus += 15
	}
	if hasUrgency && hasPain {
		bonus += 12
	}
	if hasLargeBudget {
		bonus += 10
	}

	return bonus
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// fuzzyMatch reports whether a lowercase phrase occurs in lowercase text.
// Multi-word phrases match as an exact substring or when every constituent
// word appears somewhere in the text. Single-word phrases must land on word
// boundaries, so "budget" does not match "budgetary".
func fuzzyMatch(phrase, text string) bool {
	words := strings.Fields(phrase)
	if len(words) > 1 {
		if strings.Contains(text, phrase) {
			return true
		}
		for _, word := range words {
			if !strings.Contains(text, word) {
				return false
			}
		}
		return true
	}
	return boundedContains(text, phrase)
}

// boundedContains reports whether needle occurs in text with non-word
// characters (or the string edge) on both sides.
func boundedContains(text, needle string) bool {
	for from := 0; ; {
		idx := strings.Index(text[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)
		startOK := start == 0 || !isWordChar(text[start-1])
		endOK := end == len(text) || !isWordChar(text[end])
		if startOK && endOK {
			return true
		}
		from = start + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// percentage formats a component's share of the total for the breakdown
// map. A non-positive total would divide by zero, so it collapses to "0%".
func percentage(part, total int) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
