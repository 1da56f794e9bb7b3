// Package qualify implements the lead qualification and scoring engine.
// It renders a qualification prompt, calls an external language-model
// qualifier, defensively parses its output, computes an enhanced composite
// score, and falls back to deterministic rule-based qualification whenever
// the external path fails.
package qualify

import (
	"time"

	"github.com/google/uuid"
)

// Category buckets a lead's sales readiness.
const (
	CategoryHot  = "Hot"
	CategoryWarm = "Warm"
	CategoryCold = "Cold"
)

// LeadInput is the immutable input to a qualification attempt.
// Company, Budget and Timeline are optional free-text fields.
type LeadInput struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Company  string
	Message  string
	Budget   string
	Timeline string
}

// QualificationResult is the outcome of one qualification attempt.
// Fallback results carry a fixed confidence of 0.7, the fixed fallback
// reasoning text and no scoring breakdown.
type QualificationResult struct {
	Score            int               `json:"score"`
	Category         string            `json:"category"`
	Confidence       float64           `json:"confidence"`
	Reasoning        string            `json:"reasoning"`
	BuyingSignals    []string          `json:"buying_signals"`
	RiskFactors      []string          `json:"risk_factors"`
	NextActions      []string          `json:"next_actions"`
	AIOriginalScore  *int              `json:"ai_original_score,omitempty"`
	ScoringBreakdown *ScoringBreakdown `json:"scoring_breakdown,omitempty"`
}

// Fallback reports whether this result came from the rule-based engine
// rather than a validated external qualifier response.
func (r QualificationResult) Fallback() bool {
	return r.ScoringBreakdown == nil
}

// ScoringBreakdown records per-component score contributions for
// transparency. The five numeric components sum to TotalScore before the
// final 0-100 clamp.
type ScoringBreakdown struct {
	BaseConfidenceScore int               `json:"base_confidence_score"`
	AIInfluenceScore    int               `json:"ai_influence_score"`
	BuyingSignalsScore  int               `json:"buying_signals_score"`
	RiskFactorsScore    int               `json:"risk_factors_score"`
	CombinationBonus    int               `json:"combination_bonus"`
	TotalScore          int               `json:"total_score"`
	Category            string            `json:"category"`
	Breakdown           map[string]string `json:"breakdown"`
}

// Payload is the validated structure parsed from the external qualifier's
// response. Required fields are pointers so the validator can distinguish
// absent keys from zero values; optional list fields stay nil when absent
// and are defaulted by the orchestrator, not the validator.
type Payload struct {
	Score         *float64 `json:"score"`
	Category      *string  `json:"category"`
	Confidence    *float64 `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
	BuyingSignals []string `json:"buying_signals"`
	RiskFactors   []string `json:"risk_factors"`
	NextActions   []string `json:"next_actions"`
}

// TokenUsage carries the token counts reported by the external qualifier.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// RawResponse is the unparsed output of one external qualifier call.
type RawResponse struct {
	Text    string
	Model   string
	Usage   TokenUsage
	Elapsed time.Duration
}

// ProcessingLogEntry is the audit record written once per qualification
// attempt. Entries are append-only.
type ProcessingLogEntry struct {
	LeadID         uuid.UUID
	Model          string
	Prompt         string
	Response       string
	ProcessingTime time.Duration
	Success        bool
	ErrorMessage   string
}
