package qualify

import (
	"reflect"
	"testing"
)

func TestFallbackQualify(t *testing.T) {
	engine := NewFallbackEngine(DefaultConfig().FallbackThresholds)

	tests := []struct {
		name         string
		lead         LeadInput
		wantScore    int
		wantCategory string
		wantSignals  []string
	}{
		{
			name:         "no keywords",
			lead:         LeadInput{Message: "hello there"},
			wantScore:    50,
			wantCategory: CategoryCold,
			wantSignals:  []string{},
		},
		{
			name:         "budget keyword only",
			lead:         LeadInput{Message: "what is the pricing for 50 users"},
			wantScore:    70,
			wantCategory: CategoryWarm,
			wantSignals:  []string{"Budget mentioned"},
		},
		{
			name:         "urgency keyword only",
			lead:         LeadInput{Message: "we have a hard deadline"},
			wantScore:    65,
			wantCategory: CategoryWarm,
			wantSignals:  []string{"Urgency expressed"},
		},
		{
			name:         "budget and urgency",
			lead:         LeadInput{Message: "budget approved, need this asap"},
			wantScore:    85,
			wantCategory: CategoryHot,
			wantSignals:  []string{"Budget mentioned", "Urgency expressed"},
		},
		{
			// Only the message is inspected. A budget field saying
			// "no budget" must not trigger the budget bonus.
			name:         "budget and timeline fields are ignored",
			lead:         LeadInput{Message: "need a CRM", Budget: "no budget", Timeline: "urgent"},
			wantScore:    50,
			wantCategory: CategoryCold,
			wantSignals:  []string{},
		},
		{
			name:         "matching is case insensitive",
			lead:         LeadInput{Message: "BUDGET is ready, ASAP please"},
			wantScore:    85,
			wantCategory: CategoryHot,
			wantSignals:  []string{"Budget mentioned", "Urgency expressed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Qualify(tt.lead)

			if result.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.Category != tt.wantCategory {
				t.Fatalf("category = %q, want %q", result.Category, tt.wantCategory)
			}
			if !reflect.DeepEqual(result.BuyingSignals, tt.wantSignals) {
				t.Errorf("signals = %v, want %v", result.BuyingSignals, tt.wantSignals)
			}
		})
	}
}

func TestFallbackResultShape(t *testing.T) {
	engine := NewFallbackEngine(DefaultConfig().FallbackThresholds)

	result := engine.Qualify(LeadInput{Message: "hello"})

	if result.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", result.Confidence)
	}
	if result.Reasoning != FallbackReasoning {
		t.Errorf("reasoning = %q", result.Reasoning)
	}
	if len(result.RiskFactors) != 0 || result.RiskFactors == nil {
		t.Errorf("risk factors = %v, want empty non-nil slice", result.RiskFactors)
	}
	if !reflect.DeepEqual(result.NextActions, []string{"Manual review required"}) {
		t.Errorf("next actions = %v", result.NextActions)
	}
	if !result.Fallback() {
		t.Errorf("fallback result must report Fallback() true")
	}
	if result.AIOriginalScore != nil || result.ScoringBreakdown != nil {
		t.Errorf("fallback result must not carry AI fields")
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	engine := NewFallbackEngine(DefaultConfig().FallbackThresholds)
	lead := LeadInput{Message: "budget approved, need this asap"}

	first := engine.Qualify(lead)
	second := engine.Qualify(lead)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical leads produced different fallback results")
	}
}
