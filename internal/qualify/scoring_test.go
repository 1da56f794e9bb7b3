package qualify

import (
	"reflect"
	"testing"
)

func scoringPayload(score, confidence float64, signals, risks []string) Payload {
	category := CategoryWarm
	return Payload{
		Score:         &score,
		Category:      &category,
		Confidence:    &confidence,
		BuyingSignals: signals,
		RiskFactors:   risks,
	}
}

func TestScoreHotLead(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	payload := scoringPayload(75, 0.8, []string{"Budget mentioned", "Short timeline"}, nil)
	total, category, breakdown := engine.Score(payload)

	if total != 100 {
		t.Fatalf("total = %d, want 100", total)
	}
	if category != CategoryHot {
		t.Fatalf("category = %q, want %q", category, CategoryHot)
	}
	if breakdown.BaseConfidenceScore != 56 {
		t.Errorf("base confidence = %d, want 56", breakdown.BaseConfidenceScore)
	}
	if breakdown.AIInfluenceScore != 22 {
		t.Errorf("ai influence = %d, want 22", breakdown.AIInfluenceScore)
	}
	if breakdown.BuyingSignalsScore != 37 {
		t.Errorf("signals score = %d, want 37", breakdown.BuyingSignalsScore)
	}
	if breakdown.CombinationBonus != 15 {
		t.Errorf("combination bonus = %d, want 15", breakdown.CombinationBonus)
	}
}

func TestScoreColdLead(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	payload := scoringPayload(40, 0.5, nil, []string{"no budget", "just browsing"})
	total, category, breakdown := engine.Score(payload)

	if total != 17 {
		t.Fatalf("total = %d, want 17", total)
	}
	if category != CategoryCold {
		t.Fatalf("category = %q, want %q", category, CategoryCold)
	}
	if breakdown.RiskFactorsScore != -30 {
		t.Errorf("risk score floored at -30, got %d", breakdown.RiskFactorsScore)
	}
	if breakdown.BuyingSignalsScore != 0 {
		t.Errorf("signals score = %d, want 0", breakdown.BuyingSignalsScore)
	}
}

func TestScoreMatchingIsCaseInsensitive(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	lower, _, _ := engine.Score(scoringPayload(60, 0.6, []string{"budget mentioned"}, nil))
	upper, _, _ := engine.Score(scoringPayload(60, 0.6, []string{"BUDGET MENTIONED"}, nil))

	if lower != upper {
		t.Fatalf("case changed the score: %d vs %d", lower, upper)
	}
}

func TestScoreSignalCap(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	payload := scoringPayload(10, 0.1,
		[]string{"budget allocated", "timeline pressure", "losing money", "urgent need"}, nil)
	_, _, breakdown := engine.Score(payload)

	if breakdown.BuyingSignalsScore != 40 {
		t.Fatalf("signals score = %d, want cap of 40", breakdown.BuyingSignalsScore)
	}
}

func TestScoreSingleWordPhrasesNeedWordBoundaries(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	// "demo" must not match inside "demonstration".
	_, _, partial := engine.Score(scoringPayload(10, 0.1, []string{"demonstration scheduled"}, nil))
	if partial.BuyingSignalsScore != 0 {
		t.Fatalf("partial word matched: signals score = %d, want 0", partial.BuyingSignalsScore)
	}

	_, _, whole := engine.Score(scoringPayload(10, 0.1, []string{"demo requested"}, nil))
	if whole.BuyingSignalsScore != 8 {
		t.Fatalf("whole word missed: signals score = %d, want 8", whole.BuyingSignalsScore)
	}
}

func TestScoreBreakdownPercentages(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	_, _, breakdown := engine.Score(scoringPayload(75, 0.8, []string{"Budget mentioned", "Short timeline"}, nil))

	want := map[string]string{
		"confidence_contribution": "56.0%",
		"ai_contribution":         "22.0%",
		"signals_contribution":    "37.0%",
		"risks_contribution":      "0.0%",
	}
	if !reflect.DeepEqual(breakdown.Breakdown, want) {
		t.Fatalf("breakdown = %v, want %v", breakdown.Breakdown, want)
	}
}

func TestScoreZeroTotalGuardsPercentages(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	total, category, breakdown := engine.Score(scoringPayload(0, 0, nil, []string{"just browsing", "no budget"}))

	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
	if category != CategoryCold {
		t.Fatalf("category = %q, want %q", category, CategoryCold)
	}
	for key, value := range breakdown.Breakdown {
		if value != "0%" {
			t.Errorf("%s = %q, want 0%% with non-positive total", key, value)
		}
	}
}

func TestScoreLargeBudgetBonus(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())

	_, _, breakdown := engine.Score(scoringPayload(10, 0.1, []string{"$50k budget approved"}, nil))

	// Both the "50k" and "$50k" phrases match, so the sum hits the cap.
	if breakdown.BuyingSignalsScore != 40 {
		t.Errorf("signals score = %d, want 40 for $50k", breakdown.BuyingSignalsScore)
	}
	if breakdown.CombinationBonus != 10 {
		t.Errorf("combination bonus = %d, want 10 for large budget", breakdown.CombinationBonus)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := NewScoringEngine(DefaultConfig())
	payload := scoringPayload(75, 0.8, []string{"Budget mentioned", "asap"}, []string{"startup"})

	first, _, firstBreakdown := engine.Score(payload)
	second, _, secondBreakdown := engine.Score(payload)

	if first != second {
		t.Fatalf("scores differ across runs: %d vs %d", first, second)
	}
	if !reflect.DeepEqual(firstBreakdown, secondBreakdown) {
		t.Fatalf("breakdowns differ across runs")
	}
}
