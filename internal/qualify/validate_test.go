package qualify

import "testing"

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind FailureKind
	}{
		{
			name:  "valid minimal payload",
			input: `{"score": 80, "category": "Hot", "confidence": 0.9}`,
		},
		{
			name:     "unparseable",
			input:    `not json at all`,
			wantKind: FailureMalformedResponse,
		},
		{
			name:     "missing score",
			input:    `{"category": "Hot", "confidence": 0.9}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "missing category",
			input:    `{"score": 80, "confidence": 0.9}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "missing confidence",
			input:    `{"score": 80, "category": "Hot"}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "score above range",
			input:    `{"score": 150, "category": "Hot", "confidence": 0.9}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "score below range",
			input:    `{"score": -1, "category": "Hot", "confidence": 0.9}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "unknown category",
			input:    `{"score": 80, "category": "Lukewarm", "confidence": 0.9}`,
			wantKind: FailureSchemaViolation,
		},
		{
			name:     "wrong type for score",
			input:    `{"score": "eighty", "category": "Hot", "confidence": 0.9}`,
			wantKind: FailureMalformedResponse,
		},
		{
			name:  "boundary scores accepted",
			input: `{"score": 0, "category": "Cold", "confidence": 0.1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, perr := ValidateResponse(tt.input)
			if tt.wantKind == 0 {
				if perr != nil {
					t.Fatalf("unexpected error: %v", perr)
				}
				return
			}
			if perr == nil {
				t.Fatalf("expected failure kind %s, got nil", tt.wantKind)
			}
			if perr.Kind != tt.wantKind {
				t.Fatalf("failure kind = %s, want %s", perr.Kind, tt.wantKind)
			}
		})
	}
}

func TestValidateResponsePreservesPayload(t *testing.T) {
	input := `{"score": 75, "category": "Hot", "confidence": 0.8,
		"reasoning": "strong signals",
		"buying_signals": ["Budget mentioned", "Short timeline"],
		"risk_factors": [],
		"next_actions": ["Schedule demo"]}`

	payload, perr := ValidateResponse(input)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}

	if *payload.Score != 75 || *payload.Category != CategoryHot || *payload.Confidence != 0.8 {
		t.Fatalf("required fields not preserved: %+v", payload)
	}
	if payload.Reasoning != "strong signals" {
		t.Errorf("reasoning = %q", payload.Reasoning)
	}
	if len(payload.BuyingSignals) != 2 || payload.BuyingSignals[0] != "Budget mentioned" {
		t.Errorf("buying signals not preserved: %v", payload.BuyingSignals)
	}
	if len(payload.NextActions) != 1 {
		t.Errorf("next actions not preserved: %v", payload.NextActions)
	}
}

func TestValidateResponseLeavesOptionalListsNil(t *testing.T) {
	payload, perr := ValidateResponse(`{"score": 80, "category": "Hot", "confidence": 0.9}`)
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if payload.BuyingSignals != nil || payload.RiskFactors != nil || payload.NextActions != nil {
		t.Fatalf("optional lists should stay nil when absent, got %+v", payload)
	}
}
