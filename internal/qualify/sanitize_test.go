package qualify

import "testing"

func TestSanitizeResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean json untouched",
			input: `{"score": 80}`,
			want:  `{"score": 80}`,
		},
		{
			name:  "strips leading prose",
			input: `Here is the analysis: {"score": 80}`,
			want:  `{"score": 80}`,
		},
		{
			name:  "strips trailing prose",
			input: `{"score": 80} I hope this helps!`,
			want:  `{"score": 80}`,
		},
		{
			name:  "appends missing closing brace",
			input: `{"score": 80, "nested": {"a": 1}`,
			want:  `{"score": 80, "nested": {"a": 1}}`,
		},
		{
			name:  "removes trailing comma in object",
			input: `{"score": 80,}`,
			want:  `{"score": 80}`,
		},
		{
			name:  "removes trailing comma in array",
			input: `{"signals": ["a", "b",]}`,
			want:  `{"signals": ["a", "b"]}`,
		},
		{
			name:  "trailing comma with whitespace",
			input: "{\"score\": 80,\n }",
			want:  `{"score": 80}`,
		},
		{
			name:  "no braces at all",
			input: "I cannot analyze this lead.",
			want:  "I cannot analyze this lead.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeResponse(tt.input)
			if got != tt.want {
				t.Fatalf("SanitizeResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeResponseIsIdempotent(t *testing.T) {
	inputs := []string{
		`Sure! {"score": 80, "signals": ["a",],}`,
		`{"score": 80, "nested": {"a": 1}`,
		"no json here",
	}

	for _, input := range inputs {
		once := SanitizeResponse(input)
		twice := SanitizeResponse(once)
		if once != twice {
			t.Fatalf("sanitizing twice changed output: %q -> %q", once, twice)
		}
	}
}
