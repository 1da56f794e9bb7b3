package qualify

import "encoding/json"

// ValidateResponse parses sanitized qualifier output and checks it against
// the required schema. It returns the parsed payload unchanged: optional
// keys such as buying_signals are not defaulted here, that is the
// consumer's job. Pure predicate plus parse, no mutation.
func ValidateResponse(sanitized string) (Payload, *PipelineError) {
	var payload Payload
	if err := json.Unmarshal([]byte(sanitized), &payload); err != nil {
		return Payload{}, malformed(err)
	}

	if payload.Score == nil || payload.Category == nil || payload.Confidence == nil {
		return Payload{}, schemaViolation("missing required field: score, category and confidence must be present")
	}

	if *payload.Score < 0 || *payload.Score > 100 {
		return Payload{}, schemaViolation("score %v out of range 0-100", *payload.Score)
	}

	switch *payload.Category {
	case CategoryHot, CategoryWarm, CategoryCold:
	default:
		return Payload{}, schemaViolation("unknown category %q", *payload.Category)
	}

	return payload, nil
}
