package qualify

import "fmt"

// FailureKind tags the reason a qualification pipeline gave up on the
// external path. The orchestrator switches on it exactly once to pick
// fallback handling; none of these ever reach the caller.
type FailureKind int

const (
	// FailureQualifierUnavailable covers transport errors, timeouts and
	// non-success statuses from the external qualifier.
	FailureQualifierUnavailable FailureKind = iota + 1
	// FailureMalformedResponse means the response stayed unparseable even
	// after sanitization.
	FailureMalformedResponse
	// FailureSchemaViolation means the response parsed but was missing
	// required keys or carried out-of-range values.
	FailureSchemaViolation
)

func (k FailureKind) String() string {
	switch k {
	case FailureQualifierUnavailable:
		return "qualifier_unavailable"
	case FailureMalformedResponse:
		return "malformed_response"
	case FailureSchemaViolation:
		return "schema_violation"
	default:
		return "unknown"
	}
}

// PipelineError is the tagged error type flowing through the qualification
// pipeline.
type PipelineError struct {
	Kind FailureKind
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func unavailable(err error) *PipelineError {
	return &PipelineError{Kind: FailureQualifierUnavailable, Err: err}
}

func malformed(err error) *PipelineError {
	return &PipelineError{Kind: FailureMalformedResponse, Err: err}
}

func schemaViolation(format string, args ...interface{}) *PipelineError {
	return &PipelineError{Kind: FailureSchemaViolation, Err: fmt.Errorf(format, args...)}
}
