package events

import "github.com/google/uuid"

// Event names.
const (
	EventLeadCreated   = "lead.created"
	EventLeadQualified = "lead.qualified"
)

// LeadCreated fires when a new lead is accepted and queued for
// qualification.
type LeadCreated struct {
	BaseEvent
	LeadID uuid.UUID
	Name   string
	Email  string
}

func (e LeadCreated) EventName() string {
	return EventLeadCreated
}

// LeadQualified fires after a qualification attempt completes, whether it
// took the external path or the rule-based fallback.
type LeadQualified struct {
	BaseEvent
	LeadID   uuid.UUID
	Score    int
	Category string
	Fallback bool
}

func (e LeadQualified) EventName() string {
	return EventLeadQualified
}
