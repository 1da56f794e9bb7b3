// Package notification subscribes to domain events and turns them into
// outbound messages. It is not HTTP-facing.
package notification

import (
	"context"

	"github.com/google/uuid"

	"leadgenie_backend/internal/config"
	"leadgenie_backend/internal/email"
	"leadgenie_backend/internal/events"
	"leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/internal/qualify"
	"leadgenie_backend/platform/logger"
)

// LeadReader loads lead details for notification rendering.
type LeadReader interface {
	Get(ctx context.Context, id uuid.UUID) (repository.Lead, error)
}

type Module struct {
	sender email.Sender
	leads  LeadReader
	inbox  string
	log    *logger.Logger
}

func New(sender email.Sender, leads LeadReader, cfg *config.Config, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		leads:  leads,
		inbox:  cfg.SalesInboxEmail,
		log:    log,
	}
}

// RegisterHandlers subscribes the module to the events it reacts to.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.EventLeadQualified, events.HandlerFunc(m.onLeadQualified))
}

func (m *Module) onLeadQualified(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadQualified)
	if !ok {
		return nil
	}
	if e.Category != qualify.CategoryHot || m.inbox == "" {
		return nil
	}

	lead, err := m.leads.Get(ctx, e.LeadID)
	if err != nil {
		return err
	}

	alert := email.HotLeadAlert{
		LeadName:    lead.Name,
		LeadEmail:   lead.Email,
		Score:       e.Score,
		Category:    e.Category,
		NextActions: lead.NextActions,
	}
	if lead.Company != nil {
		alert.Company = *lead.Company
	}
	if lead.Reasoning != nil {
		alert.Reasoning = *lead.Reasoning
	}

	if err := m.sender.SendHotLeadAlert(ctx, m.inbox, alert); err != nil {
		return err
	}

	m.log.Info("hot lead alert sent", "leadId", e.LeadID, "score", e.Score)
	return nil
}
