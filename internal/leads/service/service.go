// Package service implements lead intake and qualification workflows on
// top of the repository and the qualification engine.
package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"leadgenie_backend/internal/events"
	"leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/internal/qualify"
	"leadgenie_backend/internal/scheduler"
	"leadgenie_backend/platform/apperr"
	"leadgenie_backend/platform/logger"
)

type Service struct {
	repo      *repository.Repository
	qualifier *qualify.Service
	bus       events.Bus
	enqueuer  scheduler.QualificationEnqueuer
	log       *logger.Logger
}

func New(repo *repository.Repository, qualifier *qualify.Service, bus events.Bus, enqueuer scheduler.QualificationEnqueuer, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		qualifier: qualifier,
		bus:       bus,
		enqueuer:  enqueuer,
		log:       log,
	}
}

// Create stores a new lead and hands it to the background qualification
// queue. If enqueueing fails the lead stays NEW for manual qualification;
// intake never fails because of the queue.
func (s *Service) Create(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
	})

	if s.enqueuer != nil {
		payload := scheduler.LeadQualifyPayload{LeadID: lead.ID.String()}
		if err := s.enqueuer.EnqueueLeadQualification(ctx, payload); err != nil {
			s.log.Error("failed to enqueue lead qualification", "error", err, "leadId", lead.ID)
			return lead, nil
		}
		if err := s.repo.SetStatus(ctx, lead.ID, repository.StatusProcessing); err == nil {
			lead.Status = repository.StatusProcessing
		}
	}

	return lead, nil
}

// QualifyNow stores a new lead and qualifies it synchronously within the
// request. The qualification itself cannot fail; only persistence can.
func (s *Service) QualifyNow(ctx context.Context, params repository.CreateLeadParams) (repository.Lead, error) {
	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
	})

	return s.runQualification(ctx, lead)
}

// QualifyBatch stores and qualifies a batch of leads concurrently,
// returning them in input order.
func (s *Service) QualifyBatch(ctx context.Context, paramsList []repository.CreateLeadParams) ([]repository.Lead, error) {
	leads := make([]repository.Lead, len(paramsList))
	inputs := make([]qualify.LeadInput, len(paramsList))
	for i, params := range paramsList {
		lead, err := s.repo.Create(ctx, params)
		if err != nil {
			return nil, err
		}
		leads[i] = lead
		inputs[i] = leadInput(lead)
	}

	results := s.qualifier.QualifyBatch(ctx, inputs)

	for i, result := range results {
		updated, err := s.applyResult(ctx, leads[i], result)
		if err != nil {
			return nil, err
		}
		leads[i] = updated
	}
	return leads, nil
}

// ProcessQualification is the background worker entry point: it loads the
// lead, runs the pipeline and persists the outcome. Already-qualified
// leads are skipped so task retries stay idempotent.
func (s *Service) ProcessQualification(ctx context.Context, leadID uuid.UUID) error {
	lead, err := s.repo.GetByID(ctx, leadID)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Warn("dropping qualification task for unknown lead", "leadId", leadID)
		return nil
	}
	if err != nil {
		return err
	}

	if lead.Status == repository.StatusQualified {
		return nil
	}

	if lead.Status != repository.StatusProcessing {
		if err := s.repo.SetStatus(ctx, lead.ID, repository.StatusProcessing); err != nil {
			return err
		}
	}

	if _, err := s.runQualification(ctx, lead); err != nil {
		if markErr := s.repo.MarkFailed(ctx, lead.ID); markErr != nil {
			s.log.DatabaseError("mark lead failed", markErr)
		}
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, err
}

func (s *Service) List(ctx context.Context, params repository.ListLeadsParams) ([]repository.Lead, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) ProcessingLogs(ctx context.Context, leadID uuid.UUID, limit int) ([]repository.ProcessingLog, error) {
	if _, err := s.Get(ctx, leadID); err != nil {
		return nil, err
	}
	return s.repo.ListProcessingLogs(ctx, leadID, limit)
}

func (s *Service) runQualification(ctx context.Context, lead repository.Lead) (repository.Lead, error) {
	result := s.qualifier.Qualify(ctx, leadInput(lead))
	return s.applyResult(ctx, lead, result)
}

func (s *Service) applyResult(ctx context.Context, lead repository.Lead, result qualify.QualificationResult) (repository.Lead, error) {
	var breakdown json.RawMessage
	if result.ScoringBreakdown != nil {
		data, err := json.Marshal(result.ScoringBreakdown)
		if err != nil {
			return repository.Lead{}, err
		}
		breakdown = data
	}

	updated, err := s.repo.ApplyQualification(ctx, lead.ID, repository.QualificationParams{
		Score:            result.Score,
		Category:         result.Category,
		Confidence:       result.Confidence,
		Reasoning:        result.Reasoning,
		BuyingSignals:    result.BuyingSignals,
		RiskFactors:      result.RiskFactors,
		NextActions:      result.NextActions,
		AIOriginalScore:  result.AIOriginalScore,
		ScoringBreakdown: breakdown,
	})
	if err != nil {
		return repository.Lead{}, err
	}

	s.bus.Publish(ctx, events.LeadQualified{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    updated.ID,
		Score:     result.Score,
		Category:  result.Category,
		Fallback:  result.Fallback(),
	})

	return updated, nil
}

func leadInput(lead repository.Lead) qualify.LeadInput {
	return qualify.LeadInput{
		ID:       lead.ID,
		Name:     lead.Name,
		Email:    lead.Email,
		Company:  deref(lead.Company),
		Message:  lead.Message,
		Budget:   deref(lead.Budget),
		Timeline: deref(lead.Timeline),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
