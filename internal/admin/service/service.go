package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"leadgenie_backend/internal/admin/repository"
	leadsrepo "leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/platform/apperr"
	"leadgenie_backend/platform/logger"
)

// Store provides the admin-specific user and aggregate queries.
type Store interface {
	ListUsers(ctx context.Context, limit, offset int) ([]repository.User, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	Stats(ctx context.Context) (repository.Stats, error)
}

// LeadStore is the slice of the leads repository the admin surface needs.
type LeadStore interface {
	List(ctx context.Context, params leadsrepo.ListLeadsParams) ([]leadsrepo.Lead, error)
	Update(ctx context.Context, id uuid.UUID, params leadsrepo.UpdateLeadParams) (leadsrepo.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store Store
	leads LeadStore
	log   *logger.Logger
}

func New(store Store, leads LeadStore, log *logger.Logger) *Service {
	return &Service{store: store, leads: leads, log: log}
}

func (s *Service) Users(ctx context.Context, limit, offset int) ([]repository.User, error) {
	return s.store.ListUsers(ctx, limit, offset)
}

func (s *Service) Leads(ctx context.Context, params leadsrepo.ListLeadsParams) ([]leadsrepo.Lead, error) {
	return s.leads.List(ctx, params)
}

func (s *Service) UpdateLead(ctx context.Context, id uuid.UUID, params leadsrepo.UpdateLeadParams) (leadsrepo.Lead, error) {
	lead, err := s.leads.Update(ctx, id, params)
	if errors.Is(err, leadsrepo.ErrNotFound) {
		return leadsrepo.Lead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		return leadsrepo.Lead{}, err
	}

	s.log.Info("lead updated by admin", "lead_id", id)
	return lead, nil
}

func (s *Service) DeleteLead(ctx context.Context, id uuid.UUID) error {
	err := s.leads.Delete(ctx, id)
	if errors.Is(err, leadsrepo.ErrNotFound) {
		return apperr.NotFound("lead not found")
	}
	if err != nil {
		return err
	}

	s.log.Info("lead deleted by admin", "lead_id", id)
	return nil
}

func (s *Service) Stats(ctx context.Context) (repository.Stats, error) {
	return s.store.Stats(ctx)
}

// IsAdmin reports whether the user holds the admin flag. An unknown user
// is simply not an admin.
func (s *Service) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	isAdmin, err := s.store.IsAdmin(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return isAdmin, err
}
