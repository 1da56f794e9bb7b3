package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"leadgenie_backend/internal/admin/repository"
	leadsrepo "leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/platform/apperr"
	"leadgenie_backend/platform/logger"
)

type fakeStore struct {
	users  []repository.User
	admins map[uuid.UUID]bool
	stats  repository.Stats
}

func (f *fakeStore) ListUsers(_ context.Context, _, _ int) ([]repository.User, error) {
	return f.users, nil
}

func (f *fakeStore) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	isAdmin, ok := f.admins[userID]
	if !ok {
		return false, repository.ErrNotFound
	}
	return isAdmin, nil
}

func (f *fakeStore) Stats(_ context.Context) (repository.Stats, error) {
	return f.stats, nil
}

type fakeLeadStore struct {
	leads map[uuid.UUID]leadsrepo.Lead
}

func (f *fakeLeadStore) List(_ context.Context, _ leadsrepo.ListLeadsParams) ([]leadsrepo.Lead, error) {
	all := make([]leadsrepo.Lead, 0, len(f.leads))
	for _, lead := range f.leads {
		all = append(all, lead)
	}
	return all, nil
}

func (f *fakeLeadStore) Update(_ context.Context, id uuid.UUID, params leadsrepo.UpdateLeadParams) (leadsrepo.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return leadsrepo.Lead{}, leadsrepo.ErrNotFound
	}
	if params.Name != nil {
		lead.Name = *params.Name
	}
	if params.Category != nil {
		lead.Category = params.Category
	}
	if params.Score != nil {
		lead.Score = params.Score
	}
	f.leads[id] = lead
	return lead, nil
}

func (f *fakeLeadStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.leads[id]; !ok {
		return leadsrepo.ErrNotFound
	}
	delete(f.leads, id)
	return nil
}

func newTestService(store *fakeStore, leads *fakeLeadStore) *Service {
	return New(store, leads, logger.New("development"))
}

func TestUpdateLeadAppliesPartialUpdate(t *testing.T) {
	id := uuid.New()
	leads := &fakeLeadStore{leads: map[uuid.UUID]leadsrepo.Lead{
		id: {ID: id, Name: "Old Name", Email: "old@example.com"},
	}}
	svc := newTestService(&fakeStore{}, leads)

	name := "New Name"
	score := 90
	lead, err := svc.UpdateLead(context.Background(), id, leadsrepo.UpdateLeadParams{Name: &name, Score: &score})
	if err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}

	if lead.Name != "New Name" {
		t.Errorf("name = %q, want %q", lead.Name, "New Name")
	}
	if lead.Score == nil || *lead.Score != 90 {
		t.Errorf("score = %v, want 90", lead.Score)
	}
	if lead.Email != "old@example.com" {
		t.Errorf("untouched email changed: %q", lead.Email)
	}
}

func TestUpdateLeadNotFound(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeLeadStore{leads: map[uuid.UUID]leadsrepo.Lead{}})

	_, err := svc.UpdateLead(context.Background(), uuid.New(), leadsrepo.UpdateLeadParams{})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestDeleteLeadNotFound(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeLeadStore{leads: map[uuid.UUID]leadsrepo.Lead{}})

	if err := svc.DeleteLead(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestDeleteLeadRemoves(t *testing.T) {
	id := uuid.New()
	leads := &fakeLeadStore{leads: map[uuid.UUID]leadsrepo.Lead{id: {ID: id}}}
	svc := newTestService(&fakeStore{}, leads)

	if err := svc.DeleteLead(context.Background(), id); err != nil {
		t.Fatalf("DeleteLead: %v", err)
	}
	if _, ok := leads.leads[id]; ok {
		t.Fatal("lead still present after delete")
	}
}

func TestIsAdminUnknownUserIsNotAdmin(t *testing.T) {
	svc := newTestService(&fakeStore{admins: map[uuid.UUID]bool{}}, &fakeLeadStore{})

	isAdmin, err := svc.IsAdmin(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if isAdmin {
		t.Fatal("unknown user reported as admin")
	}
}

func TestStats(t *testing.T) {
	store := &fakeStore{stats: repository.Stats{
		TotalUsers: 3,
		TotalLeads: 10,
		HotLeads:   2,
		WarmLeads:  5,
		ColdLeads:  3,
	}}
	svc := newTestService(store, &fakeLeadStore{})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != store.stats {
		t.Fatalf("stats = %+v, want %+v", stats, store.stats)
	}
}
