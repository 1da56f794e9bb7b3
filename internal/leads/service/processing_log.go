package service

import (
	"context"

	"leadgenie_backend/internal/leads/repository"
	"leadgenie_backend/internal/qualify"
)

// ProcessingLogStore adapts the leads repository to the qualification
// engine's audit log interface.
type ProcessingLogStore struct {
	repo *repository.Repository
}

func NewProcessingLogStore(repo *repository.Repository) *ProcessingLogStore {
	return &ProcessingLogStore{repo: repo}
}

func (s *ProcessingLogStore) Append(ctx context.Context, entry qualify.ProcessingLogEntry) error {
	return s.repo.AppendProcessingLog(ctx, repository.AppendProcessingLogParams{
		LeadID:         entry.LeadID,
		ModelUsed:      entry.Model,
		PromptSent:     entry.Prompt,
		Response:       optional(entry.Response),
		ProcessingTime: entry.ProcessingTime.Seconds(),
		Success:        entry.Success,
		ErrorMessage:   optional(entry.ErrorMessage),
	})
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
