// Package transport defines request/response DTOs for the leads API.
package transport

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"leadgenie_backend/internal/leads/repository"
)

type CreateLeadRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Company  *string `json:"company" validate:"omitempty,max=200"`
	Message  string  `json:"message" validate:"required,min=1,max=10000"`
	Budget   *string `json:"budget" validate:"omitempty,max=100"`
	Timeline *string `json:"timeline" validate:"omitempty,max=100"`
}

func (r CreateLeadRequest) ToParams() repository.CreateLeadParams {
	return repository.CreateLeadParams{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Message:  r.Message,
		Budget:   r.Budget,
		Timeline: r.Timeline,
	}
}

type QualifyBatchRequest struct {
	Leads []CreateLeadRequest `json:"leads" validate:"required,min=1,max=50,dive"`
}

type LeadResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Company          *string         `json:"company,omitempty"`
	Message          string          `json:"message"`
	Budget           *string         `json:"budget,omitempty"`
	Timeline         *string         `json:"timeline,omitempty"`
	Status           string          `json:"status"`
	Score            *int            `json:"score,omitempty"`
	Category         *string         `json:"category,omitempty"`
	Confidence       *float64        `json:"confidence,omitempty"`
	Reasoning        *string         `json:"reasoning,omitempty"`
	BuyingSignals    []string        `json:"buying_signals,omitempty"`
	RiskFactors      []string        `json:"risk_factors,omitempty"`
	NextActions      []string        `json:"next_actions,omitempty"`
	AIOriginalScore  *int            `json:"ai_original_score,omitempty"`
	ScoringBreakdown json.RawMessage `json:"scoring_breakdown,omitempty"`
	QualifiedAt      *time.Time      `json:"qualified_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromLead(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:               lead.ID,
		Name:             lead.Name,
		Email:            lead.Email,
		Company:          lead.Company,
		Message:          lead.Message,
		Budget:           lead.Budget,
		Timeline:         lead.Timeline,
		Status:           lead.Status,
		Score:            lead.Score,
		Category:         lead.Category,
		Confidence:       lead.Confidence,
		Reasoning:        lead.Reasoning,
		BuyingSignals:    lead.BuyingSignals,
		RiskFactors:      lead.RiskFactors,
		NextActions:      lead.NextActions,
		AIOriginalScore:  lead.AIOriginalScore,
		ScoringBreakdown: lead.ScoringBreakdown,
		QualifiedAt:      lead.QualifiedAt,
		CreatedAt:        lead.CreatedAt,
		UpdatedAt:        lead.UpdatedAt,
	}
}

func FromLeads(leads []repository.Lead) []LeadResponse {
	responses := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, FromLead(lead))
	}
	return responses
}

type ProcessingLogResponse struct {
	ID             uuid.UUID `json:"id"`
	LeadID         uuid.UUID `json:"lead_id"`
	ModelUsed      string    `json:"model_used"`
	PromptSent     string    `json:"prompt_sent"`
	Response       *string   `json:"response_received,omitempty"`
	ProcessingTime float64   `json:"processing_time_seconds"`
	Success        bool      `json:"success"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromProcessingLogs(logs []repository.ProcessingLog) []ProcessingLogResponse {
	responses := make([]ProcessingLogResponse, 0, len(logs))
	for _, entry := range logs {
		responses = append(responses, ProcessingLogResponse{
			ID:             entry.ID,
			LeadID:         entry.LeadID,
			ModelUsed:      entry.ModelUsed,
			PromptSent:     entry.PromptSent,
			Response:       entry.Response,
			ProcessingTime: entry.ProcessingTime,
			Success:        entry.Success,
			ErrorMessage:   entry.ErrorMessage,
			CreatedAt:      entry.CreatedAt,
		})
	}
	return responses
}
