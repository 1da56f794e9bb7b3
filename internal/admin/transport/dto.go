// Package transport defines request/response DTOs for the admin API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"leadgenie_backend/internal/admin/repository"
	leadsrepo "leadgenie_backend/internal/leads/repository"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUsers(users []repository.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})
	}
	return responses
}

// UpdateLeadRequest is a partial update: absent fields keep their stored
// value.
type UpdateLeadRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Company  *string `json:"company" validate:"omitempty,max=200"`
	Message  *string `json:"message" validate:"omitempty,min=1,max=10000"`
	Category *string `json:"category" validate:"omitempty,oneof=Hot Warm Cold"`
	Score    *int    `json:"score" validate:"omitempty,min=0,max=100"`
}

func (r UpdateLeadRequest) ToParams() leadsrepo.UpdateLeadParams {
	return leadsrepo.UpdateLeadParams{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Message:  r.Message,
		Category: r.Category,
		Score:    r.Score,
	}
}

type CategoryCounts struct {
	Hot  int64 `json:"hot"`
	Warm int64 `json:"warm"`
	Cold int64 `json:"cold"`
}

type StatsResponse struct {
	TotalUsers      int64          `json:"total_users"`
	TotalLeads      int64          `json:"total_leads"`
	LeadsByCategory CategoryCounts `json:"leads_by_category"`
}

func FromStats(stats repository.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers: stats.TotalUsers,
		TotalLeads: stats.TotalLeads,
		LeadsByCategory: CategoryCounts{
			Hot:  stats.HotLeads,
			Warm: stats.WarmLeads,
			Cold: stats.ColdLeads,
		},
	}
}
