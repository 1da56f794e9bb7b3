package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProcessingLog is the append-only audit record of one qualification
// attempt, including the full prompt and raw model response.
type ProcessingLog struct {
	ID             uuid.UUID
	LeadID         uuid.UUID
	ModelUsed      string
	PromptSent     string
	Response       *string
	ProcessingTime float64
	Success        bool
	ErrorMessage   *string
	CreatedAt      time.Time
}

type AppendProcessingLogParams struct {
	LeadID         uuid.UUID
	ModelUsed      string
	PromptSent     string
	Response       *string
	ProcessingTime float64
	Success        bool
	ErrorMessage   *string
}

func (r *Repository) AppendProcessingLog(ctx context.Context, params AppendProcessingLogParams) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ai_processing_logs (lead_id, model_used, prompt_sent, response_received, processing_time_seconds, success, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		params.LeadID, params.ModelUsed, params.PromptSent, params.Response, params.ProcessingTime, params.Success, params.ErrorMessage,
	)
	return err
}

func (r *Repository) ListProcessingLogs(ctx context.Context, leadID uuid.UUID, limit int) ([]ProcessingLog, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, lead_id, model_used, prompt_sent, response_received, processing_time_seconds, success, error_message, created_at
		FROM ai_processing_logs
		WHERE lead_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, leadID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]ProcessingLog, 0)
	for rows.Next() {
		var entry ProcessingLog
		if err := rows.Scan(
			&entry.ID, &entry.LeadID, &entry.ModelUsed, &entry.PromptSent, &entry.Response,
			&entry.ProcessingTime, &entry.Success, &entry.ErrorMessage, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
