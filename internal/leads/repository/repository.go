package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("lead not found")

// Lead lifecycle statuses.
const (
	StatusNew        = "NEW"
	StatusProcessing = "PROCESSING"
	StatusQualified  = "QUALIFIED"
	StatusFailed     = "FAILED"
)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

type Lead struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Company          *string
	Message          string
	Budget           *string
	Timeline         *string
	Status           string
	Score            *int
	Category         *string
	Confidence       *float64
	Reasoning        *string
	BuyingSignals    []string
	RiskFactors      []string
	NextActions      []string
	AIOriginalScore  *int
	ScoringBreakdown json.RawMessage
	QualifiedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateLeadParams struct {
	Name     string
	Email    string
	Company  *string
	Message  string
	Budget   *string
	Timeline *string
}

const leadColumns = `id, name, email, company, message, budget, timeline, status,
	score, category, confidence, reasoning, buying_signals, risk_factors, next_actions,
	ai_original_score, scoring_breakdown, qualified_at, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (name, email, company, message, budget, timeline, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+leadColumns,
		params.Name, params.Email, params.Company, params.Message, params.Budget, params.Timeline, StatusNew,
	)
	return scanLead(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

type ListLeadsParams struct {
	Status   *string
	Category *string
	Limit    int
	Offset   int
}

func (r *Repository) List(ctx context.Context, params ListLeadsParams) ([]Lead, error) {
	limit := params.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	if params.Status != nil {
		args = append(args, *params.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if params.Category != nil {
		args = append(args, *params.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateLeadParams carries a partial update: nil fields keep their
// stored value.
type UpdateLeadParams struct {
	Name     *string
	Email    *string
	Company  *string
	Message  *string
	Category *string
	Score    *int
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, params UpdateLeadParams) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE leads SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			company = COALESCE($4, company),
			message = COALESCE($5, message),
			category = COALESCE($6, category),
			score = COALESCE($7, score),
			updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns,
		id, params.Name, params.Email, params.Company, params.Message, params.Category, params.Score,
	)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type QualificationParams struct {
	Score            int
	Category         string
	Confidence       float64
	Reasoning        string
	BuyingSignals    []string
	RiskFactors      []string
	NextActions      []string
	AIOriginalScore  *int
	ScoringBreakdown json.RawMessage
}

// ApplyQualification stores a finished qualification and moves the lead to
// QUALIFIED in a single update.
func (r *Repository) ApplyQualification(ctx context.Context, id uuid.UUID, params QualificationParams) (Lead, error) {
	signals, err := json.Marshal(params.BuyingSignals)
	if err != nil {
		return Lead{}, err
	}
	risks, err := json.Marshal(params.RiskFactors)
	if err != nil {
		return Lead{}, err
	}
	actions, err := json.Marshal(params.NextActions)
	if err != nil {
		return Lead{}, err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE leads SET
			status = $2, score = $3, category = $4, confidence = $5, reasoning = $6,
			buying_signals = $7, risk_factors = $8, next_actions = $9,
			ai_original_score = $10, scoring_breakdown = $11,
			qualified_at = now(), updated_at = now()
		WHERE id = $1
		RETURNING `+leadColumns,
		id, StatusQualified, params.Score, params.Category, params.Confidence, params.Reasoning,
		signals, risks, actions, params.AIOriginalScore, params.ScoringBreakdown,
	)
	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	return lead, err
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.SetStatus(ctx, id, StatusFailed)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (Lead, error) {
	var lead Lead
	var signals, risks, actions []byte
	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Company, &lead.Message, &lead.Budget, &lead.Timeline, &lead.Status,
		&lead.Score, &lead.Category, &lead.Confidence, &lead.Reasoning, &signals, &risks, &actions,
		&lead.AIOriginalScore, &lead.ScoringBreakdown, &lead.QualifiedAt, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return Lead{}, err
	}

	if err := unmarshalList(signals, &lead.BuyingSignals); err != nil {
		return Lead{}, err
	}
	if err := unmarshalList(risks, &lead.RiskFactors); err != nil {
		return Lead{}, err
	}
	if err := unmarshalList(actions, &lead.NextActions); err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func unmarshalList(data []byte, target *[]string) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
