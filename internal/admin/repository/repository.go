package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadgenie_backend/internal/qualify"
)

var ErrNotFound = errors.New("user not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// User is the administrative read model. It never carries the password hash.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Repository) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	if limit < 1 || limit > 200 {
		limit = 100
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, email, name, is_admin, created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *Repository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.pool.QueryRow(ctx, `SELECT is_admin FROM users WHERE id = $1`, userID).Scan(&isAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	return isAdmin, err
}

// Stats aggregates system-wide counts for the admin dashboard.
type Stats struct {
	TotalUsers int64
	TotalLeads int64
	HotLeads   int64
	WarmLeads  int64
	ColdLeads  int64
}

func (r *Repository) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users),
			count(*),
			count(*) FILTER (WHERE category = $1),
			count(*) FILTER (WHERE category = $2),
			count(*) FILTER (WHERE category = $3)
		FROM leads`,
		qualify.CategoryHot, qualify.CategoryWarm, qualify.CategoryCold,
	).Scan(&stats.TotalUsers, &stats.TotalLeads, &stats.HotLeads, &stats.WarmLeads, &stats.ColdLeads)
	return stats, err
}
