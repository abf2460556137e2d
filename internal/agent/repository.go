package agent

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, a *Agent) error
	GetByID(ctx context.Context, id string) (*Agent, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*Agent, error)
	GetByClaimCode(ctx context.Context, code string) (*Agent, error)
	Update(ctx context.Context, a *Agent) error
	MarkClaimed(ctx context.Context, id, humanID string) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *Agent) error {
	query := `
		INSERT INTO agents (id, api_key, claim_code, name, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRowxContext(
		ctx, query,
		a.ID, a.APIKey, a.ClaimCode, a.Name, a.Description,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Agent, error) {
	var a Agent
	err := r.db.GetContext(ctx, &a, `SELECT * FROM agents WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetByAPIKey(ctx context.Context, apiKey string) (*Agent, error) {
	var a Agent
	err := r.db.GetContext(ctx, &a, `SELECT * FROM agents WHERE api_key = $1`, apiKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) GetByClaimCode(ctx context.Context, code string) (*Agent, error) {
	var a Agent
	err := r.db.GetContext(ctx, &a, `SELECT * FROM agents WHERE claim_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *Agent) error {
	query := `
		UPDATE agents
		SET name = $2, description = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at
	`

	return r.db.QueryRowxContext(ctx, query, a.ID, a.Name, a.Description).Scan(&a.UpdatedAt)
}

// MarkClaimed flips the claimed flag exactly once. The claimed = FALSE
// predicate makes the transition single-shot under concurrent claims.
func (r *postgresRepository) MarkClaimed(ctx context.Context, id, humanID string) (bool, error) {
	query := `
		UPDATE agents
		SET claimed = TRUE, claimed_by = $2, claimed_at = CURRENT_TIMESTAMP,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND claimed = FALSE
	`

	res, err := r.db.ExecContext(ctx, query, id, humanID)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
