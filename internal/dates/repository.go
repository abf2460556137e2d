package dates

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByID(ctx context.Context, id string) (*Proposal, error)
	ListForMatches(ctx context.Context, matchIDs []string) ([]*Proposal, error)
	SetStatus(ctx context.Context, id, status string) error
	SetCountered(ctx context.Context, id, counteredBy string, counter *CounterProposal) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *Proposal) error {
	query := `
		INSERT INTO date_proposals (id, match_id, proposed_by_agent_id, proposed_time, location, location_details, activity, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.MatchID, p.ProposedByAgentID, p.ProposedTime,
		p.Location, p.LocationDetails, p.Activity, p.Message, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Proposal, error) {
	var p Proposal
	err := r.db.GetContext(ctx, &p, `SELECT * FROM date_proposals WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) ListForMatches(ctx context.Context, matchIDs []string) ([]*Proposal, error) {
	if len(matchIDs) == 0 {
		return []*Proposal{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT * FROM date_proposals WHERE match_id IN (?) ORDER BY created_at DESC`, matchIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var list []*Proposal
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE date_proposals SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	return err
}

func (r *postgresRepository) SetCountered(ctx context.Context, id, counteredBy string, counter *CounterProposal) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE date_proposals
		 SET status = 'countered', countered_by_agent_id = $2, counter_proposal = $3, updated_at = NOW()
		 WHERE id = $1`, id, counteredBy, counter)
	return err
}
