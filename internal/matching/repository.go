package matching

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func newMatchID() string {
	return uuid.New().String()
}

type Repository interface {
	FindPair(ctx context.Context, idA, idB string) (*Match, error)
	// UpsertAcceptance atomically creates-or-updates the pair record,
	// marking the requester's side accepted. It returns (match, true)
	// when this call mutated the row — including the moment it promoted
	// the pair to accepted — and (nil, false) when the requester's side
	// was already accepted, making the like a no-op.
	UpsertAcceptance(ctx context.Context, requesterID, targetID string, score int) (*Match, bool, error)
	ForceReject(ctx context.Context, idA, idB string) error
	ListForProfile(ctx context.Context, profileID string) ([]*Match, error)
	GetByID(ctx context.Context, id string) (*Match, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindPair(ctx context.Context, idA, idB string) (*Match, error) {
	p1, p2 := OrderPair(idA, idB)
	var m Match
	err := r.db.GetContext(ctx, &m,
		`SELECT * FROM matches WHERE profile1_id = $1 AND profile2_id = $2`, p1, p2)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// The UNIQUE (profile1_id, profile2_id) index serializes concurrent
// likes on the same pair: the insert and the acceptance-flag update are
// one statement, so the "both sides now true" check and the promotion
// to accepted happen indivisibly. The WHERE on the conflict branch
// skips the update entirely when the requester's side is already
// accepted, which is how repeat likes avoid double-reporting the
// mutual-match transition.
const upsertAcceptanceQuery = `
	INSERT INTO matches (id, profile1_id, profile2_id, score, status, profile1_accepted, profile2_accepted)
	VALUES ($1, $2, $3, $4, 'pending', $5, $6)
	ON CONFLICT (profile1_id, profile2_id) DO UPDATE SET
		profile1_accepted = matches.profile1_accepted OR EXCLUDED.profile1_accepted,
		profile2_accepted = matches.profile2_accepted OR EXCLUDED.profile2_accepted,
		status = CASE
			WHEN (matches.profile1_accepted OR EXCLUDED.profile1_accepted)
			 AND (matches.profile2_accepted OR EXCLUDED.profile2_accepted)
			THEN 'accepted'
			ELSE matches.status
		END,
		updated_at = NOW()
	WHERE NOT ((EXCLUDED.profile1_accepted AND matches.profile1_accepted)
	        OR (EXCLUDED.profile2_accepted AND matches.profile2_accepted))
	RETURNING *`

func (r *postgresRepository) UpsertAcceptance(ctx context.Context, requesterID, targetID string, score int) (*Match, bool, error) {
	p1, p2 := OrderPair(requesterID, targetID)
	id := newMatchID()

	var m Match
	err := r.db.QueryRowxContext(ctx, upsertAcceptanceQuery,
		id, p1, p2, score, requesterID == p1, requesterID == p2,
	).StructScan(&m)
	if errors.Is(err, sql.ErrNoRows) {
		// Requester's side was already accepted; nothing changed.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

func (r *postgresRepository) ForceReject(ctx context.Context, idA, idB string) error {
	p1, p2 := OrderPair(idA, idB)
	_, err := r.db.ExecContext(ctx,
		`UPDATE matches SET status = 'rejected', updated_at = NOW()
		 WHERE profile1_id = $1 AND profile2_id = $2`, p1, p2)
	return err
}

func (r *postgresRepository) ListForProfile(ctx context.Context, profileID string) ([]*Match, error) {
	var list []*Match
	err := r.db.SelectContext(ctx, &list,
		`SELECT * FROM matches WHERE profile1_id = $1 OR profile2_id = $1 ORDER BY created_at DESC`,
		profileID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Match, error) {
	var m Match
	err := r.db.GetContext(ctx, &m, `SELECT * FROM matches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
