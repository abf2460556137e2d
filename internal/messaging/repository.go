package messaging

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	ListForMatch(ctx context.Context, matchID string) ([]*Message, error)
	MarkRead(ctx context.Context, matchID, toAgentID string) error
	ListUnread(ctx context.Context, toAgentID string) ([]*Message, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (id, match_id, from_agent_id, to_agent_id, content, type, from_human)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		m.ID, m.MatchID, m.FromAgentID, m.ToAgentID, m.Content, m.Type, m.FromHuman,
	).Scan(&m.CreatedAt)
}

func (r *postgresRepository) ListForMatch(ctx context.Context, matchID string) ([]*Message, error) {
	var list []*Message
	err := r.db.SelectContext(ctx, &list,
		`SELECT * FROM messages WHERE match_id = $1 ORDER BY created_at DESC`, matchID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *postgresRepository) MarkRead(ctx context.Context, matchID, toAgentID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE messages SET read = TRUE, read_at = NOW()
		 WHERE match_id = $1 AND to_agent_id = $2 AND read = FALSE`, matchID, toAgentID)
	return err
}

func (r *postgresRepository) ListUnread(ctx context.Context, toAgentID string) ([]*Message, error) {
	var list []*Message
	err := r.db.SelectContext(ctx, &list,
		`SELECT * FROM messages WHERE to_agent_id = $1 AND read = FALSE ORDER BY created_at DESC`,
		toAgentID)
	if err != nil {
		return nil, err
	}
	return list, nil
}
