package messaging

import "time"

const (
	TypeAgent      = "agent"
	TypeHumanRelay = "human_relay"
	TypeQuestion   = "question"
)

type Message struct {
	ID          string     `json:"id" db:"id"`
	MatchID     string     `json:"match_id" db:"match_id"`
	FromAgentID string     `json:"-" db:"from_agent_id"`
	ToAgentID   string     `json:"-" db:"to_agent_id"`
	Content     string     `json:"content" db:"content"`
	Type        string     `json:"type" db:"type"`
	FromHuman   *string    `json:"from_human,omitempty" db:"from_human"`
	Read        bool       `json:"read" db:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty" db:"read_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
