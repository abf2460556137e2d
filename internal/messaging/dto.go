package messaging

import "time"

type SendDTO struct {
	MatchID   string  `json:"match_id" validate:"required,uuid"`
	Content   string  `json:"content" validate:"required,min=1,max=2000"`
	Type      string  `json:"type" validate:"omitempty,oneof=agent human_relay question"`
	FromHuman *string `json:"from_human" validate:"omitempty,max=100"`
}

// MessageView is one entry in a match conversation, seen from the
// caller's side.
type MessageView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	FromHuman *string   `json:"from_human,omitempty"`
	FromMe    bool      `json:"from_me"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadPreview struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}
