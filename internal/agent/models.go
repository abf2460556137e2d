package agent

import "time"

// Agent is an API-credentialed client acting on behalf of one human.
// The API key is an opaque bearer token; the claim code is single-use.
type Agent struct {
	ID          string     `json:"id" db:"id"`
	APIKey      string     `json:"-" db:"api_key"`
	ClaimCode   string     `json:"-" db:"claim_code"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Claimed     bool       `json:"claimed" db:"claimed"`
	ClaimedBy   *string    `json:"claimed_by,omitempty" db:"claimed_by"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty" db:"claimed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
