package matching

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Match is one unordered profile pair. Profile1ID < Profile2ID always,
// so the pair has exactly one row regardless of who liked first.
type Match struct {
	ID               string    `json:"id" db:"id"`
	Profile1ID       string    `json:"profile1_id" db:"profile1_id"`
	Profile2ID       string    `json:"profile2_id" db:"profile2_id"`
	Score            int       `json:"score" db:"score"`
	Status           string    `json:"status" db:"status"`
	Profile1Accepted bool      `json:"profile1_accepted" db:"profile1_accepted"`
	Profile2Accepted bool      `json:"profile2_accepted" db:"profile2_accepted"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// OrderPair returns the two ids in canonical storage order.
func OrderPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Involves reports whether the given profile is one end of the pair.
func (m *Match) Involves(profileID string) bool {
	return m.Profile1ID == profileID || m.Profile2ID == profileID
}

// Other returns the opposite end of the pair.
func (m *Match) Other(profileID string) string {
	if m.Profile1ID == profileID {
		return m.Profile2ID
	}
	return m.Profile1ID
}

// AcceptedBy reports whether the given participant's side is accepted.
func (m *Match) AcceptedBy(profileID string) bool {
	if m.Profile1ID == profileID {
		return m.Profile1Accepted
	}
	return m.Profile2Accepted
}
