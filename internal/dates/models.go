package dates

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusCountered = "countered"
)

const (
	ResponseAccept  = "accept"
	ResponseReject  = "reject"
	ResponseCounter = "counter"
)

// CounterProposal is the most recent counter-offer on a proposal. Each
// counter overwrites the previous one.
type CounterProposal struct {
	Time     *time.Time `json:"time,omitempty"`
	Location string     `json:"location,omitempty"`
	Message  string     `json:"message,omitempty"`
}

func (c CounterProposal) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CounterProposal) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into CounterProposal", value)
	}
	return json.Unmarshal(b, c)
}

type Proposal struct {
	ID                string           `json:"id" db:"id"`
	MatchID           string           `json:"match_id" db:"match_id"`
	ProposedByAgentID string           `json:"-" db:"proposed_by_agent_id"`
	CounteredByAgent  *string          `json:"-" db:"countered_by_agent_id"`
	ProposedTime      *time.Time       `json:"proposed_time" db:"proposed_time"`
	Location          string           `json:"location" db:"location"`
	LocationDetails   string           `json:"location_details,omitempty" db:"location_details"`
	Activity          string           `json:"activity,omitempty" db:"activity"`
	Message           string           `json:"message,omitempty" db:"message"`
	CounterProposal   *CounterProposal `json:"counter_proposal,omitempty" db:"counter_proposal"`
	Status            string           `json:"status" db:"status"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}

// Terminal reports whether no further responses are accepted.
func (p *Proposal) Terminal() bool {
	return p.Status == StatusConfirmed || p.Status == StatusRejected
}

// CurrentOfferer is the agent whose offer is on the table: the original
// proposer, or whoever sent the latest counter. That agent cannot
// respond to their own offer.
func (p *Proposal) CurrentOfferer() string {
	if p.Status == StatusCountered && p.CounteredByAgent != nil {
		return *p.CounteredByAgent
	}
	return p.ProposedByAgentID
}
