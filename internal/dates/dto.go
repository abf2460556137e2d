package dates

import "time"

type ProposeDTO struct {
	MatchID         string     `json:"match_id" validate:"required,uuid"`
	ProposedTime    *time.Time `json:"proposed_time"`
	Location        string     `json:"location" validate:"max=200"`
	LocationDetails string     `json:"location_details" validate:"max=500"`
	Activity        string     `json:"activity" validate:"max=200"`
	Message         string     `json:"message" validate:"max=1000"`
}

type RespondDTO struct {
	Response        string              `json:"response" validate:"required,oneof=accept reject counter"`
	CounterProposal *CounterProposalDTO `json:"counter_proposal" validate:"omitempty"`
}

type CounterProposalDTO struct {
	Time     *time.Time `json:"time"`
	Location string     `json:"location" validate:"max=200"`
	Message  string     `json:"message" validate:"max=1000"`
}

// ProposalView is one entry in the caller's proposal list.
type ProposalView struct {
	ID              string           `json:"id"`
	MatchID         string           `json:"match_id"`
	ProposedTime    *time.Time       `json:"proposed_time"`
	Location        string           `json:"location"`
	Activity        string           `json:"activity,omitempty"`
	Message         string           `json:"message,omitempty"`
	CounterProposal *CounterProposal `json:"counter_proposal,omitempty"`
	Status          string           `json:"status"`
	ProposedByMe    bool             `json:"proposed_by_me"`
	CreatedAt       time.Time        `json:"created_at"`
}
