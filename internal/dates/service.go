package dates

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/olavblj/clawdr/internal/matching"
	"github.com/olavblj/clawdr/internal/profile"
)

var (
	ErrNoProfile        = errors.New("no profile for this agent")
	ErrMatchNotFound    = errors.New("match not found or not yet accepted")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrOwnProposal      = errors.New("cannot respond to your own proposal")
	ErrAlreadyResolved  = errors.New("proposal already resolved")
)

type ProfileStore interface {
	GetByAgent(ctx context.Context, agentID string) (*profile.Profile, error)
}

type MatchStore interface {
	GetByID(ctx context.Context, id string) (*matching.Match, error)
	ListForProfile(ctx context.Context, profileID string) ([]*matching.Match, error)
}

type Service interface {
	Propose(ctx context.Context, agentID string, dto ProposeDTO) (*Proposal, error)
	List(ctx context.Context, agentID string) ([]ProposalView, error)
	Respond(ctx context.Context, agentID, proposalID string, dto RespondDTO) (string, error)
}

type service struct {
	profiles ProfileStore
	matches  MatchStore
	repo     Repository
}

func NewService(profiles ProfileStore, matches MatchStore, repo Repository) Service {
	return &service{profiles: profiles, matches: matches, repo: repo}
}

func (s *service) Propose(ctx context.Context, agentID string, dto ProposeDTO) (*Proposal, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	match, err := s.matches.GetByID(ctx, dto.MatchID)
	if err != nil {
		return nil, err
	}
	// A match that is missing, not mutual, or someone else's is all the
	// same from the caller's point of view.
	if match == nil || match.Status != matching.StatusAccepted || !match.Involves(me.ID) {
		return nil, ErrMatchNotFound
	}

	p := &Proposal{
		ID:                uuid.New().String(),
		MatchID:           match.ID,
		ProposedByAgentID: agentID,
		ProposedTime:      dto.ProposedTime,
		Location:          dto.Location,
		LocationDetails:   dto.LocationDetails,
		Activity:          dto.Activity,
		Message:           dto.Message,
		Status:            StatusPending,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	RecordProposal()
	return p, nil
}

func (s *service) List(ctx context.Context, agentID string) ([]ProposalView, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	myMatches, err := s.matches.ListForProfile(ctx, me.ID)
	if err != nil {
		return nil, err
	}
	matchIDs := make([]string, 0, len(myMatches))
	for _, m := range myMatches {
		matchIDs = append(matchIDs, m.ID)
	}

	proposals, err := s.repo.ListForMatches(ctx, matchIDs)
	if err != nil {
		return nil, err
	}

	views := make([]ProposalView, 0, len(proposals))
	for _, p := range proposals {
		views = append(views, ProposalView{
			ID:              p.ID,
			MatchID:         p.MatchID,
			ProposedTime:    p.ProposedTime,
			Location:        p.Location,
			Activity:        p.Activity,
			Message:         p.Message,
			CounterProposal: p.CounterProposal,
			Status:          p.Status,
			ProposedByMe:    p.ProposedByAgentID == agentID,
			CreatedAt:       p.CreatedAt,
		})
	}
	return views, nil
}

func (s *service) Respond(ctx context.Context, agentID, proposalID string, dto RespondDTO) (string, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return "", err
	}
	if me == nil {
		return "", ErrNoProfile
	}

	p, err := s.repo.GetByID(ctx, proposalID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrProposalNotFound
	}

	match, err := s.matches.GetByID(ctx, p.MatchID)
	if err != nil {
		return "", err
	}
	if match == nil || !match.Involves(me.ID) {
		return "", ErrProposalNotFound
	}

	if p.Terminal() {
		return "", ErrAlreadyResolved
	}
	// After a counter the roles flip: the original proposer responds to
	// the counter-offer, and the counterer waits.
	if p.CurrentOfferer() == agentID {
		return "", ErrOwnProposal
	}

	switch dto.Response {
	case ResponseAccept:
		if err := s.repo.SetStatus(ctx, p.ID, StatusConfirmed); err != nil {
			return "", err
		}
		RecordConfirmed()
		return StatusConfirmed, nil
	case ResponseReject:
		if err := s.repo.SetStatus(ctx, p.ID, StatusRejected); err != nil {
			return "", err
		}
		return StatusRejected, nil
	default:
		counter := &CounterProposal{}
		if dto.CounterProposal != nil {
			counter.Time = dto.CounterProposal.Time
			counter.Location = dto.CounterProposal.Location
			counter.Message = dto.CounterProposal.Message
		}
		if err := s.repo.SetCountered(ctx, p.ID, agentID, counter); err != nil {
			return "", err
		}
		return StatusCountered, nil
	}
}
