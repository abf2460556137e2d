package matching

import (
	"context"
	"errors"

	"github.com/olavblj/clawdr/internal/profile"
)

var (
	ErrNoProfile      = errors.New("no profile for this agent")
	ErrTargetNotFound = errors.New("target profile not found")
	ErrSelfAction     = errors.New("cannot like or pass your own profile")
)

// ProfileStore is the slice of the profile layer the matcher consumes.
type ProfileStore interface {
	GetByAgent(ctx context.Context, agentID string) (*profile.Profile, error)
	GetByID(ctx context.Context, id string) (*profile.Profile, error)
	ListActiveExcluding(ctx context.Context, agentID string) ([]*profile.Profile, error)
}

type Service interface {
	Discover(ctx context.Context, agentID string, batchSize int, cursor string) (*DiscoverResult, error)
	Like(ctx context.Context, agentID, targetProfileID string) (*LikeResult, error)
	Pass(ctx context.Context, agentID, targetProfileID string) error
	BatchLike(ctx context.Context, agentID string, targetProfileIDs []string) (*BatchLikeResult, error)
	ListMatches(ctx context.Context, agentID string) (*MatchList, error)
}

type service struct {
	profiles         ProfileStore
	matches          Repository
	defaultBatchSize int
}

func NewService(profiles ProfileStore, matches Repository, defaultBatchSize int) Service {
	return &service{profiles: profiles, matches: matches, defaultBatchSize: defaultBatchSize}
}

func (s *service) Discover(ctx context.Context, agentID string, batchSize int, cursor string) (*DiscoverResult, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	if batchSize <= 0 {
		batchSize = s.defaultBatchSize
	}

	pool, err := s.profiles.ListActiveExcluding(ctx, agentID)
	if err != nil {
		return nil, err
	}

	seen, err := s.seenSet(ctx, me.ID)
	if err != nil {
		return nil, err
	}

	eligible := Filter(me, pool, seen)
	scored := ScoreAll(me, eligible)
	page := Paginate(scored, batchSize, cursor)

	ObserveDiscovery(len(page.Batch))
	for _, c := range page.Batch {
		ObserveCompatibilityScore(c.Score)
	}

	return &DiscoverResult{Page: page, BatchSize: batchSize}, nil
}

// seenSet collects every profile the given profile has any match row
// with, whatever its status. Both ends of each row go in, then self is
// removed.
func (s *service) seenSet(ctx context.Context, profileID string) (map[string]bool, error) {
	rows, err := s.matches.ListForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(rows))
	for _, m := range rows {
		seen[m.Profile1ID] = true
		seen[m.Profile2ID] = true
	}
	delete(seen, profileID)
	return seen, nil
}

func (s *service) Like(ctx context.Context, agentID, targetProfileID string) (*LikeResult, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}
	if me.ID == targetProfileID {
		return nil, ErrSelfAction
	}

	target, err := s.profiles.GetByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrTargetNotFound
	}

	score, _ := Score(me, target)

	m, mutated, err := s.matches.UpsertAcceptance(ctx, me.ID, targetProfileID, score)
	if err != nil {
		return nil, err
	}
	if !mutated {
		// Repeat like: report current state, no event.
		existing, err := s.matches.FindPair(ctx, me.ID, targetProfileID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Status == StatusAccepted {
			return &LikeResult{Matched: true, MatchID: existing.ID}, nil
		}
		return &LikeResult{}, nil
	}

	RecordLike()
	if m.Status == StatusAccepted {
		// This call performed the pending→accepted transition.
		RecordMatch()
		return &LikeResult{Matched: true, MatchID: m.ID}, nil
	}
	return &LikeResult{}, nil
}

func (s *service) Pass(ctx context.Context, agentID, targetProfileID string) error {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return err
	}
	if me == nil {
		return ErrNoProfile
	}
	if me.ID == targetProfileID {
		return ErrSelfAction
	}

	if err := s.matches.ForceReject(ctx, me.ID, targetProfileID); err != nil {
		return err
	}
	RecordPass()
	return nil
}

func (s *service) BatchLike(ctx context.Context, agentID string, targetProfileIDs []string) (*BatchLikeResult, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	result := &BatchLikeResult{Results: make([]BatchLikeOutcome, 0, len(targetProfileIDs))}
	for _, targetID := range targetProfileIDs {
		outcome := BatchLikeOutcome{TargetProfileID: targetID}

		res, err := s.Like(ctx, agentID, targetID)
		switch {
		case errors.Is(err, ErrTargetNotFound) || errors.Is(err, ErrSelfAction):
			outcome.Outcome = "error"
			outcome.Error = err.Error()
			result.Summary.Failed++
		case err != nil:
			return nil, err
		case res.Matched:
			outcome.Outcome = "match"
			outcome.MatchID = res.MatchID
			result.Summary.Matched++
		default:
			outcome.Outcome = "liked"
			result.Summary.Liked++
		}

		result.Results = append(result.Results, outcome)
	}
	result.Summary.Total = len(targetProfileIDs)
	return result, nil
}

func (s *service) ListMatches(ctx context.Context, agentID string) (*MatchList, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	rows, err := s.matches.ListForProfile(ctx, me.ID)
	if err != nil {
		return nil, err
	}

	list := &MatchList{Matches: make([]MatchSummary, 0, len(rows))}
	for _, m := range rows {
		entry := MatchSummary{
			MatchID:   m.ID,
			Status:    m.Status,
			Score:     m.Score,
			CreatedAt: m.CreatedAt,
		}

		other, err := s.profiles.GetByID(ctx, m.Other(me.ID))
		if err != nil {
			return nil, err
		}
		if other != nil {
			entry.OtherProfile = &MatchedProfile{
				ID:       other.ID,
				Name:     other.Name,
				Age:      other.Age,
				Location: other.Location,
			}
		}

		list.Matches = append(list.Matches, entry)
		switch m.Status {
		case StatusPending:
			list.Pending++
		case StatusAccepted:
			list.Accepted++
		}
	}
	return list, nil
}
