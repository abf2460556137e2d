package messaging

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/olavblj/clawdr/internal/matching"
	"github.com/olavblj/clawdr/internal/profile"
)

var (
	ErrNoProfile     = errors.New("no profile for this agent")
	ErrMatchNotFound = errors.New("match not found")
)

type ProfileStore interface {
	GetByAgent(ctx context.Context, agentID string) (*profile.Profile, error)
	GetByID(ctx context.Context, id string) (*profile.Profile, error)
}

type MatchStore interface {
	GetByID(ctx context.Context, id string) (*matching.Match, error)
}

type Service interface {
	Send(ctx context.Context, agentID string, dto SendDTO) (*Message, error)
	ListForMatch(ctx context.Context, agentID, matchID string) ([]MessageView, error)
	Unread(ctx context.Context, agentID string) ([]UnreadPreview, error)
}

type service struct {
	profiles ProfileStore
	matches  MatchStore
	repo     Repository
}

func NewService(profiles ProfileStore, matches MatchStore, repo Repository) Service {
	return &service{profiles: profiles, matches: matches, repo: repo}
}

func (s *service) Send(ctx context.Context, agentID string, dto SendDTO) (*Message, error) {
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
	if match == nil || !match.Involves(me.ID) {
		return nil, ErrMatchNotFound
	}

	other, err := s.profiles.GetByID(ctx, match.Other(me.ID))
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, ErrMatchNotFound
	}

	msgType := dto.Type
	if msgType == "" {
		msgType = TypeAgent
	}

	m := &Message{
		ID:          uuid.New().String(),
		MatchID:     match.ID,
		FromAgentID: agentID,
		ToAgentID:   other.AgentID,
		Content:     dto.Content,
		Type:        msgType,
		FromHuman:   dto.FromHuman,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	RecordMessageSent(msgType)
	return m, nil
}

func (s *service) ListForMatch(ctx context.Context, agentID, matchID string) ([]MessageView, error) {
	me, err := s.profiles.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if me == nil {
		return nil, ErrNoProfile
	}

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match == nil || !match.Involves(me.ID) {
		return nil, ErrMatchNotFound
	}

	msgs, err := s.repo.ListForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	// Fetching a conversation counts as reading your side of it.
	if err := s.repo.MarkRead(ctx, matchID, agentID); err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, MessageView{
			ID:        m.ID,
			Content:   m.Content,
			Type:      m.Type,
			FromHuman: m.FromHuman,
			FromMe:    m.FromAgentID == agentID,
			Read:      m.Read,
			CreatedAt: m.CreatedAt,
		})
	}
	return views, nil
}

func (s *service) Unread(ctx context.Context, agentID string) ([]UnreadPreview, error) {
	msgs, err := s.repo.ListUnread(ctx, agentID)
	if err != nil {
		return nil, err
	}

	previews := make([]UnreadPreview, 0, len(msgs))
	for _, m := range msgs {
		preview := m.Content
		// Truncate on a rune boundary so multibyte characters survive.
		if utf8.RuneCountInString(preview) > 100 {
			preview = string([]rune(preview)[:100])
		}
		previews = append(previews, UnreadPreview{
			ID:        m.ID,
			MatchID:   m.MatchID,
			Preview:   preview,
			CreatedAt: m.CreatedAt,
		})
	}
	return previews, nil
}
