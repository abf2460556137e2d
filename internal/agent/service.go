// internal/agent/service.go

package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAgentNotFound  = errors.New("agent not found")
	ErrAlreadyClaimed = errors.New("agent already claimed")
	ErrInvalidCode    = errors.New("invalid claim code")
)

const (
	apiKeyPrefix    = "cupid_"
	claimCodePrefix = "cupid_claim_"
)

type Service interface {
	Register(ctx context.Context, dto *RegisterDTO) (*Agent, error)
	GetByID(ctx context.Context, id string) (*Agent, error)
	Authenticate(ctx context.Context, apiKey string) (*Agent, error)
	Update(ctx context.Context, id string, dto *UpdateAgentDTO) (*Agent, error)
	Claim(ctx context.Context, code, humanID string) (*Agent, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto *RegisterDTO) (*Agent, error) {
	a := &Agent{
		ID:        uuid.NewString(),
		APIKey:    apiKeyPrefix + randomToken(),
		ClaimCode: claimCodePrefix + randomToken()[:16],
		Name:      dto.Name,
	}

	if dto.Description != "" {
		a.Description = &dto.Description
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	RecordRegistration()

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Agent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Authenticate(ctx context.Context, apiKey string) (*Agent, error) {
	if !strings.HasPrefix(apiKey, apiKeyPrefix) {
		return nil, ErrAgentNotFound
	}
	return s.repo.GetByAPIKey(ctx, apiKey)
}

func (s *service) Update(ctx context.Context, id string, dto *UpdateAgentDTO) (*Agent, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		a.Name = *dto.Name
	}
	if dto.Description != nil {
		a.Description = dto.Description
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *service) Claim(ctx context.Context, code, humanID string) (*Agent, error) {
	a, err := s.repo.GetByClaimCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if a.Claimed {
		return nil, ErrAlreadyClaimed
	}

	if humanID == "" {
		humanID = "anonymous"
	}

	claimed, err := s.repo.MarkClaimed(ctx, a.ID, humanID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Lost the race to another claim attempt.
		return nil, ErrAlreadyClaimed
	}

	now := time.Now()
	a.Claimed = true
	a.ClaimedBy = &humanID
	a.ClaimedAt = &now

	RecordClaim()

	return a, nil
}

// randomToken returns 32 hex characters of uuid-derived entropy.
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
