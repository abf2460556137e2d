package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProfileExists    = errors.New("profile already exists for this agent")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrAgeOutOfRange    = errors.New("age outside the allowed range")
	ErrTooManyInterests = errors.New("too many interests")
)

// Limits are the configured profile constraints. A zero age is "unset"
// and exempt from the range check.
type Limits struct {
	MinAge       int
	MaxAge       int
	MaxInterests int
}

type Service interface {
	Create(ctx context.Context, agentID string, dto CreateProfileDTO) (*Profile, error)
	GetMine(ctx context.Context, agentID string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, agentID string, dto UpdateProfileDTO) (*Profile, error)
	Deactivate(ctx context.Context, agentID string) error
}

type service struct {
	repo   Repository
	limits Limits
}

func NewService(repo Repository, limits Limits) Service {
	return &service{repo: repo, limits: limits}
}

func (s *service) checkLimits(age int, interests []string) error {
	if age != 0 && (age < s.limits.MinAge || age > s.limits.MaxAge) {
		return ErrAgeOutOfRange
	}
	if len(interests) > s.limits.MaxInterests {
		return ErrTooManyInterests
	}
	return nil
}

func (s *service) Create(ctx context.Context, agentID string, dto CreateProfileDTO) (*Profile, error) {
	if err := s.checkLimits(dto.Age, dto.Interests); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	p := &Profile{
		ID:          uuid.New().String(),
		AgentID:     agentID,
		Name:        dto.Name,
		Age:         dto.Age,
		Gender:      dto.Gender,
		Location:    dto.Location,
		LocationLat: dto.LocationLat,
		LocationLng: dto.LocationLng,
		Bio:         dto.Bio,
		Interests:   StringList(dto.Interests),
		Photos:      StringList(dto.Photos),
		LookingFor:  dto.LookingFor.toModel(),
		Active:      true,
	}
	if p.Interests == nil {
		p.Interests = StringList{}
	}
	if p.Photos == nil {
		p.Photos = StringList{}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	RecordProfileCreated()
	return p, nil
}

func (s *service) GetMine(ctx context.Context, agentID string) (*Profile, error) {
	p, err := s.repo.GetByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, agentID string, dto UpdateProfileDTO) (*Profile, error) {
	age := 0
	if dto.Age != nil {
		age = *dto.Age
	}
	if err := s.checkLimits(age, dto.Interests); err != nil {
		return nil, err
	}

	p, err := s.GetMine(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Age != nil {
		p.Age = *dto.Age
	}
	if dto.Gender != nil {
		p.Gender = *dto.Gender
	}
	if dto.Location != nil {
		p.Location = *dto.Location
	}
	if dto.LocationLat != nil {
		p.LocationLat = dto.LocationLat
	}
	if dto.LocationLng != nil {
		p.LocationLng = dto.LocationLng
	}
	if dto.Bio != nil {
		p.Bio = *dto.Bio
	}
	if dto.Interests != nil {
		p.Interests = StringList(dto.Interests)
	}
	if dto.Photos != nil {
		p.Photos = StringList(dto.Photos)
	}
	if dto.LookingFor != nil {
		p.LookingFor = dto.LookingFor.toModel()
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Deactivate(ctx context.Context, agentID string) error {
	p, err := s.GetMine(ctx, agentID)
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, p.ID)
}
