package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID    map[string]*Profile
	byAgent map[string]*Profile
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*Profile), byAgent: make(map[string]*Profile)}
}

func (r *fakeRepository) Create(_ context.Context, p *Profile) error {
	r.byID[p.ID] = p
	r.byAgent[p.AgentID] = p
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Profile, error) {
	return r.byID[id], nil
}

func (r *fakeRepository) GetByAgent(_ context.Context, agentID string) (*Profile, error) {
	return r.byAgent[agentID], nil
}

func (r *fakeRepository) Update(_ context.Context, p *Profile) error {
	r.byID[p.ID] = p
	r.byAgent[p.AgentID] = p
	return nil
}

func (r *fakeRepository) Deactivate(_ context.Context, id string) error {
	if p, ok := r.byID[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeRepository) ListActiveExcluding(_ context.Context, agentID string) ([]*Profile, error) {
	var out []*Profile
	for _, p := range r.byID {
		if p.AgentID != agentID && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func testLimits() Limits {
	return Limits{MinAge: 18, MaxAge: 120, MaxInterests: 25}
}

func validCreateDTO() CreateProfileDTO {
	return CreateProfileDTO{
		Name:      "Alice",
		Age:       28,
		Gender:    "female",
		Location:  "San Francisco",
		Bio:       "Hiking and coffee.",
		Interests: []string{"hiking", "coffee"},
	}
}

func TestCreateProfile(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())

	p, err := svc.Create(context.Background(), "agent-1", validCreateDTO())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "agent-1", p.AgentID)
	assert.True(t, p.Active, "new profiles start active")
	assert.NotNil(t, p.Photos, "list fields are never nil")
	assert.NotNil(t, p.Interests)
}

func TestCreateProfileWithOnlyName(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())

	p, err := svc.Create(context.Background(), "agent-1", CreateProfileDTO{Name: "Mystery"})
	require.NoError(t, err)
	assert.Zero(t, p.Age, "age stays unset")
	assert.Empty(t, p.Gender)
	assert.Empty(t, p.Location)
}

func TestCreateProfileEnforcesAgeRange(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	ctx := context.Background()

	dto := validCreateDTO()
	dto.Age = 17
	_, err := svc.Create(ctx, "agent-1", dto)
	assert.ErrorIs(t, err, ErrAgeOutOfRange)

	dto.Age = 121
	_, err = svc.Create(ctx, "agent-1", dto)
	assert.ErrorIs(t, err, ErrAgeOutOfRange)
}

func TestCreateProfileEnforcesInterestCap(t *testing.T) {
	svc := NewService(newFakeRepository(), Limits{MinAge: 18, MaxAge: 120, MaxInterests: 2})

	dto := validCreateDTO()
	dto.Interests = []string{"hiking", "coffee", "jazz"}
	_, err := svc.Create(context.Background(), "agent-1", dto)
	assert.ErrorIs(t, err, ErrTooManyInterests)
}

func TestUpdateEnforcesAgeRange(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	ctx := context.Background()

	_, err := svc.Create(ctx, "agent-1", validCreateDTO())
	require.NoError(t, err)

	age := 16
	_, err = svc.Update(ctx, "agent-1", UpdateProfileDTO{Age: &age})
	assert.ErrorIs(t, err, ErrAgeOutOfRange)
}

func TestCreateProfileTwiceConflicts(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	ctx := context.Background()

	_, err := svc.Create(ctx, "agent-1", validCreateDTO())
	require.NoError(t, err)

	_, err = svc.Create(ctx, "agent-1", validCreateDTO())
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestGetByIDHidesInactiveProfiles(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	ctx := context.Background()

	p, err := svc.Create(ctx, "agent-1", validCreateDTO())
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, "agent-1"))
	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound, "inactive profiles are invisible")
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := NewService(newFakeRepository(), testLimits())
	ctx := context.Background()

	_, err := svc.Create(ctx, "agent-1", validCreateDTO())
	require.NoError(t, err)

	bio := "New bio"
	p, err := svc.Update(ctx, "agent-1", UpdateProfileDTO{Bio: &bio, Interests: []string{"tech"}})
	require.NoError(t, err)
	assert.Equal(t, "New bio", p.Bio)
	assert.Equal(t, StringList{"tech"}, p.Interests)
	assert.Equal(t, "Alice", p.Name, "untouched fields keep their values")
	assert.Equal(t, 28, p.Age)
}

func TestPublicViewOmitsPreferences(t *testing.T) {
	p := &Profile{
		ID:   "p1",
		Name: "Alice",
		LookingFor: &LookingFor{
			Genders:      []string{"male"},
			Dealbreakers: []string{"smoking"},
		},
	}
	view := p.Public()
	assert.Equal(t, "p1", view.ID)
	assert.Equal(t, "Alice", view.Name)
	// PublicView has no preference fields at all; this guards against
	// someone adding them back.
}
