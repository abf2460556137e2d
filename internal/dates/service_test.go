package dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavblj/clawdr/internal/matching"
	"github.com/olavblj/clawdr/internal/profile"
)

type fakeProfileStore struct {
	byAgent map[string]*profile.Profile
}

func (s *fakeProfileStore) GetByAgent(_ context.Context, agentID string) (*profile.Profile, error) {
	return s.byAgent[agentID], nil
}

type fakeMatchStore struct {
	byID map[string]*matching.Match
}

func (s *fakeMatchStore) GetByID(_ context.Context, id string) (*matching.Match, error) {
	return s.byID[id], nil
}

func (s *fakeMatchStore) ListForProfile(_ context.Context, profileID string) ([]*matching.Match, error) {
	var out []*matching.Match
	for _, m := range s.byID {
		if m.Involves(profileID) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRepository struct {
	byID map[string]*Proposal
}

func (r *fakeRepository) Create(_ context.Context, p *Proposal) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Proposal, error) {
	return r.byID[id], nil
}

func (r *fakeRepository) ListForMatches(_ context.Context, matchIDs []string) ([]*Proposal, error) {
	wanted := make(map[string]bool, len(matchIDs))
	for _, id := range matchIDs {
		wanted[id] = true
	}
	var out []*Proposal
	for _, p := range r.byID {
		if wanted[p.MatchID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepository) SetStatus(_ context.Context, id, status string) error {
	r.byID[id].Status = status
	return nil
}

func (r *fakeRepository) SetCountered(_ context.Context, id, counteredBy string, counter *CounterProposal) error {
	p := r.byID[id]
	p.Status = StatusCountered
	p.CounteredByAgent = &counteredBy
	p.CounterProposal = counter
	return nil
}

// Fixture: alice and bob share an accepted match, carol is a stranger
// with only a pending match against alice.
func datingFixture() (Service, *fakeRepository) {
	alice := &profile.Profile{ID: "p-alice", AgentID: "alice", Active: true}
	bob := &profile.Profile{ID: "p-bob", AgentID: "bob", Active: true}
	carol := &profile.Profile{ID: "p-carol", AgentID: "carol", Active: true}

	match := &matching.Match{
		ID:         "m1",
		Profile1ID: "p-alice",
		Profile2ID: "p-bob",
		Status:     matching.StatusAccepted,
	}
	pendingMatch := &matching.Match{
		ID:         "m2",
		Profile1ID: "p-alice",
		Profile2ID: "p-carol",
		Status:     matching.StatusPending,
	}

	profiles := &fakeProfileStore{byAgent: map[string]*profile.Profile{
		"alice": alice, "bob": bob, "carol": carol,
	}}
	matches := &fakeMatchStore{byID: map[string]*matching.Match{"m1": match, "m2": pendingMatch}}
	repo := &fakeRepository{byID: make(map[string]*Proposal)}

	return NewService(profiles, matches, repo), repo
}

func TestProposeOnAcceptedMatch(t *testing.T) {
	svc, _ := datingFixture()
	when := time.Now().Add(48 * time.Hour)

	p, err := svc.Propose(context.Background(), "alice", ProposeDTO{
		MatchID:      "m1",
		ProposedTime: &when,
		Location:     "Blue Bottle Coffee",
		Activity:     "coffee",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "alice", p.ProposedByAgentID)
}

func TestProposeOnPendingMatchFails(t *testing.T) {
	svc, _ := datingFixture()
	_, err := svc.Propose(context.Background(), "alice", ProposeDTO{MatchID: "m2"})
	assert.ErrorIs(t, err, ErrMatchNotFound, "non-mutual matches cannot host dates")
}

func TestProposeOnSomeoneElsesMatchFails(t *testing.T) {
	svc, _ := datingFixture()
	_, err := svc.Propose(context.Background(), "carol", ProposeDTO{MatchID: "m1"})
	assert.ErrorIs(t, err, ErrMatchNotFound, "outsiders see the same not-found as a missing match")
}

func TestRespondToOwnProposalFails(t *testing.T) {
	svc, _ := datingFixture()
	ctx := context.Background()

	p, err := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, "alice", p.ID, RespondDTO{Response: ResponseAccept})
	assert.ErrorIs(t, err, ErrOwnProposal)
}

func TestRespondAcceptConfirms(t *testing.T) {
	svc, _ := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})
	status, err := svc.Respond(ctx, "bob", p.ID, RespondDTO{Response: ResponseAccept})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)
}

func TestRespondRejectDeclines(t *testing.T) {
	svc, _ := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})
	status, err := svc.Respond(ctx, "bob", p.ID, RespondDTO{Response: ResponseReject})
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, status)
}

func TestCounterThenAcceptConfirms(t *testing.T) {
	svc, repo := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1", Location: "Blue Bottle"})

	status, err := svc.Respond(ctx, "bob", p.ID, RespondDTO{
		Response:        ResponseCounter,
		CounterProposal: &CounterProposalDTO{Location: "Dolores Park", Message: "Picnic instead?"},
	})
	require.NoError(t, err)
	require.Equal(t, StatusCountered, status)

	stored := repo.byID[p.ID]
	require.NotNil(t, stored.CounterProposal)
	assert.Equal(t, "Dolores Park", stored.CounterProposal.Location)

	// The counter flips the table: bob now owns the offer and cannot
	// respond, while alice can.
	_, err = svc.Respond(ctx, "bob", p.ID, RespondDTO{Response: ResponseAccept})
	assert.ErrorIs(t, err, ErrOwnProposal)

	status, err = svc.Respond(ctx, "alice", p.ID, RespondDTO{Response: ResponseAccept})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)
}

func TestRepeatedCounterOverwritesPayload(t *testing.T) {
	svc, repo := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})
	_, err := svc.Respond(ctx, "bob", p.ID, RespondDTO{
		Response:        ResponseCounter,
		CounterProposal: &CounterProposalDTO{Location: "Park"},
	})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, "alice", p.ID, RespondDTO{
		Response:        ResponseCounter,
		CounterProposal: &CounterProposalDTO{Location: "Museum"},
	})
	require.NoError(t, err)

	stored := repo.byID[p.ID]
	assert.Equal(t, "Museum", stored.CounterProposal.Location, "each counter overwrites the payload")
	assert.Equal(t, StatusCountered, stored.Status)
}

func TestRespondToResolvedProposalFails(t *testing.T) {
	svc, _ := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})
	_, err := svc.Respond(ctx, "bob", p.ID, RespondDTO{Response: ResponseAccept})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, "bob", p.ID, RespondDTO{Response: ResponseReject})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestListMarksOwnProposals(t *testing.T) {
	svc, _ := datingFixture()
	ctx := context.Background()

	p, _ := svc.Propose(ctx, "alice", ProposeDTO{MatchID: "m1"})

	aliceView, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceView, 1)
	assert.Equal(t, p.ID, aliceView[0].ID)
	assert.True(t, aliceView[0].ProposedByMe)

	bobView, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobView, 1)
	assert.False(t, bobView[0].ProposedByMe)
}
