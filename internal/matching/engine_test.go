package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavblj/clawdr/internal/profile"
)

func newProfile(id, name string, age int, gender, location string, interests []string) *profile.Profile {
	return &profile.Profile{
		ID:        id,
		AgentID:   "agent-" + id,
		Name:      name,
		Age:       age,
		Gender:    gender,
		Location:  location,
		Interests: interests,
		Active:    true,
	}
}

func ids(profiles []*profile.Profile) []string {
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterExcludesSelfInactiveAndSeen(t *testing.T) {
	me := newProfile("p1", "Me", 30, "female", "Oslo", nil)
	self := newProfile("p1", "Me", 30, "female", "Oslo", nil)
	inactive := newProfile("p2", "Inactive", 30, "male", "Oslo", nil)
	inactive.Active = false
	seenOne := newProfile("p3", "Seen", 30, "male", "Oslo", nil)
	fresh := newProfile("p4", "Fresh", 30, "male", "Oslo", nil)

	got := Filter(me, []*profile.Profile{self, inactive, seenOne, fresh}, map[string]bool{"p3": true})
	assert.Equal(t, []string{"p4"}, ids(got))
}

func TestFilterGenderIsMutual(t *testing.T) {
	alice := newProfile("a", "Alice", 28, "female", "Oslo", nil)
	alice.LookingFor = &profile.LookingFor{Genders: []string{"male", "non-binary"}}

	bob := newProfile("b", "Bob", 30, "male", "Oslo", nil)
	eve := newProfile("e", "Eve", 30, "female", "Oslo", nil)

	// Candidate whose own preferences exclude the requester.
	carol := newProfile("c", "Carol", 30, "male", "Oslo", nil)
	carol.LookingFor = &profile.LookingFor{Genders: []string{"male"}}

	got := Filter(alice, []*profile.Profile{bob, eve, carol}, nil)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterGenderWildcardDisablesConstraint(t *testing.T) {
	alice := newProfile("a", "Alice", 28, "female", "Oslo", nil)
	alice.LookingFor = &profile.LookingFor{Genders: []string{"any"}}

	bob := newProfile("b", "Bob", 30, "male", "Oslo", nil)
	bob.LookingFor = &profile.LookingFor{Genders: []string{"Any"}}

	got := Filter(alice, []*profile.Profile{bob}, nil)
	assert.Len(t, got, 1, "wildcard should accept any gender")
}

func TestFilterAgeRangeIsMutualAndInclusive(t *testing.T) {
	alice := newProfile("a", "Alice", 28, "female", "Oslo", nil)
	alice.LookingFor = &profile.LookingFor{AgeRange: []int{25, 35}}

	edge := newProfile("b", "Edge", 35, "male", "Oslo", nil)
	tooOld := newProfile("c", "Old", 36, "male", "Oslo", nil)
	excludesMe := newProfile("d", "Picky", 30, "male", "Oslo", nil)
	excludesMe.LookingFor = &profile.LookingFor{AgeRange: []int{35, 50}}

	got := Filter(alice, []*profile.Profile{edge, tooOld, excludesMe}, nil)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterDealbreakersBothDirections(t *testing.T) {
	alice := newProfile("a", "Alice", 28, "female", "Oslo", []string{"hiking"})
	alice.LookingFor = &profile.LookingFor{Dealbreakers: []string{"smoking"}}

	smoker := newProfile("b", "Smoker", 28, "male", "Oslo", []string{"smoking"})
	hatesHiking := newProfile("c", "NoHikes", 28, "male", "Oslo", []string{"coffee"})
	hatesHiking.LookingFor = &profile.LookingFor{Dealbreakers: []string{"hiking"}}
	clean := newProfile("d", "Clean", 28, "male", "Oslo", []string{"coffee"})

	got := Filter(alice, []*profile.Profile{smoker, hatesHiking, clean}, nil)
	assert.Equal(t, []string{"d"}, ids(got))
}

func TestFilterDealbreakerMatchIsExact(t *testing.T) {
	alice := newProfile("a", "Alice", 28, "female", "Oslo", nil)
	alice.LookingFor = &profile.LookingFor{Dealbreakers: []string{"smoking"}}

	// Raw tags are compared without case folding.
	smoker := newProfile("b", "Smoker", 28, "male", "Oslo", []string{"Smoking"})

	got := Filter(alice, []*profile.Profile{smoker}, nil)
	assert.Len(t, got, 1, "dealbreaker comparison is case-sensitive")
}

func TestScoreBaseOnly(t *testing.T) {
	a := newProfile("a", "A", 0, "", "", nil)
	b := newProfile("b", "B", 0, "", "", nil)

	score, common := Score(a, b)
	assert.Equal(t, 50, score)
	assert.Empty(t, common)
}

func TestScoreSharedInterestsCaseInsensitiveRequesterCasing(t *testing.T) {
	a := newProfile("a", "A", 0, "", "", []string{"Hiking", "coffee", "tech"})
	b := newProfile("b", "B", 0, "", "", []string{"hiking", "Coffee", "music"})

	score, common := Score(a, b)
	assert.Equal(t, 70, score)
	assert.Equal(t, []string{"Hiking", "coffee"}, common, "requester casing and order")
}

func TestScorePreferredInterestSubstring(t *testing.T) {
	a := newProfile("a", "A", 0, "", "", []string{"rock climbing"})
	a.LookingFor = &profile.LookingFor{Interests: []string{"climb"}}
	b := newProfile("b", "B", 0, "", "", []string{"Rock Climbing"})

	// Shared interest (+10) and preference substring (+15) stack.
	score, _ := Score(a, b)
	assert.Equal(t, 75, score)
}

func TestScoreAgeProximity(t *testing.T) {
	cases := []struct {
		ageA, ageB, want int
	}{
		{30, 30, 70},
		{30, 33, 64},
		{30, 40, 50},
		{30, 45, 50},
	}
	for _, tc := range cases {
		a := newProfile("a", "A", tc.ageA, "", "", nil)
		b := newProfile("b", "B", tc.ageB, "", "", nil)
		score, _ := Score(a, b)
		assert.Equalf(t, tc.want, score, "ages %d/%d", tc.ageA, tc.ageB)
	}
}

func TestScoreLocationExactCaseInsensitive(t *testing.T) {
	a := newProfile("a", "A", 0, "", "San Francisco", nil)
	b := newProfile("b", "B", 0, "", "san francisco", nil)

	score, _ := Score(a, b)
	assert.Equal(t, 70, score)

	c := newProfile("c", "C", 0, "", "Oakland", nil)
	score, _ = Score(a, c)
	assert.Equal(t, 50, score)
}

func TestScoreDeterminism(t *testing.T) {
	a := newProfile("a", "A", 28, "female", "Oslo", []string{"hiking", "coffee", "tech"})
	a.LookingFor = &profile.LookingFor{Interests: []string{"out"}}
	b := newProfile("b", "B", 30, "male", "Oslo", []string{"Hiking", "outdoors", "coffee"})

	s1, c1 := Score(a, b)
	s2, c2 := Score(a, b)
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
}

func TestAliceBobCharlieScenario(t *testing.T) {
	alice := newProfile("alice", "Alice", 28, "female", "San Francisco",
		[]string{"hiking", "coffee", "tech", "travel", "photography"})
	alice.LookingFor = &profile.LookingFor{
		Genders:      []string{"male", "non-binary"},
		AgeRange:     []int{25, 35},
		Dealbreakers: []string{"smoking"},
	}

	bob := newProfile("bob", "Bob", 30, "male", "Oakland",
		[]string{"hiking", "coffee", "coding", "music", "climbing"})

	charlie := newProfile("charlie", "Charlie", 45, "male", "San Francisco",
		[]string{"smoking", "poker"})
	charlie.LookingFor = &profile.LookingFor{AgeRange: []int{35, 50}}

	eligible := Filter(alice, []*profile.Profile{bob, charlie}, nil)
	require.Equal(t, []string{"bob"}, ids(eligible))

	score, common := Score(alice, bob)
	assert.Greater(t, score, 50)
	assert.Equal(t, []string{"hiking", "coffee"}, common)
}
