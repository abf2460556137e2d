package matching

import (
	"strings"

	"github.com/olavblj/clawdr/internal/profile"
)

const (
	baseScore           = 50
	sharedInterestBonus = 10
	preferredBonus      = 15
	locationBonus       = 20
	genderWildcard      = "any"
)

// Candidate is one scored discovery result.
type Candidate struct {
	Profile         *profile.Profile
	Score           int
	CommonInterests []string
}

// Filter removes candidates that violate any mutual hard constraint
// against the requester, or that the requester has already interacted
// with. Every check is conjunctive.
func Filter(requester *profile.Profile, candidates []*profile.Profile, seen map[string]bool) []*profile.Profile {
	eligible := make([]*profile.Profile, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == requester.ID || !c.Active || seen[c.ID] {
			continue
		}
		if !genderAccepts(requester.LookingFor, c.Gender) || !genderAccepts(c.LookingFor, requester.Gender) {
			continue
		}
		if !ageAccepts(requester.LookingFor, c.Age) || !ageAccepts(c.LookingFor, requester.Age) {
			continue
		}
		if hasDealbreaker(requester.LookingFor, c.Interests) || hasDealbreaker(c.LookingFor, requester.Interests) {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

// genderAccepts applies one side's gender preference. An empty set or a
// wildcard entry means unconstrained; an unset candidate gender is never
// rejected.
func genderAccepts(prefs *profile.LookingFor, gender string) bool {
	if prefs == nil || len(prefs.Genders) == 0 || gender == "" {
		return true
	}
	for _, g := range prefs.Genders {
		if strings.EqualFold(g, genderWildcard) || strings.EqualFold(g, gender) {
			return true
		}
	}
	return false
}

func ageAccepts(prefs *profile.LookingFor, age int) bool {
	if prefs == nil || len(prefs.AgeRange) != 2 || age == 0 {
		return true
	}
	return age >= prefs.AgeRange[0] && age <= prefs.AgeRange[1]
}

// hasDealbreaker checks one direction: any of the other side's raw
// interest tags appearing in this side's dealbreaker list. Exact string
// match, no case folding.
func hasDealbreaker(prefs *profile.LookingFor, interests []string) bool {
	if prefs == nil || len(prefs.Dealbreakers) == 0 {
		return false
	}
	for _, d := range prefs.Dealbreakers {
		for _, i := range interests {
			if d == i {
				return true
			}
		}
	}
	return false
}

// Score computes the additive compatibility heuristic between two
// profiles. Deterministic: requester interests are iterated in stored
// order, and commonInterests carries the requester's casing. The score
// has no upper bound.
func Score(requester, candidate *profile.Profile) (int, []string) {
	score := baseScore
	common := []string{}

	for _, mine := range requester.Interests {
		for _, theirs := range candidate.Interests {
			if strings.EqualFold(mine, theirs) {
				score += sharedInterestBonus
				common = append(common, mine)
				break
			}
		}
	}

	if requester.LookingFor != nil {
		for _, want := range requester.LookingFor.Interests {
			lowered := strings.ToLower(want)
			for _, theirs := range candidate.Interests {
				if strings.Contains(strings.ToLower(theirs), lowered) {
					score += preferredBonus
					break
				}
			}
		}
	}

	if requester.Age > 0 && candidate.Age > 0 {
		gap := requester.Age - candidate.Age
		if gap < 0 {
			gap = -gap
		}
		if bonus := 20 - 2*gap; bonus > 0 {
			score += bonus
		}
	}

	if requester.Location != "" && candidate.Location != "" &&
		strings.EqualFold(requester.Location, candidate.Location) {
		score += locationBonus
	}

	return score, common
}

// ScoreAll scores every eligible candidate, preserving input order.
func ScoreAll(requester *profile.Profile, eligible []*profile.Profile) []Candidate {
	scored := make([]Candidate, 0, len(eligible))
	for _, c := range eligible {
		score, common := Score(requester, c)
		scored = append(scored, Candidate{Profile: c, Score: score, CommonInterests: common})
	}
	return scored
}
