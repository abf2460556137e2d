package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavblj/clawdr/internal/profile"
)

func scoredSet(scores map[string]int, order []string) []Candidate {
	out := make([]Candidate, 0, len(order))
	for _, id := range order {
		out = append(out, Candidate{
			Profile: &profile.Profile{ID: id, Active: true},
			Score:   scores[id],
		})
	}
	return out
}

func batchIDs(page Page) []string {
	out := make([]string, 0, len(page.Batch))
	for _, c := range page.Batch {
		out = append(out, c.Profile.ID)
	}
	return out
}

func TestPaginateOrdersByScoreDescending(t *testing.T) {
	scored := scoredSet(map[string]int{"a": 60, "b": 90, "c": 75}, []string{"a", "b", "c"})

	page := Paginate(scored, 10, "")
	assert.Equal(t, []string{"b", "c", "a"}, batchIDs(page))
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor, "no cursor on the final page")
	assert.Equal(t, 3, page.TotalAvailable)
}

func TestPaginateTiesKeepArrivalOrder(t *testing.T) {
	scored := scoredSet(map[string]int{"a": 70, "b": 70, "c": 70}, []string{"a", "b", "c"})

	page := Paginate(scored, 10, "")
	assert.Equal(t, []string{"a", "b", "c"}, batchIDs(page), "tied scores keep arrival order")
}

func TestPaginateCursorChainingIsCompleteWithoutOverlap(t *testing.T) {
	scores := map[string]int{"a": 95, "b": 90, "c": 85, "d": 80, "e": 75}
	scored := scoredSet(scores, []string{"a", "b", "c", "d", "e"})

	var collected []string
	cursor := ""
	for i := 0; i < 10; i++ {
		page := Paginate(scored, 2, cursor)
		collected = append(collected, batchIDs(page)...)
		if !page.HasMore {
			break
		}
		require.NotEmpty(t, page.NextCursor, "has_more set but no cursor returned")
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, collected)
}

func TestPaginateStaleCursorRestartsFromTop(t *testing.T) {
	scored := scoredSet(map[string]int{"a": 90, "b": 80}, []string{"a", "b"})

	page := Paginate(scored, 2, "gone")
	assert.Equal(t, []string{"a", "b"}, batchIDs(page), "stale cursor restarts from the top")
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 5, "")
	assert.Empty(t, page.Batch)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
	assert.Zero(t, page.TotalAvailable)
}

func TestPaginateCursorAtLastElement(t *testing.T) {
	scored := scoredSet(map[string]int{"a": 90, "b": 80}, []string{"a", "b"})

	page := Paginate(scored, 2, "b")
	assert.Empty(t, page.Batch)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}
