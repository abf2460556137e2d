package matching

import "sort"

// Page is one discovery window over the scored candidate list.
type Page struct {
	Batch          []Candidate
	HasMore        bool
	NextCursor     string
	TotalAvailable int
}

// Paginate orders candidates by descending score and slices the window
// after the cursor. The sort is stable: tied scores keep the order they
// arrived in, which is the store's read order (creation order in
// practice). A cursor naming a profile no longer in the sequence
// restarts from the top rather than erroring, so stale cursors from a
// shifted pool degrade gracefully.
func Paginate(scored []Candidate, batchSize int, cursor string) Page {
	sorted := make([]Candidate, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	total := len(sorted)

	start := 0
	if cursor != "" {
		for i, c := range sorted {
			if c.Profile.ID == cursor {
				start = i + 1
				break
			}
		}
	}

	end := start + batchSize
	if end > total {
		end = total
	}
	batch := sorted[start:end]

	page := Page{
		Batch:          batch,
		HasMore:        start+batchSize < total,
		TotalAvailable: total,
	}
	if page.HasMore && len(batch) > 0 {
		page.NextCursor = batch[len(batch)-1].Profile.ID
	}
	return page
}
