package matching

import (
	"time"

	"github.com/olavblj/clawdr/internal/profile"
)

type DiscoverResult struct {
	Page      Page
	BatchSize int
}

type LikeResult struct {
	Matched bool
	MatchID string
}

type BatchLikeOutcome struct {
	TargetProfileID string `json:"target_profile_id"`
	Outcome         string `json:"outcome"`
	MatchID         string `json:"match_id,omitempty"`
	Error           string `json:"error,omitempty"`
}

type BatchLikeSummary struct {
	Total   int `json:"total"`
	Liked   int `json:"liked"`
	Matched int `json:"matched"`
	Failed  int `json:"failed"`
}

type BatchLikeResult struct {
	Results []BatchLikeOutcome `json:"results"`
	Summary BatchLikeSummary   `json:"summary"`
}

type BatchLikeDTO struct {
	ProfileIDs []string `json:"profile_ids" validate:"required,min=1,max=50,dive,uuid"`
}

type MatchedProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
}

type MatchSummary struct {
	MatchID      string          `json:"match_id"`
	Status       string          `json:"status"`
	Score        int             `json:"score"`
	OtherProfile *MatchedProfile `json:"other_profile"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MatchList struct {
	Matches  []MatchSummary `json:"matches"`
	Pending  int            `json:"pending"`
	Accepted int            `json:"accepted"`
}

// Wire shapes for discovery responses.

type compatibility struct {
	Score           int      `json:"score"`
	CommonInterests []string `json:"common_interests"`
}

// Discovery items key the id as profile_id, unlike the plain profile
// endpoints which use id.
type discoveredProfile struct {
	ProfileID     string             `json:"profile_id"`
	Name          string             `json:"name"`
	Age           int                `json:"age"`
	Gender        string             `json:"gender"`
	Location      string             `json:"location"`
	Bio           string             `json:"bio"`
	Interests     profile.StringList `json:"interests"`
	Photos        profile.StringList `json:"photos"`
	Compatibility compatibility      `json:"compatibility"`
}

type paginationInfo struct {
	BatchSize      int     `json:"batch_size"`
	Returned       int     `json:"returned"`
	HasMore        bool    `json:"has_more"`
	NextCursor     *string `json:"next_cursor"`
	TotalAvailable int     `json:"total_available"`
}

type discoverResponse struct {
	Batch      []discoveredProfile `json:"batch"`
	Pagination paginationInfo      `json:"pagination"`
}

func newDiscoverResponse(res *DiscoverResult) discoverResponse {
	batch := make([]discoveredProfile, 0, len(res.Page.Batch))
	for _, c := range res.Page.Batch {
		view := c.Profile.Public()
		batch = append(batch, discoveredProfile{
			ProfileID: view.ID,
			Name:      view.Name,
			Age:       view.Age,
			Gender:    view.Gender,
			Location:  view.Location,
			Bio:       view.Bio,
			Interests: view.Interests,
			Photos:    view.Photos,
			Compatibility: compatibility{
				Score:           c.Score,
				CommonInterests: c.CommonInterests,
			},
		})
	}

	pagination := paginationInfo{
		BatchSize:      res.BatchSize,
		Returned:       len(batch),
		HasMore:        res.Page.HasMore,
		TotalAvailable: res.Page.TotalAvailable,
	}
	if res.Page.NextCursor != "" {
		pagination.NextCursor = &res.Page.NextCursor
	}

	return discoverResponse{Batch: batch, Pagination: pagination}
}
