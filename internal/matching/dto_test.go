package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavblj/clawdr/internal/profile"
)

func TestDiscoverResponseKeysProfileID(t *testing.T) {
	res := &DiscoverResult{
		BatchSize: 10,
		Page: Page{
			Batch: []Candidate{{
				Profile:         &profile.Profile{ID: "p1", Name: "Alice", Age: 28},
				Score:           70,
				CommonInterests: []string{"hiking"},
			}},
			TotalAvailable: 1,
		},
	}

	raw, err := json.Marshal(newDiscoverResponse(res))
	require.NoError(t, err)

	var decoded struct {
		Batch []map[string]json.RawMessage `json:"batch"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Batch, 1)

	item := decoded.Batch[0]
	assert.Contains(t, item, "profile_id")
	assert.NotContains(t, item, "id", "discovery items key the id as profile_id")
	assert.JSONEq(t, `"p1"`, string(item["profile_id"]))
	assert.Contains(t, item, "compatibility")
}
