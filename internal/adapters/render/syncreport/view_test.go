package syncreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakov-partners/know2-cli/internal/domain"
)

func TestRenderViewListsEveryDataset(t *testing.T) {
	t.Parallel()

	cache := domain.NewReferenceCache()
	cache.ExpertAvailabilityStatuses = map[string]string{"1": "Active", "2": "Archived"}
	cache.Projects = map[string]string{"10": "Pharma market entry"}

	out := renderView(cache, RenderOptions{}, newStyles())

	assert.Contains(t, out, "Know2 reference data")
	for _, name := range domain.DatasetNames {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2 entries")
	assert.Contains(t, out, "1 entries")
}

func TestRenderViewHeaderIncludesElapsed(t *testing.T) {
	t.Parallel()

	cache := domain.NewReferenceCache()

	out := renderView(cache, RenderOptions{Elapsed: 1250 * time.Millisecond}, newStyles())
	assert.Contains(t, out, "synced in 1.25s")

	out = renderView(cache, RenderOptions{}, newStyles())
	assert.NotContains(t, out, "synced in")
}

func TestRenderViewNilCache(t *testing.T) {
	t.Parallel()

	out := renderView(nil, RenderOptions{}, newStyles())

	assert.Contains(t, out, "No cache available.")
	assert.Contains(t, out, "datasets: 0")
}

func TestRenderProducesOutput(t *testing.T) {
	t.Parallel()

	cache := domain.NewReferenceCache()
	cache.MetadataLanguages = map[string]string{"1": "English"}

	out, err := Render(cache, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, domain.DatasetMetadataLanguages)
}
