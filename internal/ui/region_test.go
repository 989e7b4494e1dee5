package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionLifecycle(t *testing.T) {
	r := NewRegion("cropResults")
	assert.Equal(t, StateIdle, r.Snapshot().State)

	require.NoError(t, r.Begin(SkeletonGeneric))
	snap := r.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Equal(t, SkeletonGeneric, snap.Content)

	r.Complete("<p>done</p>")
	snap = r.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, "<p>done</p>", string(snap.Content))
	assert.Empty(t, snap.Err)
}

func TestRegionSingleOperationInFlight(t *testing.T) {
	r := NewRegion("priceResults")
	require.NoError(t, r.Begin(SkeletonGeneric))

	// A second trigger while loading is refused.
	assert.ErrorIs(t, r.Begin(SkeletonGeneric), ErrBusy)

	// Once resolved, the region accepts work again.
	r.Complete("<p>ok</p>")
	assert.NoError(t, r.Begin(SkeletonGeneric))
	r.Fail("server unreachable")
	assert.NoError(t, r.Begin(SkeletonGeneric))
}

func TestRegionFailReplacesSkeleton(t *testing.T) {
	r := NewRegion("fieldResults")
	require.NoError(t, r.Begin(SkeletonGeneric))

	r.Fail(`Request failed with status 502`)
	snap := r.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, "Request failed with status 502", snap.Err)
	assert.NotEqual(t, SkeletonGeneric, snap.Content)
	assert.Contains(t, string(snap.Content), "Request failed with status 502")
}

func TestRegionFailEscapesMessage(t *testing.T) {
	r := NewRegion("fieldResults")
	require.NoError(t, r.Begin(SkeletonGeneric))

	r.Fail(`<script>alert(1)</script>`)
	assert.NotContains(t, string(r.Snapshot().Content), "<script>")
}

func TestRegionSubscribeSeesTransitions(t *testing.T) {
	r := NewRegion("dashboard")
	ch, cancel := r.Subscribe()
	defer cancel()

	require.NoError(t, r.Begin(SkeletonDashboard))
	r.Complete("<p>dash</p>")

	ev := <-ch
	assert.Equal(t, StateLoading, ev.State)
	ev = <-ch
	assert.Equal(t, StateLoaded, ev.State)
	assert.Equal(t, "dashboard", ev.Region)

	// After cancel, further transitions are not delivered.
	cancel()
	r.Reset()
	select {
	case ev, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event after cancel: %+v", ev)
		}
	default:
	}
}

func TestRegionsRegistryHasFixedRegions(t *testing.T) {
	rs := NewRegions()
	for _, name := range []string{
		RegionDashboard, RegionCrop, RegionField,
		RegionPrices, RegionReports, RegionFertilizer,
	} {
		r := rs.Get(name)
		require.NotNil(t, r)
		assert.Equal(t, name, r.Name())
	}

	// Same name yields the same region.
	assert.Same(t, rs.Get(RegionCrop), rs.Get(RegionCrop))
}

func TestToasts(t *testing.T) {
	toasts := NewToasts()
	first := toasts.Show(SeverityWarning, "Please fill in all fields.")
	second := toasts.Show(SeverityError, "Request failed with status 500")

	active := toasts.Active()
	require.Len(t, active, 2)
	assert.NotEqual(t, first.ID, second.ID)

	toasts.Dismiss(first.ID)
	active = toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	// Dismissing an unknown id is a no-op.
	toasts.Dismiss("missing")
	assert.Len(t, toasts.Active(), 1)
}

func TestSectionsExactlyOneActive(t *testing.T) {
	s := NewSections()
	assert.Equal(t, SectionDashboard, s.Active())

	s.Show(SectionPrices)
	assert.Equal(t, SectionPrices, s.Active())

	s.Show(SectionSettings)
	assert.Equal(t, SectionSettings, s.Active())
}

func TestPreviewImage(t *testing.T) {
	// A tiny PNG header is enough for content sniffing.
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	html := string(PreviewImage(png))
	assert.Contains(t, html, "data:image/png;base64,")

	assert.Empty(t, PreviewImage(nil))
}
