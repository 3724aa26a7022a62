package drafts

import (
	"sync"
	"testing"
	"time"

	"shattak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }
func int64Ptr(n int64) *int64 { return &n }

func TestOpenBlankDraft(t *testing.T) {
	st := NewStore()

	id, snap := st.Open(nil)
	assert.NotEmpty(t, id)
	assert.Equal(t, models.StatusDraft, snap.Status)
	assert.Empty(t, snap.CourseID)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Schedule)
}

func TestSetField(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	snap, err := st.SetField(id, "title", "Intro to Design")
	require.NoError(t, err)
	assert.Equal(t, "Intro to Design", snap.Title)

	snap, err = st.SetField(id, "price", float64(299))
	require.NoError(t, err)
	assert.Equal(t, 299.0, snap.Price)

	snap, err = st.SetField(id, "categories", []interface{}{"Design", " Coding "})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryList{"Design", "Coding"}, snap.Categories)
}

func TestSetFieldRejectsBadNumber(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.SetField(id, "price", float64(100))
	require.NoError(t, err)

	snap, err := st.SetField(id, "price", "not a number")
	assert.EqualError(t, err, "price must be a number")
	// previous value retained
	assert.Equal(t, 100.0, snap.Price)

	_, err = st.SetField(id, "nonsense", "x")
	assert.Error(t, err)
}

func TestSetFieldUnknownDraft(t *testing.T) {
	st := NewStore()
	_, err := st.SetField("missing", "title", "x")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestScheduleAggregation(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	for _, minutes := range []int{60, 30, 95} {
		_, err := st.AppendSession(id)
		require.NoError(t, err)
		snap, _ := st.Get(id)
		_, err = st.UpdateSession(id, len(snap.Schedule)-1, SessionPatch{
			Label:           strPtr("Session"),
			Start:           int64Ptr(1755691200000),
			DurationMinutes: intPtr(minutes),
		})
		require.NoError(t, err)
	}

	snap, err := st.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.DurationHours)
	assert.Equal(t, 5, snap.DurationMinutes)

	// removing a row recomputes
	snap, err = st.RemoveSession(id, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.DurationHours)
	assert.Equal(t, 30, snap.DurationMinutes)
}

func TestScheduleAggregationIdempotent(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.AppendSession(id)
	require.NoError(t, err)
	first, err := st.UpdateSession(id, 0, SessionPatch{DurationMinutes: intPtr(90)})
	require.NoError(t, err)

	// re-applying the same patch changes nothing
	second, err := st.UpdateSession(id, 0, SessionPatch{DurationMinutes: intPtr(90)})
	require.NoError(t, err)
	assert.Equal(t, first.DurationHours, second.DurationHours)
	assert.Equal(t, first.DurationMinutes, second.DurationMinutes)
}

func TestEmptyScheduleKeepsManualDuration(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.SetField(id, "durationHours", float64(8))
	require.NoError(t, err)
	snap, err := st.SetField(id, "durationMinutes", float64(15))
	require.NoError(t, err)

	// no schedule rows exist, so the aggregator never overwrites these
	assert.Equal(t, 8, snap.DurationHours)
	assert.Equal(t, 15, snap.DurationMinutes)

	// once a row exists the schedule owns the duration, even after removal
	_, err = st.AppendSession(id)
	require.NoError(t, err)
	snap, err = st.RemoveSession(id, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.DurationHours)
	assert.Equal(t, 0, snap.DurationMinutes)
}

func TestNewSessionDefaultsToOneHour(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	snap, err := st.AppendSession(id)
	require.NoError(t, err)
	require.Len(t, snap.Schedule, 1)
	assert.Equal(t, 60, snap.Schedule[0].DurationMinutes)
	assert.Equal(t, 1, snap.DurationHours)
	assert.Equal(t, 0, snap.DurationMinutes)
}

func TestRowIndexOutOfRange(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.UpdateTool(id, 0, ToolPatch{Name: strPtr("Figma")})
	assert.Error(t, err)
	_, err = st.RemoveInstructor(id, -1)
	assert.Error(t, err)
}

func TestCollectionRoundTrip(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.AppendTool(id)
	require.NoError(t, err)
	snap, err := st.UpdateTool(id, 0, ToolPatch{Name: strPtr("Figma"), Image: strPtr("/uploads/figma.png")})
	require.NoError(t, err)
	assert.Equal(t, "Figma", snap.Tools[0].Name)

	_, err = st.AppendInstructor(id)
	require.NoError(t, err)
	snap, err = st.UpdateInstructor(id, 0, InstructorPatch{Name: strPtr("Asha"), Role: strPtr("Mentor")})
	require.NoError(t, err)
	assert.Equal(t, "Asha", snap.Instructors[0].Name)

	_, err = st.AppendGalleryImage(id)
	require.NoError(t, err)
	snap, err = st.UpdateGalleryImage(id, 0, GalleryPatch{Alt: strPtr("Project shot")})
	require.NoError(t, err)
	assert.Equal(t, "Project shot", snap.Gallery[0].Alt)

	snap, err = st.RemoveTool(id, 0)
	require.NoError(t, err)
	assert.Empty(t, snap.Tools)
}

func TestReset(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.SetField(id, "title", "Something")
	require.NoError(t, err)
	_, err = st.AppendSession(id)
	require.NoError(t, err)

	snap, err := st.Reset(id)
	require.NoError(t, err)
	assert.Empty(t, snap.Title)
	assert.Empty(t, snap.Schedule)
	assert.Equal(t, models.StatusDraft, snap.Status)
}

func TestDiscardAndReap(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	st.Discard(id)
	_, err := st.Get(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	id2, _ := st.Open(nil)
	assert.Equal(t, 0, st.Reap(time.Hour))
	assert.Equal(t, 1, st.Reap(-time.Second))
	_, err = st.Get(id2)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestConcurrentEditsDoNotLoseUpdates(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	for i := 0; i < 20; i++ {
		_, err := st.AppendSession(id)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			_, err := st.UpdateSession(id, row, SessionPatch{DurationMinutes: intPtr(30)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	snap, err := st.Get(id)
	require.NoError(t, err)
	for _, sd := range snap.Schedule {
		assert.Equal(t, 30, sd.DurationMinutes)
	}
	assert.Equal(t, 10, snap.DurationHours)
	assert.Equal(t, 0, snap.DurationMinutes)
}

func TestCallersGetCopies(t *testing.T) {
	st := NewStore()
	id, _ := st.Open(nil)

	_, err := st.AppendTool(id)
	require.NoError(t, err)

	snap, err := st.Get(id)
	require.NoError(t, err)
	snap.Tools[0].Name = "mutated locally"

	fresh, err := st.Get(id)
	require.NoError(t, err)
	assert.Empty(t, fresh.Tools[0].Name)
}
