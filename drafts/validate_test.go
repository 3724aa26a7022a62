package drafts

import (
	"testing"

	"shattak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Snapshot {
	snap := NewSnapshot()
	snap.Title = "Intro to Design"
	snap.Categories = models.CategoryList{"Design"}
	snap.Schedule = []SessionDraft{
		{Label: "Kickoff", Start: sessionStart, DurationMinutes: 60},
	}
	return snap
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	snap := validDraft()
	assert.Empty(t, snap.Validate(false))
	assert.Empty(t, snap.Validate(true))
}

func TestValidateFirstFailure(t *testing.T) {
	snap := validDraft()
	snap.Title = "   "
	snap.Categories = models.CategoryList{}

	errs := snap.Validate(false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Title is required", errs[0])
}

func TestValidateAccumulates(t *testing.T) {
	snap := validDraft()
	snap.Title = ""
	snap.Categories = models.CategoryList{}
	snap.Schedule[0].Label = ""

	errs := snap.Validate(true)
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Category is required")
	assert.Contains(t, errs, "Schedule 1: session label is required")
}

func TestValidateRating(t *testing.T) {
	snap := validDraft()

	snap.Rating = 5.0
	assert.Empty(t, snap.Validate(false))

	snap.Rating = 5.1
	errs := snap.Validate(false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Rating must be between 0 and 5", errs[0])

	snap.Rating = -0.1
	errs = snap.Validate(false)
	require.NotEmpty(t, errs)
	assert.Equal(t, "Rating must be between 0 and 5", errs[0])
}

func TestValidateDurationMinutes(t *testing.T) {
	snap := validDraft()
	snap.Schedule = nil

	snap.DurationMinutes = 59
	assert.Empty(t, snap.Validate(false))

	snap.DurationMinutes = 60
	errs := snap.Validate(false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Duration minutes must be between 0 and 59", errs[0])
}

func TestValidateScheduleRows(t *testing.T) {
	snap := validDraft()
	snap.Schedule = append(snap.Schedule, SessionDraft{Label: "Workshop", DurationMinutes: 60})

	errs := snap.Validate(false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Schedule 2: pick a date & time", errs[0])

	snap.Schedule[1].Start = sessionStart
	snap.Schedule[1].DurationMinutes = 0
	errs = snap.Validate(false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Schedule 2: duration must be greater than 0", errs[0])

	// rows loaded from storage satisfy the checks through their strings
	snap.Schedule[1] = SessionDraft{Label: "Loaded", Time: "20 Aug - 7:00 PM", Duration: "1h 30m"}
	assert.Empty(t, snap.Validate(false))
}

func TestValidateEditorJSON(t *testing.T) {
	snap := validDraft()
	snap.ProjectsJSON = `{broken`

	// create flow never looks at the editor blocks
	assert.Empty(t, snap.Validate(false))

	errs := snap.Validate(true)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "projects must be valid JSON:")
}

func TestValidateEditorContent(t *testing.T) {
	snap := validDraft()
	snap.RequirementsJSON = `["a","b","c","d","e","f","g"]`
	snap.OutcomesJSON = `[{"text":""},{"text":"ok"}]`
	snap.ReviewsJSON = `[{"name":" "}]`
	snap.FAQsJSON = `[{"question":"Why?"}]`

	errs := snap.Validate(true)
	assert.Contains(t, errs, "requirements allows at most 6 entries")
	assert.Contains(t, errs, "outcomes[0]: text is required")
	assert.Contains(t, errs, "reviews[0]: name is required")
	assert.NotContains(t, errs, "faqs[0]: question is required")
}

func TestValidateRequirementsMustBeStrings(t *testing.T) {
	snap := validDraft()
	snap.RequirementsJSON = `["ok", 42]`

	errs := snap.Validate(true)
	assert.Contains(t, errs, "requirements must be an array of strings")
}

func TestValidateInstructorCap(t *testing.T) {
	snap := validDraft()
	snap.Instructors = make([]models.Instructor, 6)

	errs := snap.Validate(true)
	assert.Contains(t, errs, "instructors allows at most 5 entries")
	// the create flow does not enforce the cap
	assert.Empty(t, snap.Validate(false))
}

func TestValidateCourseRecord(t *testing.T) {
	course := &models.Course{
		Title:      "Intro to Design",
		Categories: models.CategoryList{"Design"},
		Schedule: []models.ScheduleSession{
			{ID: "schedule-1", Label: "Kickoff", Time: "20 Aug - 7:00 PM", Duration: "1h"},
		},
	}
	assert.Empty(t, ValidateCourse(course, false))

	course.Schedule[0].Duration = "0m"
	errs := ValidateCourse(course, false)
	require.Len(t, errs, 1)
	assert.Equal(t, "Schedule 1: duration must be greater than 0", errs[0])

	course.Schedule[0].Duration = "1h"
	course.Title = ""
	course.Rating = 9
	errs = ValidateCourse(course, true)
	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Rating must be between 0 and 5")
}
