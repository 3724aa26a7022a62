package controllers

import (
	"testing"

	"shattak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCourses() []models.Course {
	return []models.Course{
		{Title: "b sound design", Status: models.StatusDraft, Categories: models.CategoryList{"Music"}},
		{Title: "Advanced Figma", Status: models.StatusPublished, Categories: models.CategoryList{"Design"}},
		{Title: "zsh mastery", Status: models.StatusPublished, Categories: models.CategoryList{"Coding"}},
		{Title: "", Categories: models.CategoryList{"Design"}},
	}
}

func titles(list []models.Course) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].Title
	}
	return out
}

func TestNormalizeCoursesDefaultsStatus(t *testing.T) {
	list := NormalizeCourses(sampleCourses())
	assert.Equal(t, models.StatusDraft, list[3].Status)
	assert.Equal(t, models.StatusPublished, list[1].Status)
}

func TestSortForAdmin(t *testing.T) {
	list := NormalizeCourses(sampleCourses())
	SortForAdmin(list)

	// published first, then case-insensitive title within each group
	assert.Equal(t, []string{"Advanced Figma", "zsh mastery", "", "b sound design"}, titles(list))
}

func TestMatchesFilters(t *testing.T) {
	course := &models.Course{
		Title:      "Advanced Figma",
		Subtitle:   "Design systems at scale",
		Status:     models.StatusPublished,
		Categories: models.CategoryList{"Design", "Tools"},
		Level:      "Advanced",
	}

	assert.True(t, MatchesFilters(course, "All", "All", ""))
	assert.True(t, MatchesFilters(course, "Design", "Published", "figma"))
	assert.True(t, MatchesFilters(course, "", "", "design SYSTEMS"))

	// primary category only
	assert.False(t, MatchesFilters(course, "Tools", "All", ""))
	assert.False(t, MatchesFilters(course, "All", "Draft", ""))
	assert.False(t, MatchesFilters(course, "All", "All", "kubernetes"))
}

func TestFilterCourses(t *testing.T) {
	list := NormalizeCourses(sampleCourses())

	filtered := FilterCourses(list, "All", models.StatusPublished, "")
	require.Len(t, filtered, 2)

	filtered = FilterCourses(list, "Design", "All", "")
	require.Len(t, filtered, 2)

	filtered = FilterCourses(list, "All", "All", "sound")
	require.Len(t, filtered, 1)
	assert.Equal(t, "b sound design", filtered[0].Title)
}

func TestUniqOptions(t *testing.T) {
	opts := uniqOptions([]string{"Design", "Coding", "Design", "", "Music"})
	assert.Equal(t, []string{"All", "Coding", "Design", "Music"}, opts)
}

func TestDiscount(t *testing.T) {
	has, pct := Discount(200, 349)
	assert.True(t, has)
	assert.Equal(t, 43, pct)

	has, _ = Discount(349, 200)
	assert.False(t, has)

	// free courses never show a discount badge
	has, _ = Discount(0, 100)
	assert.False(t, has)

	has, _ = Discount(100, 100)
	assert.False(t, has)
}
