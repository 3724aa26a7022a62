package drafts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shattak/models"
	"shattak/utils"

	"gorm.io/datatypes"
)

// defaultOutcomes backfills the outcomes list when a record is saved without
// one; the detail view always has four entries to render.
var defaultOutcomes = []models.Outcome{
	{ID: "outcome-1", Text: "Understand the core concepts covered in the course"},
	{ID: "outcome-2", Text: "Apply what you learned in a hands-on project"},
	{ID: "outcome-3", Text: "Build confidence working with the course tools"},
	{ID: "outcome-4", Text: "Be ready for the next level of the topic"},
}

// parseList decodes a freeform JSON text block into a typed list. Validation
// gates submission first, so here malformed or empty text degrades to an
// empty list.
func parseList[T any](text string) []T {
	if strings.TrimSpace(text) == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return []T{}
	}
	return out
}

// projectSession turns a working schedule row into its persisted shape.
// Rows edited through the date picker format their display strings here;
// rows loaded from storage keep the strings they came with.
func projectSession(sd SessionDraft, position int) models.ScheduleSession {
	out := models.ScheduleSession{
		ID:    fmt.Sprintf("schedule-%d", position+1),
		Label: strings.TrimSpace(sd.Label),
	}

	if sd.Start != 0 {
		out.Time = utils.FormatScheduleTime(time.UnixMilli(sd.Start).UTC())
	} else {
		out.Time = sd.Time
	}

	if sd.DurationMinutes > 0 || sd.Duration == "" {
		out.Duration = utils.FormatDuration(sd.DurationMinutes)
	} else {
		out.Duration = sd.Duration
	}

	return out
}

// BuildPayload assembles the record to persist from the draft. Pure apart
// from the supplied wall clock: same draft in, same payload out.
func (s *Snapshot) BuildPayload(now time.Time) *models.Course {
	status := s.Status
	if status == "" {
		status = models.StatusDraft
	}

	schedule := make([]models.ScheduleSession, len(s.Schedule))
	for i, sd := range s.Schedule {
		schedule[i] = projectSession(sd, i)
	}

	outcomes := parseList[models.Outcome](s.OutcomesJSON)
	if len(outcomes) == 0 {
		outcomes = append([]models.Outcome{}, defaultOutcomes...)
	}

	course := &models.Course{
		ID:       s.CourseID,
		Title:    s.Title,
		Subtitle: s.Subtitle,
		About:    s.About,

		Categories: append(models.CategoryList{}, s.Categories...),
		Mode:       s.Mode,
		Level:      s.Level,
		Status:     status,

		LiveURL:        s.LiveURL,
		PromoImage:     s.PromoImage,
		ThumbnailImage: s.ThumbnailImage,

		Price:         s.Price,
		OriginalPrice: s.OriginalPrice,

		Rating:          s.Rating,
		EnrollmentCount: s.EnrollmentCount,

		DurationHours:   s.DurationHours,
		DurationMinutes: s.DurationMinutes,

		Tools:                append([]models.Tool{}, s.Tools...),
		Schedule:             schedule,
		Prerequisites:        parseList[models.Section](s.PrerequisitesJSON),
		LiveSessions:         parseList[models.Section](s.LiveSessionsJSON),
		PostSessionMaterials: parseList[models.Section](s.PostSessionMaterialsJSON),
		Requirements:         parseList[string](s.RequirementsJSON),
		Outcomes:             outcomes,
		Projects:             parseList[models.Project](s.ProjectsJSON),
		ProjectGallery:       append([]models.GalleryImage{}, s.Gallery...),
		Instructors:          append([]models.Instructor{}, s.Instructors...),
		Reviews:              parseList[models.Review](s.ReviewsJSON),
		FAQs:                 parseList[models.FAQ](s.FAQsJSON),
		Highlights:           append([]models.Highlight{}, s.Highlights...),
		Audience:             append([]models.AudienceGroup{}, s.Audience...),
		Completion:           datatypes.NewJSONType(s.Completion),

		CreatedAt: s.CreatedAt,
		UpdatedAt: now.UnixMilli(),
	}

	if course.CreatedAt == 0 {
		course.CreatedAt = now.UnixMilli()
	}

	return course
}

func marshalEditor(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil || string(b) == "null" {
		return "[]"
	}
	return string(b)
}

// SeedFromCourse loads a stored record into the edit flow's draft shape.
// Persisted schedule rows keep their display strings; their minute counts are
// recovered from the "Xh Ym" text so the duration aggregation still works.
func SeedFromCourse(c *models.Course) Snapshot {
	snap := NewSnapshot()

	snap.CourseID = c.ID
	snap.CreatedAt = c.CreatedAt

	snap.Title = c.Title
	snap.Subtitle = c.Subtitle
	snap.About = c.About

	snap.Categories = append(models.CategoryList{}, c.Categories...)
	snap.Mode = c.Mode
	snap.Level = c.Level
	if c.Status != "" {
		snap.Status = c.Status
	}

	snap.LiveURL = c.LiveURL
	snap.PromoImage = c.PromoImage
	snap.ThumbnailImage = c.ThumbnailImage

	snap.Price = c.Price
	snap.OriginalPrice = c.OriginalPrice
	snap.Rating = c.Rating
	snap.EnrollmentCount = c.EnrollmentCount
	snap.DurationHours = c.DurationHours
	snap.DurationMinutes = c.DurationMinutes

	snap.Tools = append([]models.Tool{}, c.Tools...)
	snap.Instructors = append([]models.Instructor{}, c.Instructors...)
	snap.Gallery = append([]models.GalleryImage{}, c.ProjectGallery...)
	snap.Highlights = append([]models.Highlight{}, c.Highlights...)
	snap.Audience = append([]models.AudienceGroup{}, c.Audience...)
	snap.Completion = c.Completion.Data()

	snap.Schedule = make([]SessionDraft, len(c.Schedule))
	for i, sess := range c.Schedule {
		snap.Schedule[i] = SessionDraft{
			Label:           sess.Label,
			Time:            sess.Time,
			Duration:        sess.Duration,
			DurationMinutes: utils.ParseDuration(sess.Duration),
		}
	}

	snap.PrerequisitesJSON = marshalEditor([]models.Section(c.Prerequisites))
	snap.LiveSessionsJSON = marshalEditor([]models.Section(c.LiveSessions))
	snap.PostSessionMaterialsJSON = marshalEditor([]models.Section(c.PostSessionMaterials))
	snap.RequirementsJSON = marshalEditor([]string(c.Requirements))
	snap.OutcomesJSON = marshalEditor([]models.Outcome(c.Outcomes))
	snap.ProjectsJSON = marshalEditor([]models.Project(c.Projects))
	snap.ReviewsJSON = marshalEditor([]models.Review(c.Reviews))
	snap.FAQsJSON = marshalEditor([]models.FAQ(c.FAQs))

	return snap
}
