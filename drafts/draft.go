package drafts

import (
	"fmt"

	"shattak/models"
	"shattak/utils"
)

// SessionDraft is the working shape of one schedule row. Rows added in the
// editor carry a start timestamp and a minute count; rows loaded from storage
// carry the persisted display strings instead. The payload builder projects
// whichever side is populated.
type SessionDraft struct {
	Label           string `json:"label"`
	Start           int64  `json:"start"` // unix millis, 0 = not chosen yet
	DurationMinutes int    `json:"durationMinutes"`
	Time            string `json:"time"`
	Duration        string `json:"duration"`
}

// Minutes resolves the session length, falling back to the stored "Xh Ym"
// string for rows loaded from an existing record.
func (sd SessionDraft) Minutes() int {
	if sd.DurationMinutes > 0 {
		return sd.DurationMinutes
	}
	return utils.ParseDuration(sd.Duration)
}

// Snapshot is one in-progress draft of a course. Scalar fields and the four
// row-edited collections (tools, schedule, instructors, gallery) are typed;
// the remaining sub-resources are edited as freeform JSON text and only
// parsed at validation/build time.
type Snapshot struct {
	CourseID  string `json:"courseId"` // empty for the create flow
	CreatedAt int64  `json:"createdAt"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	About    string `json:"about"`

	Categories models.CategoryList `json:"categories"`
	Mode       string              `json:"mode"`
	Level      string              `json:"level"`
	Status     string              `json:"status"`

	LiveURL        string `json:"liveUrl"`
	PromoImage     string `json:"promoImage"`
	ThumbnailImage string `json:"thumbnailImage"`

	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`

	Rating          float64 `json:"rating"`
	EnrollmentCount int64   `json:"enrollmentCount"`

	DurationHours   int `json:"durationHours"`
	DurationMinutes int `json:"durationMinutes"`

	Tools       []models.Tool         `json:"tools"`
	Schedule    []SessionDraft        `json:"schedule"`
	Instructors []models.Instructor   `json:"instructors"`
	Gallery     []models.GalleryImage `json:"gallery"`

	// not editable through the form; carried so an edit round trip keeps them
	Highlights []models.Highlight     `json:"highlights"`
	Audience   []models.AudienceGroup `json:"audience"`
	Completion models.Completion      `json:"completion"`

	PrerequisitesJSON        string `json:"prerequisitesJson"`
	LiveSessionsJSON         string `json:"liveSessionsJson"`
	PostSessionMaterialsJSON string `json:"postSessionMaterialsJson"`
	RequirementsJSON         string `json:"requirementsJson"`
	OutcomesJSON             string `json:"outcomesJson"`
	ProjectsJSON             string `json:"projectsJson"`
	ReviewsJSON              string `json:"reviewsJson"`
	FAQsJSON                 string `json:"faqsJson"`
}

// NewSnapshot returns the initial empty draft.
func NewSnapshot() Snapshot {
	return Snapshot{
		Status:     models.StatusDraft,
		Categories: models.CategoryList{},
	}
}

// Clone returns an independent copy; callers never see the stored snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Categories = append(models.CategoryList{}, s.Categories...)
	out.Tools = append([]models.Tool{}, s.Tools...)
	out.Schedule = append([]SessionDraft{}, s.Schedule...)
	out.Instructors = append([]models.Instructor{}, s.Instructors...)
	out.Gallery = append([]models.GalleryImage{}, s.Gallery...)
	out.Highlights = append([]models.Highlight{}, s.Highlights...)
	out.Audience = append([]models.AudienceGroup{}, s.Audience...)
	return out
}

// numberFields are the draft fields that take numeric coercion; non-numeric
// input is rejected and the previous value retained.
var numberFields = map[string]bool{
	"durationHours":   true,
	"durationMinutes": true,
	"price":           true,
	"originalPrice":   true,
	"rating":          true,
	"enrollmentCount": true,
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// setField applies one field mutation by name. Unknown fields and non-numeric
// values for numeric fields are errors; the snapshot is left untouched.
func (s *Snapshot) setField(name string, value interface{}) error {
	if numberFields[name] {
		num, ok := toNumber(value)
		if !ok {
			return fmt.Errorf("%s must be a number", name)
		}
		switch name {
		case "durationHours":
			s.DurationHours = int(num)
		case "durationMinutes":
			s.DurationMinutes = int(num)
		case "price":
			s.Price = num
		case "originalPrice":
			s.OriginalPrice = num
		case "rating":
			s.Rating = num
		case "enrollmentCount":
			s.EnrollmentCount = int64(num)
		}
		return nil
	}

	if name == "categories" {
		s.Categories = models.NormalizeCategories(value)
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s must be a string", name)
	}

	switch name {
	case "title":
		s.Title = str
	case "subtitle":
		s.Subtitle = str
	case "about":
		s.About = str
	case "mode":
		s.Mode = str
	case "level":
		s.Level = str
	case "status":
		s.Status = str
	case "liveUrl":
		s.LiveURL = str
	case "promoImage":
		s.PromoImage = str
	case "thumbnailImage":
		s.ThumbnailImage = str
	case "prerequisitesJson":
		s.PrerequisitesJSON = str
	case "liveSessionsJson":
		s.LiveSessionsJSON = str
	case "postSessionMaterialsJson":
		s.PostSessionMaterialsJSON = str
	case "requirementsJson":
		s.RequirementsJSON = str
	case "outcomesJson":
		s.OutcomesJSON = str
	case "projectsJson":
		s.ProjectsJSON = str
	case "reviewsJson":
		s.ReviewsJSON = str
	case "faqsJson":
		s.FAQsJSON = str
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// recalcDuration derives the course duration from the schedule. With an empty
// schedule the manual duration fields stay under the editor's control. Pure
// and idempotent; every schedule mutation runs it.
func (s *Snapshot) recalcDuration() {
	if len(s.Schedule) == 0 {
		return
	}
	total := 0
	for _, sd := range s.Schedule {
		if m := sd.Minutes(); m > 0 {
			total += m
		}
	}
	s.DurationHours, s.DurationMinutes = utils.SplitDuration(total)
}
