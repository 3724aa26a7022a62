package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course statuses. Transitions are free in both directions.
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

// Course is the top-level catalog record. Nested sub-resources are stored as
// JSON columns, mirroring the document shape the catalog and detail views
// consume. createdAt/updatedAt are client-set milliseconds-since-epoch (the
// payload builder writes them), so GORM's automatic tracking is disabled.
type Course struct {
	ID string `json:"id" gorm:"primaryKey;size:36"`

	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	About    string `json:"about"`

	Categories CategoryList `json:"categories"`
	Mode       string       `json:"mode"`  // Live, Self-paced, Cohort or empty
	Level      string       `json:"level"` // Beginner, Intermediate, Advanced or empty
	Status     string       `json:"status" gorm:"default:'Draft'"`

	LiveURL        string `json:"liveUrl"`
	PromoImage     string `json:"promoImage"`
	ThumbnailImage string `json:"thumbnailImage"`

	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`

	Rating          float64 `json:"rating"`
	EnrollmentCount int64   `json:"enrollmentCount"`

	DurationHours   int `json:"durationHours"`
	DurationMinutes int `json:"durationMinutes"` // 0..59

	Tools                datatypes.JSONSlice[Tool]            `json:"tools"`
	Schedule             datatypes.JSONSlice[ScheduleSession] `json:"schedule"`
	Prerequisites        datatypes.JSONSlice[Section]         `json:"prerequisites"`
	LiveSessions         datatypes.JSONSlice[Section]         `json:"liveSessions"`
	PostSessionMaterials datatypes.JSONSlice[Section]         `json:"postSessionMaterials"`
	Requirements         datatypes.JSONSlice[string]          `json:"requirements"` // max 6
	Outcomes             datatypes.JSONSlice[Outcome]         `json:"outcomes"`     // max 4
	Projects             datatypes.JSONSlice[Project]         `json:"projects"`
	ProjectGallery       datatypes.JSONSlice[GalleryImage]    `json:"projectGallery"`
	Instructors          datatypes.JSONSlice[Instructor]      `json:"instructors"` // max 5
	Reviews              datatypes.JSONSlice[Review]          `json:"reviews"`
	FAQs                 datatypes.JSONSlice[FAQ]             `json:"faqs"`
	Highlights           datatypes.JSONSlice[Highlight]       `json:"highlights"`
	Audience             datatypes.JSONSlice[AudienceGroup]   `json:"audience"`
	Completion           datatypes.JSONType[Completion]       `json:"completion"`

	CreatedAt int64 `json:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt int64 `json:"updatedAt" gorm:"autoUpdateTime:false"`
}

// BeforeCreate assigns the opaque record id. Once assigned it never changes.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Tool is one entry of the tools strip on the detail page.
type Tool struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ScheduleSession is the persisted shape of one live meeting: a display time
// string like "20 Aug - 7:00 PM" and a duration string like "1h 30m".
type ScheduleSession struct {
	ID       string `json:"id"` // "schedule-{n}" by row position
	Label    string `json:"label"`
	Time     string `json:"time"`
	Duration string `json:"duration"`
}

// Section groups subsection rows for prerequisites, live sessions and
// post-session materials.
type Section struct {
	SectionName string       `json:"sectionName"`
	Subsections []Subsection `json:"subsections"`
}

type Subsection struct {
	Title string `json:"title"`
	Time  string `json:"time"`
}

type Outcome struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Project struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	PreviewImage string  `json:"previewImage"`
	Likes        float64 `json:"likes"`
	LiveURL      string  `json:"liveUrl"`
}

type GalleryImage struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

type Instructor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Photo       string `json:"photo"`
	Bio         string `json:"bio"`
	LinkedInURL string `json:"linkedInUrl"`
}

// Review carries a Show flag; reviews with Show == false stay in storage but
// are hidden from the public detail view.
type Review struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Affiliation string  `json:"affiliation"`
	Rating      float64 `json:"rating"`
	Body        string  `json:"body"`
	Avatar      string  `json:"avatar"`
	Likes       float64 `json:"likes"`
	Show        *bool   `json:"show,omitempty"` // nil means visible
}

// Visible reports whether the review should render publicly.
func (r Review) Visible() bool {
	return r.Show == nil || *r.Show
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Highlight struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type AudienceGroup struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	Tone    string   `json:"tone"`
}

type Completion struct {
	Benefits         []string `json:"benefits"`
	CertificateImage string   `json:"certificateImage"`
}
