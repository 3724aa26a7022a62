package courseValidator

import (
	"strings"

	"shattak/drafts"
	"shattak/middleware"
	"shattak/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CourseRequest is the full record payload accepted by the direct
// create/update endpoints. Price fields are typed loosely so string-typed
// numbers can be rejected with the right message instead of a generic parse
// error, and the legacy singular "category" key is still accepted.
type CourseRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	About    string `json:"about"`

	Categories models.CategoryList `json:"categories"`
	Category   models.CategoryList `json:"category"` // legacy singular spelling
	Mode       string              `json:"mode"`
	Level      string              `json:"level"`
	Status     string              `json:"status"`

	LiveURL        string `json:"liveUrl"`
	PromoImage     string `json:"promoImage"`
	ThumbnailImage string `json:"thumbnailImage"`

	Price         interface{} `json:"price"`
	OriginalPrice interface{} `json:"originalPrice"`

	Rating          float64 `json:"rating"`
	EnrollmentCount int64   `json:"enrollmentCount"`
	DurationHours   int     `json:"durationHours"`
	DurationMinutes int     `json:"durationMinutes"`

	Tools                []models.Tool            `json:"tools"`
	Schedule             []models.ScheduleSession `json:"schedule"`
	Prerequisites        []models.Section         `json:"prerequisites"`
	LiveSessions         []models.Section         `json:"liveSessions"`
	PostSessionMaterials []models.Section         `json:"postSessionMaterials"`
	Requirements         []string                 `json:"requirements"`
	Outcomes             []models.Outcome         `json:"outcomes"`
	Projects             []models.Project         `json:"projects"`
	ProjectGallery       []models.GalleryImage    `json:"projectGallery"`
	Instructors          []models.Instructor      `json:"instructors"`
	Reviews              []models.Review          `json:"reviews"`
	FAQs                 []models.FAQ             `json:"faqs"`
	Highlights           []models.Highlight       `json:"highlights"`
	Audience             []models.AudienceGroup   `json:"audience"`
	Completion           models.Completion        `json:"completion"`
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ToCourse shapes the request into the record to persist. Numeric coercion of
// the price fields happens before this is called.
func (r *CourseRequest) ToCourse(price, originalPrice float64) *models.Course {
	categories := r.Categories
	if len(categories) == 0 {
		categories = r.Category
	}
	if categories == nil {
		categories = models.CategoryList{}
	}

	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = models.StatusDraft
	}

	return &models.Course{
		Title:    strings.TrimSpace(r.Title),
		Subtitle: r.Subtitle,
		About:    r.About,

		Categories: categories,
		Mode:       r.Mode,
		Level:      r.Level,
		Status:     status,

		LiveURL:        r.LiveURL,
		PromoImage:     r.PromoImage,
		ThumbnailImage: r.ThumbnailImage,

		Price:         price,
		OriginalPrice: originalPrice,

		Rating:          r.Rating,
		EnrollmentCount: r.EnrollmentCount,
		DurationHours:   r.DurationHours,
		DurationMinutes: r.DurationMinutes,

		Tools:                r.Tools,
		Schedule:             r.Schedule,
		Prerequisites:        r.Prerequisites,
		LiveSessions:         r.LiveSessions,
		PostSessionMaterials: r.PostSessionMaterials,
		Requirements:         r.Requirements,
		Outcomes:             r.Outcomes,
		Projects:             r.Projects,
		ProjectGallery:       r.ProjectGallery,
		Instructors:          r.Instructors,
		Reviews:              r.Reviews,
		FAQs:                 r.FAQs,
		Highlights:           r.Highlights,
		Audience:             r.Audience,
		Completion:           datatypes.NewJSONType(r.Completion),
	}
}

func parseCourseRequest(c *fiber.Ctx) (*models.Course, []string, bool) {
	reqData := new(CourseRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, nil, false
	}

	price, okPrice := asNumber(reqData.Price)
	originalPrice, okOriginal := asNumber(reqData.OriginalPrice)
	if !okPrice || !okOriginal {
		return nil, []string{"Price fields must be numbers"}, true
	}

	return reqData.ToCourse(price, originalPrice), nil, true
}

// CreateCourseAdmin validates the create payload with first-failure
// semantics: the response carries the first reason submission was blocked.
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		course, errs, ok := parseCourseRequest(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if len(errs) == 0 {
			errs = drafts.ValidateCourse(course, false)
		}
		if len(errs) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, errs[0], nil)
		}

		c.Locals("validatedCourse", course)
		return c.Next()
	}
}

// UpdateCourseAdmin validates the update payload, accumulating every failure.
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		course, errs, ok := parseCourseRequest(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		errs = append(errs, drafts.ValidateCourse(course, true)...)
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", course)
		return c.Next()
	}
}

// CourseID validates requests that only carry a course id parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// AdminList parses the list filters: primary category, status and free-text.
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("filterCategory", c.Query("category", "All"))
		c.Locals("filterStatus", c.Query("status", "All"))
		c.Locals("filterQuery", c.Query("q", ""))
		return c.Next()
	}
}
