package courseValidator

import (
	"strconv"
	"strings"

	"shattak/middleware"

	"github.com/gofiber/fiber/v2"
)

var draftCollections = map[string]bool{
	"tools":       true,
	"schedule":    true,
	"instructors": true,
	"gallery":     true,
}

// OpenDraft validates the open-session request. An empty body starts a blank
// create draft; a courseId seeds the edit flow.
func OpenDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("seedCourseID", strings.TrimSpace(reqData.CourseID))
		return c.Next()
	}
}

// DraftID validates requests addressing an open draft session.
func DraftID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		draftID := strings.TrimSpace(c.Params("draftId"))
		if draftID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Draft ID is required!", nil)
		}

		c.Locals("draftID", draftID)
		return c.Next()
	}
}

// SetDraftField validates a single field mutation: a field name plus its new
// value, which stays untyped so numeric coercion can reject bad input with a
// field-specific message.
func SetDraftField() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string      `json:"name"`
			Value interface{} `json:"value"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Name) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Field name is required!", nil)
		}

		c.Locals("fieldName", reqData.Name)
		c.Locals("fieldValue", reqData.Value)
		return c.Next()
	}
}

// DraftCollection validates the collection segment of a row operation.
func DraftCollection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if !draftCollections[collection] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown collection!", nil)
		}

		c.Locals("collection", collection)
		return c.Next()
	}
}

// DraftRow validates the collection and row index of an update/remove.
func DraftRow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		collection := c.Params("collection")
		if !draftCollections[collection] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown collection!", nil)
		}

		index, err := strconv.Atoi(c.Params("index"))
		if err != nil || index < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid row index!", nil)
		}

		c.Locals("collection", collection)
		c.Locals("rowIndex", index)
		return c.Next()
	}
}

// SubmitDraft validates the submit request. The optional publish flag
// overrides the draft's status field at save time.
func SubmitDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Publish *bool `json:"publish"`
		})

		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("publish", reqData.Publish)
		return c.Next()
	}
}
