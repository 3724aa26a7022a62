package controllers

import (
	"errors"
	"log"
	"time"

	"shattak/database"
	"shattak/drafts"
	"shattak/middleware"
	"shattak/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OpenDraft starts an edit session: blank for the create flow, seeded from the
// stored record when a courseId is supplied.
func OpenDraft(c *fiber.Ctx) error {
	seedID, _ := c.Locals("seedCourseID").(string)

	var seed *models.Course
	if seedID != "" {
		course, err := fetchCourse(seedID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
			}
			log.Printf("Failed to fetch course %s: %v", seedID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}
		seed = course
	}

	draftID, snap := drafts.Sessions.Open(seed)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Draft opened!", fiber.Map{
		"draftId": draftID,
		"draft":   snap,
	})
}

// GetDraft returns the current draft state.
func GetDraft(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)

	snap, err := drafts.Sessions.Get(draftID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched!", snap)
}

// SetDraftField applies one field mutation and returns the updated draft.
// Rejected values leave the draft unchanged.
func SetDraftField(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	name, _ := c.Locals("fieldName").(string)
	value := c.Locals("fieldValue")

	snap, err := drafts.Sessions.SetField(draftID, name, value)
	if err != nil {
		if errors.Is(err, drafts.ErrDraftNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), snap)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft updated!", snap)
}

// AppendDraftRow adds an empty row to one of the row-edited collections.
func AppendDraftRow(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	collection, _ := c.Locals("collection").(string)

	var snap drafts.Snapshot
	var err error
	switch collection {
	case "tools":
		snap, err = drafts.Sessions.AppendTool(draftID)
	case "schedule":
		snap, err = drafts.Sessions.AppendSession(draftID)
	case "instructors":
		snap, err = drafts.Sessions.AppendInstructor(draftID)
	case "gallery":
		snap, err = drafts.Sessions.AppendGalleryImage(draftID)
	}
	return draftRowResponse(c, snap, err)
}

// UpdateDraftRow patches one row; absent patch fields are left alone.
func UpdateDraftRow(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	collection, _ := c.Locals("collection").(string)
	index, _ := c.Locals("rowIndex").(int)

	var snap drafts.Snapshot
	var err error
	switch collection {
	case "tools":
		var patch drafts.ToolPatch
		if err = c.BodyParser(&patch); err == nil {
			snap, err = drafts.Sessions.UpdateTool(draftID, index, patch)
		}
	case "schedule":
		var patch drafts.SessionPatch
		if err = c.BodyParser(&patch); err == nil {
			snap, err = drafts.Sessions.UpdateSession(draftID, index, patch)
		}
	case "instructors":
		var patch drafts.InstructorPatch
		if err = c.BodyParser(&patch); err == nil {
			snap, err = drafts.Sessions.UpdateInstructor(draftID, index, patch)
		}
	case "gallery":
		var patch drafts.GalleryPatch
		if err = c.BodyParser(&patch); err == nil {
			snap, err = drafts.Sessions.UpdateGalleryImage(draftID, index, patch)
		}
	}
	return draftRowResponse(c, snap, err)
}

// RemoveDraftRow deletes one row by index.
func RemoveDraftRow(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	collection, _ := c.Locals("collection").(string)
	index, _ := c.Locals("rowIndex").(int)

	var snap drafts.Snapshot
	var err error
	switch collection {
	case "tools":
		snap, err = drafts.Sessions.RemoveTool(draftID, index)
	case "schedule":
		snap, err = drafts.Sessions.RemoveSession(draftID, index)
	case "instructors":
		snap, err = drafts.Sessions.RemoveInstructor(draftID, index)
	case "gallery":
		snap, err = drafts.Sessions.RemoveGalleryImage(draftID, index)
	}
	return draftRowResponse(c, snap, err)
}

func draftRowResponse(c *fiber.Ctx, snap drafts.Snapshot, err error) error {
	if err != nil {
		if errors.Is(err, drafts.ErrDraftNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft updated!", snap)
}

// ResetDraft returns the draft to the blank create state.
func ResetDraft(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)

	snap, err := drafts.Sessions.Reset(draftID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft reset!", snap)
}

// SubmitDraft validates the draft, builds the record and persists it. The
// create flow blocks on the first failure; the edit flow reports every
// failure at once. The draft session is closed only after a successful save.
func SubmitDraft(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	publish, _ := c.Locals("publish").(*bool)

	snap, err := drafts.Sessions.Get(draftID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	}

	if publish != nil {
		if *publish {
			snap.Status = models.StatusPublished
		} else {
			snap.Status = models.StatusDraft
		}
	}

	editing := snap.CourseID != ""
	if errs := snap.Validate(editing); len(errs) > 0 {
		if editing {
			return middleware.ValidationErrorResponse(c, errs)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, errs[0], nil)
	}

	course := snap.BuildPayload(time.Now())

	if editing {
		if _, err := fetchCourse(course.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
			}
			log.Printf("Failed to fetch course %s: %v", course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
		}
		if err := database.Database.Db.Save(course).Error; err != nil {
			log.Printf("Failed to update course %s: %v", course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
		}
	} else {
		if err := database.Database.Db.Create(course).Error; err != nil {
			log.Printf("Failed to create course: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save course!", nil)
		}
	}

	drafts.Sessions.Discard(draftID)

	status := fiber.StatusOK
	message := "Course updated successfully!"
	if !editing {
		status = fiber.StatusCreated
		message = "Course created successfully!"
	}
	return middleware.JsonResponse(c, status, true, message, course)
}

// DiscardDraft closes the session without saving.
func DiscardDraft(c *fiber.Ctx) error {
	draftID, _ := c.Locals("draftID").(string)
	drafts.Sessions.Discard(draftID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded!", nil)
}
