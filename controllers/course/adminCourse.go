package controllers

import (
	"errors"
	"log"

	"shattak/database"
	"shattak/middleware"
	"shattak/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminListCourses returns every record for the admin table, published first,
// with the filter option lists derived from the full set so narrowing one
// filter never shrinks the dropdowns.
func AdminListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		log.Printf("Failed to fetch courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	courses = NormalizeCourses(courses)
	SortForAdmin(courses)

	categories := make([]string, 0, len(courses))
	statuses := make([]string, 0, len(courses))
	for i := range courses {
		categories = append(categories, courses[i].Categories.Primary())
		statuses = append(statuses, courses[i].Status)
	}

	category, _ := c.Locals("filterCategory").(string)
	status, _ := c.Locals("filterStatus").(string)
	query, _ := c.Locals("filterQuery").(string)
	filtered := FilterCourses(courses, category, status, query)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":         filtered,
		"total":           len(courses),
		"categoryOptions": uniqOptions(categories),
		"statusOptions":   uniqOptions(statuses),
	})
}

func fetchCourse(id string) (*models.Course, error) {
	var course models.Course
	err := database.Database.Db.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if course.Status == "" {
		course.Status = models.StatusDraft
	}
	return &course, nil
}

// AdminGetCourse returns one record in full, hidden reviews included.
func AdminGetCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(string)

	course, err := fetchCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Failed to fetch course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	hasDiscount, pct := Discount(course.Price, course.OriginalPrice)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":          course,
		"hasDiscount":     hasDiscount,
		"discountPercent": pct,
	})
}

// AdminCreateCourse persists a validated full payload directly, bypassing the
// draft flow. Timestamps are set here since no payload builder ran.
func AdminCreateCourse(c *fiber.Ctx) error {
	course, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := c.Context().Time().UnixMilli()
	if course.CreatedAt == 0 {
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	if err := database.Database.Db.Create(course).Error; err != nil {
		log.Printf("Failed to create course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse replaces the whole document. Last write wins; there is no
// field-level merge.
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(string)
	course, ok := c.Locals("validatedCourseUpdate").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, err := fetchCourse(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Failed to fetch course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	course.ID = existing.ID
	course.CreatedAt = existing.CreatedAt
	course.UpdatedAt = c.Context().Time().UnixMilli()

	if err := database.Database.Db.Save(course).Error; err != nil {
		log.Printf("Failed to update course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes the record permanently.
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID, _ := c.Locals("courseID").(string)

	result := database.Database.Db.Delete(&models.Course{}, "id = ?", courseID)
	if result.Error != nil {
		log.Printf("Failed to delete course %s: %v", courseID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
