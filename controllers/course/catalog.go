package controllers

import (
	"errors"
	"log"
	"strings"

	"shattak/database"
	"shattak/middleware"
	"shattak/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListCatalog is the public catalog: published records only, in stored order,
// with an optional free-text search.
func ListCatalog(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("status = ?", models.StatusPublished).
		Order("created_at asc").
		Find(&courses).Error
	if err != nil {
		log.Printf("Failed to fetch catalog: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	if term := c.Query("q"); strings.TrimSpace(term) != "" {
		courses = FilterCourses(courses, "All", "All", term)
	}

	cards := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		cards = append(cards, catalogCard(&courses[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": cards,
		"total":   len(cards),
	})
}

// catalogCard is the trimmed card shape the catalog grid renders.
func catalogCard(course *models.Course) fiber.Map {
	hasDiscount, pct := Discount(course.Price, course.OriginalPrice)
	return fiber.Map{
		"id":              course.ID,
		"title":           course.Title,
		"subtitle":        course.Subtitle,
		"categories":      course.Categories,
		"mode":            course.Mode,
		"level":           course.Level,
		"thumbnailImage":  course.ThumbnailImage,
		"price":           course.Price,
		"originalPrice":   course.OriginalPrice,
		"hasDiscount":     hasDiscount,
		"discountPercent": pct,
		"rating":          course.Rating,
		"enrollmentCount": course.EnrollmentCount,
		"durationHours":   course.DurationHours,
		"durationMinutes": course.DurationMinutes,
	}
}

// GetCatalogCourse is the public detail view. Unpublished records are not
// found, and reviews hidden by the admin never leave the server.
func GetCatalogCourse(c *fiber.Ctx) error {
	courseID := strings.TrimSpace(c.Params("id"))
	if courseID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	var course models.Course
	err := database.Database.Db.
		First(&course, "id = ? AND status = ?", courseID, models.StatusPublished).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Failed to fetch course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	visible := make([]models.Review, 0, len(course.Reviews))
	for _, r := range course.Reviews {
		if r.Visible() {
			visible = append(visible, r)
		}
	}
	course.Reviews = visible

	hasDiscount, pct := Discount(course.Price, course.OriginalPrice)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":          course,
		"hasDiscount":     hasDiscount,
		"discountPercent": pct,
	})
}
