package controllers

import (
	"log"
	"sort"
	"strings"

	"shattak/database"
	"shattak/middleware"
	"shattak/models"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboard aggregates the overview numbers: counts by status, total
// enrollments, revenue, the top rated course and the five most recent records.
func AdminDashboard(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		log.Printf("Failed to fetch courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}
	courses = NormalizeCourses(courses)

	published := 0
	var totalEnrollments int64
	var revenue float64
	var top *models.Course
	for i := range courses {
		course := &courses[i]
		if strings.EqualFold(course.Status, models.StatusPublished) {
			published++
		}
		totalEnrollments += course.EnrollmentCount
		revenue += course.Price * float64(course.EnrollmentCount)

		if top == nil ||
			course.Rating > top.Rating ||
			(course.Rating == top.Rating && course.EnrollmentCount > top.EnrollmentCount) {
			top = course
		}
	}

	recent := append([]models.Course{}, courses...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	stats := fiber.Map{
		"totalCourses":     len(courses),
		"published":        published,
		"drafts":           len(courses) - published,
		"totalEnrollments": totalEnrollments,
		"revenue":          revenue,
		"recentCourses":    recent,
	}
	if top != nil {
		stats["topCourse"] = fiber.Map{
			"id":              top.ID,
			"title":           top.Title,
			"rating":          top.Rating,
			"enrollmentCount": top.EnrollmentCount,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
