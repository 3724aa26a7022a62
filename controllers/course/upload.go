package controllers

import (
	"log"
	"path/filepath"
	"strings"

	"shattak/config"
	"shattak/middleware"
	"shattak/utils"

	"github.com/gofiber/fiber/v2"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// AdminUploadImage stores an image from a multipart form and returns the URL
// to save on the course record.
func AdminUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unsupported image type!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Failed to save upload: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      utils.GetFileURL(filename),
	})
}
