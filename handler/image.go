package handler

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// UploadImage upload ảnh món/banner lên Cloudinary từ phía server.
// Admin UI cũng có thể upload trực tiếp bằng chữ ký từ GenerateSignature.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu file upload", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chỉ hỗ trợ JPG, PNG, WEBP", nil)
	}
	if file.Size > 5*1024*1024 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "File vượt quá 5MB", nil)
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể mở file", err)
	}
	defer f.Close()

	folder := c.Query("folder", "restaurant/products")
	publicID := fmt.Sprintf("img_%d", time.Now().UnixNano())

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cloudinary chưa được cấu hình", err)
	}
	uploadResult, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Upload Cloudinary thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      uploadResult.SecureURL,
		"publicId": uploadResult.PublicID,
	})
}

// DeleteImage xoá ảnh trên Cloudinary theo public_id (khi gỡ món/banner).
func DeleteImage(c *fiber.Ctx) error {
	publicID := c.Query("publicId")
	if publicID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu publicId", nil)
	}

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cloudinary chưa được cấu hình", err)
	}
	if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Xoá Cloudinary thất bại", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": publicID})
}
