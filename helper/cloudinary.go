package helper

import (
	"restaurant_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// InitCloudinary dựng client upload từ env. Thiếu config thì trả lỗi để
// handler báo 500, không chết cả tiến trình.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}
