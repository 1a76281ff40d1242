package migration

import (
	"strings"

	"restaurant_manager/helper"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// ProductSource đọc bảng products của app legacy.
type ProductSource interface {
	All() ([]model.LegacyProduct, error)
}

// CatalogSink ghi category + product canonical.
type CatalogSink interface {
	ProductExists(name string) (bool, error)
	EnsureCategory(name string) (uint, error)
	Slug(name string) string
	Create(p *model.Product) error
}

type gormProductSource struct{ db *gorm.DB }

func (s gormProductSource) All() ([]model.LegacyProduct, error) {
	var products []model.LegacyProduct
	err := s.db.Find(&products).Error
	return products, err
}

type gormCatalogSink struct{ db *gorm.DB }

func (s gormCatalogSink) ProductExists(name string) (bool, error) {
	var n int64
	err := s.db.Model(&model.Product{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&n).Error
	return n > 0, err
}

func (s gormCatalogSink) EnsureCategory(name string) (uint, error) {
	var category model.Category
	err := s.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		category = model.Category{Name: name, IsActive: true}
		err = s.db.Create(&category).Error
	}
	return category.ID, err
}

func (s gormCatalogSink) Slug(name string) string {
	return helper.GenerateUniqueProductSlug(s.db, name)
}

func (s gormCatalogSink) Create(p *model.Product) error {
	return s.db.Create(p).Error
}

func MigrateProducts(db, legacy *gorm.DB) Report {
	return ImportProducts(gormCatalogSink{db}, gormProductSource{legacy})
}

// ImportProducts nhập món từ hệ cũ. Category bên cũ là chuỗi tự do:
// match không phân biệt hoa thường, chưa có thì tạo mới.
func ImportProducts(dst CatalogSink, src ProductSource) Report {
	var report Report

	products, err := src.All()
	if err != nil {
		logger.Error("migrate products: read legacy failed", "err", err)
		report.Errors++
		return report
	}

	for _, p := range products {
		report.Scanned++

		if p.Name == "" {
			report.Skipped++
			continue
		}

		exists, err := dst.ProductExists(p.Name)
		if err != nil {
			logger.Error("migrate products: lookup failed", "productId", p.ID, "err", err)
			report.Errors++
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		categoryName := strings.TrimSpace(p.Category)
		if categoryName == "" {
			categoryName = "Khác"
		}
		categoryID, err := dst.EnsureCategory(categoryName)
		if err != nil {
			logger.Error("migrate products: category failed", "productId", p.ID, "err", err)
			report.Errors++
			continue
		}

		product := model.Product{
			CategoryID:  categoryID,
			Name:        p.Name,
			Slug:        dst.Slug(p.Name),
			Description: p.Description,
			Price:       p.Price,
			ImageUrl:    p.Image,
			IsActive:    true,
			IsFeatured:  p.IsBestSeller,
		}
		if err := dst.Create(&product); err != nil {
			logger.Error("migrate products: create failed", "productId", p.ID, "err", err)
			report.Errors++
			continue
		}
		report.Created++
	}

	logger.Info("migrate products done",
		"scanned", report.Scanned, "created", report.Created,
		"skipped", report.Skipped, "errors", report.Errors)
	return report
}
