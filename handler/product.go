package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const menuCacheKey = "menu:products"

// InvalidateMenuCache xoá cache menu mỗi khi món/danh mục thay đổi.
func InvalidateMenuCache() {
	if err := redisClient.Del(context.Background(), menuCacheKey).Err(); err != nil {
		// cache miss kế tiếp sẽ tự build lại, chỉ cần log
		_ = err
	}
}

// GetMenu — danh sách món đang bán cho UI public, cache Redis 5 phút.
func GetMenu(c *fiber.Ctx) error {
	ctx := context.Background()

	if cached, err := redisClient.Get(ctx, menuCacheKey).Result(); err == nil {
		c.Set("X-Cache", "HIT")
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var products []model.Product
	if err := database.DB.
		Preload("Category").
		Where("is_active = ?", true).
		Order("is_featured desc, name asc").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	payload, err := json.Marshal(fiber.Map{"status": "success", "data": products})
	if err == nil {
		redisClient.Set(ctx, menuCacheKey, payload, 5*time.Minute)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	categoryId := c.Query("categoryId")
	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)

	query := database.DB.Model(&model.Product{}).Preload("Category")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
	}

	var totalCount int64
	query.Count(&totalCount)

	var products []model.Product
	if limit > 0 && page > 0 {
		query = utils.ApplyPagination(query, &limit, &page)
	}
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func CreateProduct(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing product input"))
	}

	var category model.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
	}

	product := model.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        helper.GenerateUniqueProductSlug(database.DB, input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageUrl:    input.ImageUrl,
		IsActive:    true,
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	InvalidateMenuCache()
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var product model.Product
	if err := database.DB.First(&product, uint(id)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	input, ok := c.Locals("input").(*model.UpdateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing product input"))
	}

	if input.CategoryID != nil {
		var category model.Category
		if err := database.DB.First(&category, *input.CategoryID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category not found", err)
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != "" && input.Name != product.Name {
		product.Name = input.Name
		product.Slug = helper.GenerateUniqueProductSlug(database.DB, input.Name)
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageUrl != nil {
		product.ImageUrl = *input.ImageUrl
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	InvalidateMenuCache()
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func ToggleProductActive(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var product model.Product
	if err := database.DB.First(&product, uint(id)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}

	product.IsActive = !product.IsActive
	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	InvalidateMenuCache()
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// DeleteProducts xoá hàng loạt theo mảng id.
func DeleteProducts(c *fiber.Ctx) error {
	ids, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing delete ids"))
	}

	if err := database.DB.Delete(&model.Product{}, ids.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	InvalidateMenuCache()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": ids.IDs})
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("productId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := database.DB.Delete(&model.Product{}, uint(id)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	InvalidateMenuCache()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
