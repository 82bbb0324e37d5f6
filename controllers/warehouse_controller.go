package controllers

import (
	"errors"

	"wms-api/middleware"
	"wms-api/models"
	"wms-api/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(db *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: db}
}

type WarehouseForm struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	City     string `json:"city"`
	IsActive *bool  `json:"is_active"`
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := c.DB.Model(&models.Warehouse{})
	if params.Search != "" {
		pattern := utils.LikePattern(params.Search)
		query = query.Where("code LIKE ? OR name LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var warehouses []models.Warehouse
	if err := query.Order("code ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&warehouses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Warehouses found",
		"data": fiber.Map{
			"warehouses": warehouses,
			"total":      total,
			"page":       params.Page,
			"per_page":   params.PerPage,
		},
	})
}

func (c *WarehouseController) GetWarehouseByCode(ctx *fiber.Ctx) error {
	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Warehouse found",
		"data":    warehouse,
	})
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var payload WarehouseForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var existing models.Warehouse
	if err := c.DB.First(&existing, "code = ?", payload.Code).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Warehouse code already exists",
		})
	}

	warehouse := models.Warehouse{
		Code:      payload.Code,
		Name:      payload.Name,
		Address:   payload.Address,
		City:      payload.City,
		IsActive:  true,
		CreatedBy: session.UserID,
		UpdatedBy: session.UserID,
	}
	if payload.IsActive != nil {
		warehouse.IsActive = *payload.IsActive
	}

	if err := c.DB.Create(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse created successfully",
		"data":    warehouse,
	})
}

func (c *WarehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	var payload WarehouseForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	warehouse.Name = payload.Name
	warehouse.Address = payload.Address
	warehouse.City = payload.City
	if payload.IsActive != nil {
		warehouse.IsActive = *payload.IsActive
	}
	warehouse.UpdatedBy = session.UserID

	if err := c.DB.Save(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Warehouse updated successfully",
		"data":    warehouse,
	})
}

// DeleteWarehouse refuses when locations still reference the code; a
// warehouse with storage history is deactivated instead of removed.
func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var locations int64
	c.DB.Model(&models.Location{}).Where("whs_code = ?", warehouse.Code).Count(&locations)
	if locations > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Warehouse has locations and cannot be deleted",
		})
	}

	warehouse.DeletedBy = session.UserID
	c.DB.Save(&warehouse)

	if err := c.DB.Delete(&warehouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Warehouse deleted successfully",
	})
}
