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

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

type SupplierForm struct {
	SupplierCode string `json:"supplier_code" validate:"required"`
	SupplierName string `json:"supplier_name" validate:"required"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	IsActive     *bool  `json:"is_active"`
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := c.DB.Model(&models.Supplier{})
	if params.Search != "" {
		pattern := utils.LikePattern(params.Search)
		query = query.Where("supplier_code LIKE ? OR supplier_name LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var suppliers []models.Supplier
	if err := query.Order("supplier_code ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&suppliers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Suppliers found",
		"data": fiber.Map{
			"suppliers": suppliers,
			"total":     total,
			"page":      params.Page,
			"per_page":  params.PerPage,
		},
	})
}

func (c *SupplierController) GetSupplierByCode(ctx *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", ctx.Params("supplier_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Supplier found",
		"data":    supplier,
	})
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var payload SupplierForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var existing models.Supplier
	if err := c.DB.First(&existing, "supplier_code = ?", payload.SupplierCode).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Supplier code already exists",
		})
	}

	supplier := models.Supplier{
		SupplierCode: payload.SupplierCode,
		SupplierName: payload.SupplierName,
		Address:      payload.Address,
		City:         payload.City,
		Phone:        payload.Phone,
		Email:        payload.Email,
		IsActive:     true,
		CreatedBy:    session.UserID,
		UpdatedBy:    session.UserID,
	}
	if payload.IsActive != nil {
		supplier.IsActive = *payload.IsActive
	}

	if err := c.DB.Create(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Supplier created successfully",
		"data":    supplier,
	})
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	var payload SupplierForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", ctx.Params("supplier_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.SupplierName = payload.SupplierName
	supplier.Address = payload.Address
	supplier.City = payload.City
	supplier.Phone = payload.Phone
	supplier.Email = payload.Email
	if payload.IsActive != nil {
		supplier.IsActive = *payload.IsActive
	}
	supplier.UpdatedBy = session.UserID

	if err := c.DB.Save(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Supplier updated successfully",
		"data":    supplier,
	})
}

func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", ctx.Params("supplier_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	supplier.DeletedBy = session.UserID
	if err := c.DB.Select("deleted_by").Where("id = ?", supplier.ID).Updates(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&supplier).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Supplier deleted successfully",
	})
}
