package controllers

import (
	"errors"

	"wms-api/middleware"
	"wms-api/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UomController struct {
	DB *gorm.DB
}

func NewUomController(db *gorm.DB) *UomController {
	return &UomController{DB: db}
}

type UomForm struct {
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

func (c *UomController) GetAllUoms(ctx *fiber.Ctx) error {
	var uoms []models.Uom
	if err := c.DB.Order("code ASC").Find(&uoms).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "UOMs found",
		"data":    uoms,
	})
}

func (c *UomController) CreateUom(ctx *fiber.Ctx) error {
	var payload UomForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var existing models.Uom
	if err := c.DB.First(&existing, "code = ?", payload.Code).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "UOM code already exists",
		})
	}

	uom := models.Uom{
		Code:        payload.Code,
		Description: payload.Description,
		CreatedBy:   session.UserID,
		UpdatedBy:   session.UserID,
	}

	if err := c.DB.Create(&uom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "UOM created successfully",
		"data":    uom,
	})
}

func (c *UomController) UpdateUom(ctx *fiber.Ctx) error {
	var payload UomForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var uom models.Uom
	if err := c.DB.First(&uom, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "UOM not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	uom.Description = payload.Description
	uom.UpdatedBy = session.UserID

	if err := c.DB.Save(&uom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "UOM updated successfully",
		"data":    uom,
	})
}

func (c *UomController) DeleteUom(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var uom models.Uom
	if err := c.DB.First(&uom, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "UOM not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var used int64
	c.DB.Model(&models.Product{}).Where("uom = ?", uom.Code).Count(&used)
	if used > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "UOM is used by products and cannot be deleted",
		})
	}

	uom.DeletedBy = session.UserID
	c.DB.Save(&uom)

	if err := c.DB.Delete(&uom).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "UOM deleted successfully",
	})
}
