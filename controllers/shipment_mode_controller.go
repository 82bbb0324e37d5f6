package controllers

import (
	"errors"

	"wms-api/middleware"
	"wms-api/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ShipmentModeController struct {
	DB *gorm.DB
}

func NewShipmentModeController(db *gorm.DB) *ShipmentModeController {
	return &ShipmentModeController{DB: db}
}

type ShipmentModeForm struct {
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

func (c *ShipmentModeController) GetAllShipmentModes(ctx *fiber.Ctx) error {
	var modes []models.ShipmentMode
	if err := c.DB.Order("code ASC").Find(&modes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Shipment modes found",
		"data":    modes,
	})
}

func (c *ShipmentModeController) CreateShipmentMode(ctx *fiber.Ctx) error {
	var payload ShipmentModeForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var existing models.ShipmentMode
	if err := c.DB.First(&existing, "code = ?", payload.Code).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Shipment mode code already exists",
		})
	}

	mode := models.ShipmentMode{
		Code:        payload.Code,
		Description: payload.Description,
		CreatedBy:   session.UserID,
		UpdatedBy:   session.UserID,
	}

	if err := c.DB.Create(&mode).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Shipment mode created successfully",
		"data":    mode,
	})
}

func (c *ShipmentModeController) UpdateShipmentMode(ctx *fiber.Ctx) error {
	var payload ShipmentModeForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var mode models.ShipmentMode
	if err := c.DB.First(&mode, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipment mode not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	mode.Description = payload.Description
	mode.UpdatedBy = session.UserID

	if err := c.DB.Save(&mode).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Shipment mode updated successfully",
		"data":    mode,
	})
}

func (c *ShipmentModeController) DeleteShipmentMode(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var mode models.ShipmentMode
	if err := c.DB.First(&mode, "code = ?", ctx.Params("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shipment mode not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	mode.DeletedBy = session.UserID
	c.DB.Save(&mode)

	if err := c.DB.Delete(&mode).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Shipment mode deleted successfully",
	})
}
