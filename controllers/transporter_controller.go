package controllers

import (
	"errors"

	"wms-api/middleware"
	"wms-api/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransporterController struct {
	DB *gorm.DB
}

func NewTransporterController(db *gorm.DB) *TransporterController {
	return &TransporterController{DB: db}
}

type TransporterForm struct {
	TransporterCode string `json:"transporter_code" validate:"required"`
	TransporterName string `json:"transporter_name" validate:"required"`
	Phone           string `json:"phone"`
}

func (c *TransporterController) GetAllTransporters(ctx *fiber.Ctx) error {
	var transporters []models.Transporter
	if err := c.DB.Order("transporter_code ASC").Find(&transporters).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Transporters found",
		"data":    transporters,
	})
}

func (c *TransporterController) CreateTransporter(ctx *fiber.Ctx) error {
	var payload TransporterForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	transporter := models.Transporter{
		TransporterCode: payload.TransporterCode,
		TransporterName: payload.TransporterName,
		Phone:           payload.Phone,
		CreatedBy:       session.UserID,
		UpdatedBy:       session.UserID,
	}

	if err := c.DB.Create(&transporter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Transporter created successfully",
		"data":    transporter,
	})
}

func (c *TransporterController) UpdateTransporter(ctx *fiber.Ctx) error {
	var payload TransporterForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var transporter models.Transporter
	if err := c.DB.First(&transporter, "transporter_code = ?", ctx.Params("transporter_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transporter not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	transporter.TransporterName = payload.TransporterName
	transporter.Phone = payload.Phone
	transporter.UpdatedBy = session.UserID

	if err := c.DB.Save(&transporter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Transporter updated successfully",
		"data":    transporter,
	})
}

func (c *TransporterController) DeleteTransporter(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var transporter models.Transporter
	if err := c.DB.First(&transporter, "transporter_code = ?", ctx.Params("transporter_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transporter not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	transporter.DeletedBy = session.UserID
	c.DB.Save(&transporter)

	if err := c.DB.Delete(&transporter).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Transporter deleted successfully",
	})
}
