package controllers

import (
	"errors"

	"wms-api/middleware"
	"wms-api/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TruckController struct {
	DB *gorm.DB
}

func NewTruckController(db *gorm.DB) *TruckController {
	return &TruckController{DB: db}
}

type TruckForm struct {
	TruckNo   string `json:"truck_no" validate:"required"`
	TruckSize string `json:"truck_size"`
}

func (c *TruckController) GetAllTrucks(ctx *fiber.Ctx) error {
	var trucks []models.Truck
	if err := c.DB.Order("truck_no ASC").Find(&trucks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Trucks found",
		"data":    trucks,
	})
}

func (c *TruckController) CreateTruck(ctx *fiber.Ctx) error {
	var payload TruckForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	truck := models.Truck{
		TruckNo:   payload.TruckNo,
		TruckSize: payload.TruckSize,
		CreatedBy: session.UserID,
		UpdatedBy: session.UserID,
	}

	if err := c.DB.Create(&truck).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Truck created successfully",
		"data":    truck,
	})
}

func (c *TruckController) DeleteTruck(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var truck models.Truck
	if err := c.DB.First(&truck, "truck_no = ?", ctx.Params("truck_no")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Truck not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	truck.DeletedBy = session.UserID
	c.DB.Save(&truck)

	if err := c.DB.Delete(&truck).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Truck deleted successfully",
	})
}
