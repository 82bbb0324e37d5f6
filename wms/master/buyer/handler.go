package buyer

import (
	"errors"

	"wms-api/middleware"
	"wms-api/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BuyerHandler struct {
	DB *gorm.DB
}

func NewBuyerHandler(db *gorm.DB) *BuyerHandler {
	return &BuyerHandler{DB: db}
}

type BuyerForm struct {
	BuyerCode string `json:"buyer_code" validate:"required"`
	BuyerName string `json:"buyer_name" validate:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Contact   string `json:"contact"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	IsActive  *bool  `json:"is_active"`
}

func (h *BuyerHandler) GetAllBuyers(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := h.DB.Model(&Buyer{})
	if params.Search != "" {
		pattern := utils.LikePattern(params.Search)
		query = query.Where("buyer_code LIKE ? OR buyer_name LIKE ? OR city LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buyers []Buyer
	if err := query.Order("buyer_code ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&buyers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Buyers retrieved successfully",
		"data": fiber.Map{
			"buyers":   buyers,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}

func (h *BuyerHandler) GetBuyerByCode(ctx *fiber.Ctx) error {
	var buyer Buyer
	if err := h.DB.First(&buyer, "buyer_code = ?", ctx.Params("buyer_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Buyer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    buyer,
	})
}

func (h *BuyerHandler) CreateBuyer(ctx *fiber.Ctx) error {
	var payload BuyerForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var existing Buyer
	if err := h.DB.First(&existing, "buyer_code = ?", payload.BuyerCode).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Buyer code already exists",
		})
	}

	buyer := Buyer{
		BuyerCode: payload.BuyerCode,
		BuyerName: payload.BuyerName,
		Address:   payload.Address,
		City:      payload.City,
		Country:   payload.Country,
		Contact:   payload.Contact,
		Phone:     payload.Phone,
		Email:     payload.Email,
		IsActive:  true,
		CreatedBy: session.UserID,
		UpdatedBy: session.UserID,
	}
	if payload.IsActive != nil {
		buyer.IsActive = *payload.IsActive
	}

	if err := h.DB.Create(&buyer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Buyer created successfully",
		"data":    buyer,
	})
}

func (h *BuyerHandler) UpdateBuyer(ctx *fiber.Ctx) error {
	var payload BuyerForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var buyer Buyer
	if err := h.DB.First(&buyer, "buyer_code = ?", ctx.Params("buyer_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Buyer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	buyer.BuyerName = payload.BuyerName
	buyer.Address = payload.Address
	buyer.City = payload.City
	buyer.Country = payload.Country
	buyer.Contact = payload.Contact
	buyer.Phone = payload.Phone
	buyer.Email = payload.Email
	if payload.IsActive != nil {
		buyer.IsActive = *payload.IsActive
	}
	buyer.UpdatedBy = session.UserID

	if err := h.DB.Save(&buyer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Buyer updated successfully",
		"data":    buyer,
	})
}

func (h *BuyerHandler) DeleteBuyer(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var buyer Buyer
	if err := h.DB.First(&buyer, "buyer_code = ?", ctx.Params("buyer_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Buyer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	buyer.DeletedBy = session.UserID
	h.DB.Save(&buyer)

	if err := h.DB.Delete(&buyer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Buyer deleted successfully",
	})
}
