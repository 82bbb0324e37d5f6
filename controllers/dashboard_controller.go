package controllers

import (
	"wms-api/models"
	"wms-api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController returns document counts per status for the landing
// page widgets.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (c *DashboardController) statusCounts(model interface{}) fiber.Map {
	counts := fiber.Map{}
	for _, status := range []string{"draft", "open", "complete"} {
		var n int64
		c.DB.Model(model).Where("status = ?", status).Count(&n)
		counts[status] = n
	}
	return counts
}

func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"gate_pass":    c.statusCounts(&models.GatePassHeader{}),
			"grn":          c.statusCounts(&models.GrnHeader{}),
			"putaway":      c.statusCounts(&models.PutawayHeader{}),
			"buyer_order":  c.statusCounts(&models.BuyerOrderHeader{}),
			"multi_order":  c.statusCounts(&models.MultiOrderHeader{}),
			"reverse_pick": c.statusCounts(&models.ReversePickHeader{}),
		},
	})
}

// GetTransactionHistory lists the audit trail of one document.
func (c *DashboardController) GetTransactionHistory(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := c.DB.Model(&models.TransactionHistory{})
	if refNo := ctx.Query("ref_no"); refNo != "" {
		query = query.Where("ref_no = ?", refNo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var history []models.TransactionHistory
	if err := query.Order("created_at DESC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&history).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"history":  history,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}
