package controllers

import (
	"fmt"

	"wms-api/repositories"
	"wms-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// InventoryController exposes the on-hand stock summary rolled up from
// the movement ledger.
type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

func (c *InventoryController) GetStockSummary(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewInventoryRepository(c.DB)
	summary, err := repo.GetStockSummary(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Stock summary found",
		"data":    summary,
	})
}

func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewInventoryRepository(c.DB)
	summary, err := repo.GetStockSummary(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Whs Code")
	f.SetCellValue(sheet, "B1", "Location")
	f.SetCellValue(sheet, "C1", "Part No")
	f.SetCellValue(sheet, "D1", "Batch No")
	f.SetCellValue(sheet, "E1", "UOM")
	f.SetCellValue(sheet, "F1", "Quantity")

	for i, s := range summary {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.WhsCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.Location)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.PartNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.BatchNo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.Uom)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.Quantity)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
