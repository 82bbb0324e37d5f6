package controllers

import (
	"errors"
	"fmt"
	"strings"

	"wms-api/middleware"
	"wms-api/models"
	"wms-api/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// LocationController serves the warehouse location master. A location
// code identifies a physical slot (row, bay, level, bin) inside one
// warehouse; putaway and reverse pick lines must reference an active
// location.
type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

type LocationForm struct {
	LocationCode string `json:"location_code" validate:"required"`
	WhsCode      string `json:"whs_code" validate:"required"`
	Row          string `json:"row"`
	Bay          string `json:"bay"`
	Level        string `json:"level"`
	Bin          string `json:"bin"`
	Area         string `json:"area"`
	IsActive     *bool  `json:"is_active"`
}

func (c *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := c.DB.Model(&models.Location{})
	if whsCode := ctx.Query("whs_code"); whsCode != "" {
		query = query.Where("whs_code = ?", whsCode)
	}
	if params.Search != "" {
		pattern := utils.LikePattern(params.Search)
		query = query.Where("location_code LIKE ? OR area LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var locations []models.Location
	if err := query.Order("location_code ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Locations found",
		"data": fiber.Map{
			"locations": locations,
			"total":     total,
			"page":      params.Page,
			"per_page":  params.PerPage,
		},
	})
}

func (c *LocationController) GetLocationByCode(ctx *fiber.Ctx) error {
	var location models.Location
	if err := c.DB.First(&location, "location_code = ?", ctx.Params("location_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Location found",
		"data":    location,
	})
}

func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var payload LocationForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, "code = ?", payload.WhsCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Warehouse not found",
		})
	}

	var existing models.Location
	if err := c.DB.First(&existing, "location_code = ?", payload.LocationCode).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Location code already exists",
		})
	}

	location := models.Location{
		LocationCode: payload.LocationCode,
		WhsCode:      warehouse.Code,
		Row:          payload.Row,
		Bay:          payload.Bay,
		Level:        payload.Level,
		Bin:          payload.Bin,
		Area:         payload.Area,
		IsActive:     true,
		CreatedBy:    session.UserID,
		UpdatedBy:    session.UserID,
	}
	if payload.IsActive != nil {
		location.IsActive = *payload.IsActive
	}

	if err := c.DB.Create(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Location created successfully",
		"data":    location,
	})
}

func (c *LocationController) UpdateLocation(ctx *fiber.Ctx) error {
	var payload LocationForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var location models.Location
	if err := c.DB.First(&location, "location_code = ?", ctx.Params("location_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var warehouse models.Warehouse
	if err := c.DB.First(&warehouse, "code = ?", payload.WhsCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Warehouse not found",
		})
	}

	location.WhsCode = warehouse.Code
	location.Row = payload.Row
	location.Bay = payload.Bay
	location.Level = payload.Level
	location.Bin = payload.Bin
	location.Area = payload.Area
	if payload.IsActive != nil {
		location.IsActive = *payload.IsActive
	}
	location.UpdatedBy = session.UserID

	if err := c.DB.Save(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Location updated successfully",
		"data":    location,
	})
}

// DeleteLocation refuses when the location still holds stock.
func (c *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var location models.Location
	if err := c.DB.First(&location, "location_code = ?", ctx.Params("location_code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var onHand int64
	c.DB.Model(&models.Inventory{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("location = ?", location.LocationCode).
		Scan(&onHand)
	if onHand != 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Location holds stock and cannot be deleted",
		})
	}

	location.DeletedBy = session.UserID
	c.DB.Save(&location)

	if err := c.DB.Delete(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Location deleted successfully",
	})
}

type LocationUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateLocationFromExcel bulk-loads the location master. Duplicate
// codes are skipped and every bad row is reported with its row number.
func (c *LocationController) CreateLocationFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := LocationUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	session := middleware.SessionFrom(ctx)
	whsCache := make(map[string]bool)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Columns: location code, whs code, row, bay, level, bin, area
	for i, row := range rows[1:] {
		rowNum := i + 2

		locationCode := strings.ToUpper(strings.TrimSpace(utils.GetCell(row, 0)))
		if locationCode == "" {
			continue
		}
		whsCode := strings.ToUpper(strings.TrimSpace(utils.GetCell(row, 1)))

		if whsCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: WHS_CODE is required", rowNum))
			continue
		}

		if _, exists := whsCache[whsCode]; !exists {
			var warehouse models.Warehouse
			if err := tx.Where("code = ?", whsCode).First(&warehouse).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Warehouse '%s' not found", rowNum, whsCode))
				continue
			}
			whsCache[whsCode] = true
		}

		var existing models.Location
		if err := tx.Where("location_code = ?", locationCode).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, locationCode)
			continue
		}

		location := models.Location{
			LocationCode: locationCode,
			WhsCode:      whsCode,
			Row:          strings.TrimSpace(utils.GetCell(row, 2)),
			Bay:          strings.TrimSpace(utils.GetCell(row, 3)),
			Level:        strings.TrimSpace(utils.GetCell(row, 4)),
			Bin:          strings.TrimSpace(utils.GetCell(row, 5)),
			Area:         strings.TrimSpace(utils.GetCell(row, 6)),
			IsActive:     true,
			CreatedBy:    session.UserID,
		}

		if err := tx.Create(&location).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create location - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}

func (c *LocationController) ExportExcel(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Location{})
	if whsCode := ctx.Query("whs_code"); whsCode != "" {
		query = query.Where("whs_code = ?", whsCode)
	}

	var locations []models.Location
	if err := query.Order("location_code ASC").Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Location Code")
	f.SetCellValue(sheet, "B1", "Whs Code")
	f.SetCellValue(sheet, "C1", "Row")
	f.SetCellValue(sheet, "D1", "Bay")
	f.SetCellValue(sheet, "E1", "Level")
	f.SetCellValue(sheet, "F1", "Bin")
	f.SetCellValue(sheet, "G1", "Area")
	f.SetCellValue(sheet, "H1", "Active")

	for i, location := range locations {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), location.LocationCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), location.WhsCode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), location.Row)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), location.Bay)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), location.Level)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), location.Bin)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), location.Area)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), location.IsActive)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="locations.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
