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

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

type ProductForm struct {
	PartNo      string  `json:"part_no" validate:"required"`
	Description string  `json:"description" validate:"required"`
	SKU         string  `json:"sku"`
	Barcode     string  `json:"barcode"`
	Uom         string  `json:"uom" validate:"required"`
	Group       string  `json:"group"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight"`
	IsActive    *bool   `json:"is_active"`
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	query := c.DB.Model(&models.Product{})
	if params.Search != "" {
		pattern := utils.LikePattern(params.Search)
		query = query.Where("part_no LIKE ? OR description LIKE ? OR sku LIKE ? OR barcode LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var products []models.Product
	if err := query.Order("part_no ASC").
		Limit(params.PerPage).Offset(params.Offset()).
		Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Products found",
		"data": fiber.Map{
			"products": products,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}

func (c *ProductController) GetProductByPartNo(ctx *fiber.Ctx) error {
	var product models.Product
	if err := c.DB.First(&product, "part_no = ?", ctx.Params("part_no")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Product found",
		"data":    product,
	})
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var payload ProductForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var uom models.Uom
	if err := c.DB.First(&uom, "code = ?", payload.Uom).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "UOM not found",
		})
	}

	var existing models.Product
	if err := c.DB.First(&existing, "part_no = ?", payload.PartNo).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Part no already exists",
		})
	}

	product := models.Product{
		PartNo:      payload.PartNo,
		Description: payload.Description,
		SKU:         payload.SKU,
		Barcode:     payload.Barcode,
		Uom:         uom.Code,
		Group:       payload.Group,
		Category:    payload.Category,
		Weight:      payload.Weight,
		IsActive:    true,
		CreatedBy:   session.UserID,
		UpdatedBy:   session.UserID,
	}
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}

	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	var payload ProductForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := middleware.SessionFrom(ctx)

	var product models.Product
	if err := c.DB.First(&product, "part_no = ?", ctx.Params("part_no")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var uom models.Uom
	if err := c.DB.First(&uom, "code = ?", payload.Uom).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "UOM not found",
		})
	}

	product.Description = payload.Description
	product.SKU = payload.SKU
	product.Barcode = payload.Barcode
	product.Uom = uom.Code
	product.Group = payload.Group
	product.Category = payload.Category
	product.Weight = payload.Weight
	if payload.IsActive != nil {
		product.IsActive = *payload.IsActive
	}
	product.UpdatedBy = session.UserID

	if err := c.DB.Save(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	session := middleware.SessionFrom(ctx)

	var product models.Product
	if err := c.DB.First(&product, "part_no = ?", ctx.Params("part_no")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	product.DeletedBy = session.UserID
	c.DB.Save(&product)

	if err := c.DB.Delete(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

type ProductUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateProductFromExcel bulk-loads the product master. Existing part
// numbers are skipped, bad rows are reported per row and good rows are
// still committed.
func (c *ProductController) CreateProductFromExcel(ctx *fiber.Ctx) error {
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

	result := ProductUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	session := middleware.SessionFrom(ctx)
	uomCache := make(map[string]bool)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Columns: part no, description, sku, barcode, uom
	for i, row := range rows[1:] {
		rowNum := i + 2

		partNo := strings.ToUpper(strings.TrimSpace(utils.GetCell(row, 0)))
		if partNo == "" {
			continue
		}
		description := strings.TrimSpace(utils.GetCell(row, 1))
		sku := strings.TrimSpace(utils.GetCell(row, 2))
		barcode := strings.TrimSpace(utils.GetCell(row, 3))
		uomCode := strings.ToUpper(strings.TrimSpace(utils.GetCell(row, 4)))

		if description == "" || uomCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: DESCRIPTION and UOM are required", rowNum))
			continue
		}

		if _, exists := uomCache[uomCode]; !exists {
			var uom models.Uom
			if err := tx.Where("code = ?", uomCode).First(&uom).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: UOM '%s' not found", rowNum, uomCode))
				continue
			}
			uomCache[uomCode] = true
		}

		var existing models.Product
		if err := tx.Where("part_no = ?", partNo).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, partNo)
			continue
		}

		product := models.Product{
			PartNo:      partNo,
			Description: description,
			SKU:         sku,
			Barcode:     barcode,
			Uom:         uomCode,
			IsActive:    true,
			CreatedBy:   session.UserID,
		}

		if err := tx.Create(&product).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create product - %s", rowNum, err.Error()))
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
