package controllers

import (
	"errors"
	"fmt"

	"wms-api/controllers/helpers"
	"wms-api/lineitem"
	"wms-api/middleware"
	"wms-api/models"
	"wms-api/repositories"
	"wms-api/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// PutawayController serves the putaway screen. A putaway starts from a
// completed GRN: the GRN's net quantities become the received quantities
// to be put away, and the operator assigns bin sizes and locations.
// Completing a putaway is what actually creates stock on hand.
type PutawayController struct {
	DB *gorm.DB
}

func NewPutawayController(DB *gorm.DB) *PutawayController {
	return &PutawayController{DB: DB}
}

type PutawayForm struct {
	PutawayDate string     `json:"putaway_date" validate:"required"`
	GrnNo       string     `json:"grn_no" validate:"required"`
	Remarks     string     `json:"remarks_header"`
	Items       []FormItem `json:"items" validate:"required,min=1,dive"`
}

// putawayCarry maps the GRN's net quantity onto the putaway's received
// quantity. Bin qty and location are left for the operator.
var putawayCarry = map[lineitem.Role]lineitem.Role{
	lineitem.RoleNet: lineitem.RoleReceived,
}

func (c *PutawayController) ResolveFromGrn(ctx *fiber.Ctx) error {
	grnNo := ctx.Params("grn_no")

	repo := repositories.NewGrnRepository(c.DB)
	grn, err := repo.GetGrnByNo(grnNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "GRN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("putaway")
	resolution := lineitem.ResolveFromParent(mapping, putawayCarry, grnParent(grn))

	rows := make([]fiber.Map, 0, len(resolution.Items))
	for _, item := range resolution.Items {
		rows = append(rows, wireRow(mapping, item))
	}

	warning := ""
	if len(rows) == 0 {
		warning = "GRN has no detail lines"
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"header": resolution.Header,
			"items":  rows,
		},
		"message": warning,
	})
}

func grnParent(grn *models.GrnHeader) lineitem.ParentRecord {
	parent := lineitem.ParentRecord{
		Header: map[string]string{
			"grn_no":   grn.GrnNo,
			"supplier": grn.Supplier,
		},
	}
	for _, d := range grn.Details {
		parent.Rows = append(parent.Rows, lineitem.ParentRow{
			PartNo:      d.PartNo,
			Description: d.Description,
			SKU:         d.SKU,
			BatchNo:     d.BatchNo,
			Qty: map[lineitem.Role]float64{
				lineitem.RoleNet: float64(d.GrnQty),
			},
		})
	}
	return parent
}

func (c *PutawayController) buildPutawayDetails(tx *gorm.DB, m lineitem.Mapping, items []FormItem) ([]models.PutawayDetail, lineitem.Totals, error) {
	store := buildLineStore(m, items)

	details := make([]models.PutawayDetail, 0, store.Len())
	for _, item := range store.Items() {
		var product models.Product
		if err := tx.First(&product, "part_no = ?", item.PartNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, lineitem.Totals{}, fmt.Errorf("part not found: %s", item.PartNo)
			}
			return nil, lineitem.Totals{}, err
		}

		if item.Location != "" {
			var location models.Location
			if err := tx.First(&location, "location_code = ? AND is_active = ?", item.Location, true).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, lineitem.Totals{}, fmt.Errorf("location not found or inactive: %s", item.Location)
				}
				return nil, lineitem.Totals{}, err
			}
		}

		details = append(details, models.PutawayDetail{
			ItemId:      int(product.ID),
			PartNo:      product.PartNo,
			Description: product.Description,
			SKU:         product.SKU,
			BatchNo:     item.BatchNo,
			Uom:         product.Uom,
			ReceivedQty: roleInt(item, lineitem.RoleReceived),
			BinQty:      roleInt(item, lineitem.RoleBinQty),
			BinCount:    roleInt(item, lineitem.RoleBinCount),
			PutawayQty:  roleInt(item, lineitem.RoleNet),
			Location:    item.Location,
			Remarks:     item.Remarks,
		})
	}

	return details, lineitem.Aggregate(store.Items()), nil
}

func (c *PutawayController) CreatePutaway(ctx *fiber.Ctx) error {
	var payload PutawayForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("putaway")
	session := middleware.SessionFrom(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var grn models.GrnHeader
	if err := tx.First(&grn, "grn_no = ?", payload.GrnNo).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "GRN not found",
		})
	}

	if grn.Status != "complete" {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Putaway can only be raised against a completed GRN",
		})
	}

	repo := repositories.NewPutawayRepository(tx)
	putawayNo, err := repo.GeneratePutawayNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate putaway no",
			"error":   err.Error(),
		})
	}

	details, totals, err := c.buildPutawayDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	header := models.PutawayHeader{
		PutawayNo:   putawayNo,
		PutawayDate: payload.PutawayDate,
		GrnId:       grn.ID,
		GrnNo:       grn.GrnNo,
		WhsCode:     session.WhsCode,
		Status:      "open",
		Remarks:     payload.Remarks,
		TotalLine:   totals.Lines,
		TotalQty:    int(totals.TotalNet),
		CreatedBy:   session.UserID,
		UpdatedBy:   session.UserID,
	}

	if err := tx.Create(&header).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert putaway",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].PutawayId = header.ID
		details[i].PutawayNo = header.PutawayNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert putaway detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.PutawayNo, "open", "putaway", "Putaway created", session.UserID)

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to commit transaction",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Putaway created successfully",
		"data": fiber.Map{
			"putaway_no": header.PutawayNo,
			"totals":     totals,
		},
	})
}

func (c *PutawayController) GetAllPutaway(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewPutawayRepository(c.DB)
	headers, total, err := repo.GetAllPutaway(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"putaways": headers,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}

func (c *PutawayController) GetPutawayByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewPutawayRepository(c.DB)
	header, err := repo.GetPutawayByNo(ctx.Params("putaway_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Putaway not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

func (c *PutawayController) UpdatePutawayByNo(ctx *fiber.Ctx) error {
	putawayNo := ctx.Params("putaway_no")

	var payload PutawayForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("putaway")
	session := middleware.SessionFrom(ctx)

	var header models.PutawayHeader
	if err := c.DB.First(&header, "putaway_no = ?", putawayNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Putaway not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed putaway cannot be edited",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	details, totals, err := c.buildPutawayDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	repo := repositories.NewPutawayRepository(tx)
	for i := range details {
		details[i].PutawayNo = header.PutawayNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
	}
	if err := repo.ReplaceDetails(tx, header.ID, details); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header.PutawayDate = payload.PutawayDate
	header.Remarks = payload.Remarks
	header.TotalLine = totals.Lines
	header.TotalQty = int(totals.TotalNet)
	header.UpdatedBy = session.UserID

	if err := tx.Save(&header).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Putaway updated successfully",
		"data": fiber.Map{
			"putaway_no": header.PutawayNo,
			"totals":     totals,
		},
	})
}

// CompletePutaway locks the document and posts one inventory movement
// per line. Lines without a location are rejected before anything is
// written.
func (c *PutawayController) CompletePutaway(ctx *fiber.Ctx) error {
	putawayNo := ctx.Params("putaway_no")
	session := middleware.SessionFrom(ctx)

	repo := repositories.NewPutawayRepository(c.DB)
	header, err := repo.GetPutawayByNo(putawayNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Putaway not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open putaways can be completed",
		})
	}

	for _, d := range header.Details {
		if d.Location == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Line %s has no location assigned", d.PartNo),
			})
		}
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	inventoryRepo := repositories.NewInventoryRepository(tx)
	for _, d := range header.Details {
		movement := models.Inventory{
			WhsCode:   header.WhsCode,
			Location:  d.Location,
			ItemId:    d.ItemId,
			PartNo:    d.PartNo,
			BatchNo:   d.BatchNo,
			Uom:       d.Uom,
			Quantity:  d.PutawayQty,
			RefNo:     header.PutawayNo,
			RefType:   "putaway",
			CreatedBy: session.UserID,
			UpdatedBy: session.UserID,
		}
		if err := inventoryRepo.AddMovement(tx, &movement); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	header.Status = "complete"
	header.UpdatedBy = session.UserID
	if err := tx.Save(header).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertTransactionHistory(tx, header.PutawayNo, "complete", "putaway", "Putaway completed, stock posted", session.UserID)

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Putaway completed, stock posted",
	})
}

func (c *PutawayController) DeletePutaway(ctx *fiber.Ctx) error {
	putawayNo := ctx.Params("putaway_no")
	session := middleware.SessionFrom(ctx)

	var header models.PutawayHeader
	if err := c.DB.First(&header, "putaway_no = ?", putawayNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Putaway not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed putaway cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Putaway deleted successfully",
	})
}

func (c *PutawayController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewPutawayRepository(c.DB)
	headers, _, err := repo.GetAllPutaway(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Putaway No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "GRN No")
	f.SetCellValue(sheet, "D1", "Status")
	f.SetCellValue(sheet, "E1", "Total Line")
	f.SetCellValue(sheet, "F1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.PutawayNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.PutawayDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.GrnNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="putaway.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
