package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"wms-api/controllers/helpers"
	"wms-api/lineitem"
	"wms-api/middleware"
	"wms-api/models"
	"wms-api/repositories"
	"wms-api/services"
	"wms-api/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// GrnController serves the GRN screen. A GRN is usually raised against a
// completed gate pass: selecting the gate pass replaces the whole item
// list and locks the supplier and invoice fields.
type GrnController struct {
	DB *gorm.DB
}

func NewGrnController(DB *gorm.DB) *GrnController {
	return &GrnController{DB: DB}
}

type GrnForm struct {
	GrnDate      string     `json:"grn_date" validate:"required"`
	GatePassNo   string     `json:"gate_pass_no"`
	Supplier     string     `json:"supplier" validate:"required"`
	InvoiceNo    string     `json:"invoice_no"`
	ShipmentMode string     `json:"shipment_mode"`
	Remarks      string     `json:"remarks_header"`
	Items        []FormItem `json:"items" validate:"required,min=1,dive"`
}

// grnCarry translates gate pass quantities onto a fresh GRN line.
var grnCarry = map[lineitem.Role]lineitem.Role{
	lineitem.RoleInvoice:  lineitem.RoleInvoice,
	lineitem.RoleReceived: lineitem.RoleReceived,
}

// ResolveFromGatePass previews the cascade: the item list and header
// fields a GRN adopts when the given gate pass is selected. Nothing is
// persisted; the form applies the result as one replacement.
func (c *GrnController) ResolveFromGatePass(ctx *fiber.Ctx) error {
	gatePassNo := ctx.Params("gate_pass_no")

	repo := repositories.NewGatePassRepository(c.DB)
	gatePass, err := repo.GetGatePassByNo(gatePassNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gate pass not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("grn")
	resolution := lineitem.ResolveFromParent(mapping, grnCarry, gatePassParent(gatePass))

	rows := make([]fiber.Map, 0, len(resolution.Items))
	for _, item := range resolution.Items {
		rows = append(rows, wireRow(mapping, item))
	}

	warning := ""
	if len(rows) == 0 {
		warning = "Gate pass has no detail lines"
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

// gatePassParent reduces a fetched gate pass to the parent record shape
// the cascade resolver consumes.
func gatePassParent(gatePass *models.GatePassHeader) lineitem.ParentRecord {
	parent := lineitem.ParentRecord{
		Header: map[string]string{
			"gate_pass_no":  gatePass.GatePassNo,
			"supplier":      gatePass.Supplier,
			"invoice_no":    gatePass.InvoiceNo,
			"shipment_mode": gatePass.ShipmentMode,
		},
	}
	for _, d := range gatePass.Details {
		parent.Rows = append(parent.Rows, lineitem.ParentRow{
			PartNo:      d.PartNo,
			Description: d.Description,
			SKU:         d.SKU,
			BatchNo:     d.BatchNo,
			Qty: map[lineitem.Role]float64{
				lineitem.RoleInvoice:  float64(d.InvoiceQty),
				lineitem.RoleReceived: float64(d.ReceivedQty),
			},
		})
	}
	return parent
}

func (c *GrnController) buildGrnDetails(tx *gorm.DB, m lineitem.Mapping, items []FormItem) ([]models.GrnDetail, lineitem.Totals, error) {
	store := buildLineStore(m, items)

	details := make([]models.GrnDetail, 0, store.Len())
	for _, item := range store.Items() {
		var product models.Product
		if err := tx.First(&product, "part_no = ?", item.PartNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, lineitem.Totals{}, fmt.Errorf("part not found: %s", item.PartNo)
			}
			return nil, lineitem.Totals{}, err
		}

		details = append(details, models.GrnDetail{
			ItemId:      int(product.ID),
			PartNo:      product.PartNo,
			Description: product.Description,
			SKU:         product.SKU,
			BatchNo:     item.BatchNo,
			Uom:         product.Uom,
			InvoiceQty:  roleInt(item, lineitem.RoleInvoice),
			ReceivedQty: roleInt(item, lineitem.RoleReceived),
			ShortQty:    roleInt(item, lineitem.RoleShort),
			DamageQty:   roleInt(item, lineitem.RoleDamage),
			GrnQty:      roleInt(item, lineitem.RoleNet),
			Remarks:     item.Remarks,
		})
	}

	return details, lineitem.Aggregate(store.Items()), nil
}

func (c *GrnController) CreateGrn(ctx *fiber.Ctx) error {
	var payload GrnForm
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

	mapping, _ := lineitem.MappingFor("grn")
	session := middleware.SessionFrom(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var supplier models.Supplier
	if err := tx.First(&supplier, "supplier_code = ?", payload.Supplier).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// A gate pass reference locks the supplier and invoice the GRN was
	// raised against; a mismatch means the form skipped the cascade.
	var gatePass models.GatePassHeader
	if payload.GatePassNo != "" {
		if err := tx.First(&gatePass, "gate_pass_no = ?", payload.GatePassNo).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Gate pass not found",
			})
		}
		if gatePass.Supplier != payload.Supplier {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Supplier does not match the selected gate pass",
			})
		}
	}

	repo := repositories.NewGrnRepository(tx)
	grnNo, err := repo.GenerateGrnNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate GRN no",
			"error":   err.Error(),
		})
	}

	details, totals, err := c.buildGrnDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	header := models.GrnHeader{
		GrnNo:        grnNo,
		GrnDate:      payload.GrnDate,
		GatePassId:   gatePass.ID,
		GatePassNo:   payload.GatePassNo,
		SupplierId:   int(supplier.ID),
		Supplier:     supplier.SupplierCode,
		InvoiceNo:    payload.InvoiceNo,
		ShipmentMode: payload.ShipmentMode,
		WhsCode:      session.WhsCode,
		Status:       "open",
		Remarks:      payload.Remarks,
		TotalLine:    totals.Lines,
		TotalQty:     int(totals.TotalNet),
		CreatedBy:    session.UserID,
		UpdatedBy:    session.UserID,
	}

	if err := tx.Create(&header).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert GRN",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].GrnId = header.ID
		details[i].GrnNo = header.GrnNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert GRN detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.GrnNo, "open", "grn", "GRN created", session.UserID)

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
		"message": "GRN created successfully",
		"data": fiber.Map{
			"grn_no": header.GrnNo,
			"totals": totals,
		},
	})
}

func (c *GrnController) GetAllGrn(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewGrnRepository(c.DB)
	headers, total, err := repo.GetAllGrn(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"grns":     headers,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}

func (c *GrnController) GetGrnByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewGrnRepository(c.DB)
	header, err := repo.GetGrnByNo(ctx.Params("grn_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "GRN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

func (c *GrnController) UpdateGrnByNo(ctx *fiber.Ctx) error {
	grnNo := ctx.Params("grn_no")

	var payload GrnForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("grn")
	session := middleware.SessionFrom(ctx)

	var header models.GrnHeader
	if err := c.DB.First(&header, "grn_no = ?", grnNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "GRN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed GRN cannot be edited",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	details, totals, err := c.buildGrnDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	repo := repositories.NewGrnRepository(tx)
	for i := range details {
		details[i].GrnNo = header.GrnNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
	}
	if err := repo.ReplaceDetails(tx, header.ID, details); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header.GrnDate = payload.GrnDate
	header.InvoiceNo = payload.InvoiceNo
	header.ShipmentMode = payload.ShipmentMode
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
		"message": "GRN updated successfully",
		"data": fiber.Map{
			"grn_no": header.GrnNo,
			"totals": totals,
		},
	})
}

func (c *GrnController) CompleteGrn(ctx *fiber.Ctx) error {
	grnNo := ctx.Params("grn_no")
	session := middleware.SessionFrom(ctx)

	var header models.GrnHeader
	if err := c.DB.First(&header, "grn_no = ?", grnNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "GRN not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open GRNs can be completed",
		})
	}

	header.Status = "complete"
	header.UpdatedBy = session.UserID
	if err := c.DB.Save(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertTransactionHistory(c.DB, header.GrnNo, "complete", "grn", "GRN completed", session.UserID)

	subject := fmt.Sprintf("GRN %s completed", header.GrnNo)
	body := fmt.Sprintf("GRN %s (supplier %s, invoice %s) completed with %d lines, total qty %d.",
		header.GrnNo, header.Supplier, header.InvoiceNo, header.TotalLine, header.TotalQty)
	if err := services.SendDocumentMail(subject, body); err != nil {
		log.Println("Warning: GRN completion mail not sent:", err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "GRN completed",
	})
}

func (c *GrnController) DeleteGrn(ctx *fiber.Ctx) error {
	grnNo := ctx.Params("grn_no")
	session := middleware.SessionFrom(ctx)

	var header models.GrnHeader
	if err := c.DB.First(&header, "grn_no = ?", grnNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "GRN not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed GRN cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "GRN deleted successfully",
	})
}

func (c *GrnController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewGrnRepository(c.DB)
	headers, _, err := repo.GetAllGrn(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "GRN No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Gate Pass No")
	f.SetCellValue(sheet, "D1", "Supplier")
	f.SetCellValue(sheet, "E1", "Invoice No")
	f.SetCellValue(sheet, "F1", "Status")
	f.SetCellValue(sheet, "G1", "Total Line")
	f.SetCellValue(sheet, "H1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.GrnNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.GrnDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.GatePassNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.Supplier)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.InvoiceNo)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="grn.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

// UploadGrnFromExcel bulk-creates one GRN from an uploaded sheet. The
// engine is not involved in parsing the file; parsed rows are applied
// the same way a form save is.
func (c *GrnController) UploadGrnFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No file uploaded or invalid file",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid file format. Only .xlsx and .xls files are allowed",
		})
	}

	fileHeader, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to open uploaded file",
		})
	}
	defer fileHeader.Close()

	excelFile, err := excelize.OpenReader(fileHeader)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read Excel file. Please ensure the file is not corrupted",
		})
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Excel file contains no sheets",
		})
	}

	rows, err := excelFile.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read rows from Excel",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Excel file must contain at least header row and one data row",
		})
	}

	// Columns: part no, batch no, invoice qty, received qty, damage qty
	var items []FormItem
	for i := 1; i < len(rows); i++ {
		partNo := utils.GetCell(rows[i], 0)
		if partNo == "" {
			continue
		}
		items = append(items, FormItem{
			PartNo:  partNo,
			BatchNo: utils.GetCell(rows[i], 1),
			Quantities: map[string]string{
				"invoice_qty":  utils.GetCell(rows[i], 2),
				"received_qty": utils.GetCell(rows[i], 3),
				"damage_qty":   utils.GetCell(rows[i], 4),
			},
		})
	}

	if len(items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "No valid rows found in Excel file",
		})
	}

	payload := GrnForm{
		GrnDate:   ctx.FormValue("grn_date"),
		Supplier:  ctx.FormValue("supplier"),
		InvoiceNo: ctx.FormValue("invoice_no"),
		Items:     items,
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	body, _ := ctx.App().Config().JSONEncoder(payload)
	ctx.Request().SetBody(body)
	ctx.Request().Header.SetContentType(fiber.MIMEApplicationJSON)
	return c.CreateGrn(ctx)
}
