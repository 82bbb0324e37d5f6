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

// GatePassController serves the Gate Pass In screen.
type GatePassController struct {
	DB *gorm.DB
}

func NewGatePassController(DB *gorm.DB) *GatePassController {
	return &GatePassController{DB: DB}
}

type GatePassForm struct {
	GatePassDate string     `json:"gate_pass_date" validate:"required"`
	Supplier     string     `json:"supplier" validate:"required"`
	InvoiceNo    string     `json:"invoice_no"`
	Transporter  string     `json:"transporter"`
	Driver       string     `json:"driver"`
	TruckNo      string     `json:"truck_no"`
	ShipmentMode string     `json:"shipment_mode"`
	Remarks      string     `json:"remarks_header"`
	Items        []FormItem `json:"items" validate:"required,min=1,dive"`
}

// buildGatePassDetails runs the posted rows through the engine and maps
// the reconciled result onto detail records. Part numbers must resolve
// against the product master.
func (c *GatePassController) buildGatePassDetails(tx *gorm.DB, m lineitem.Mapping, items []FormItem) ([]models.GatePassDetail, lineitem.Totals, error) {
	store := buildLineStore(m, items)

	details := make([]models.GatePassDetail, 0, store.Len())
	for _, item := range store.Items() {
		var product models.Product
		if err := tx.First(&product, "part_no = ?", item.PartNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, lineitem.Totals{}, fmt.Errorf("part not found: %s", item.PartNo)
			}
			return nil, lineitem.Totals{}, err
		}

		details = append(details, models.GatePassDetail{
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
			NetQty:      roleInt(item, lineitem.RoleNet),
			Remarks:     item.Remarks,
		})
	}

	return details, lineitem.Aggregate(store.Items()), nil
}

func (c *GatePassController) CreateGatePass(ctx *fiber.Ctx) error {
	var payload GatePassForm
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

	mapping, _ := lineitem.MappingFor("gate_pass")
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

	repo := repositories.NewGatePassRepository(tx)
	gatePassNo, err := repo.GenerateGatePassNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate gate pass no",
			"error":   err.Error(),
		})
	}

	details, totals, err := c.buildGatePassDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	header := models.GatePassHeader{
		GatePassNo:   gatePassNo,
		GatePassDate: payload.GatePassDate,
		SupplierId:   int(supplier.ID),
		Supplier:     supplier.SupplierCode,
		InvoiceNo:    payload.InvoiceNo,
		Transporter:  payload.Transporter,
		Driver:       payload.Driver,
		TruckNo:      payload.TruckNo,
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
			"message": "Failed to insert gate pass",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].GatePassId = header.ID
		details[i].GatePassNo = header.GatePassNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert gate pass detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.GatePassNo, "open", "gate_pass", "Gate pass created", session.UserID)

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
		"message": "Gate pass created successfully",
		"data": fiber.Map{
			"gate_pass_no": header.GatePassNo,
			"totals":       totals,
		},
	})
}

func (c *GatePassController) GetAllGatePass(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewGatePassRepository(c.DB)
	headers, total, err := repo.GetAllGatePass(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"gate_passes": headers,
			"total":       total,
			"page":        params.Page,
			"per_page":    params.PerPage,
		},
	})
}

func (c *GatePassController) GetGatePassByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewGatePassRepository(c.DB)
	header, err := repo.GetGatePassByNo(ctx.Params("gate_pass_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gate pass not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

func (c *GatePassController) UpdateGatePassByNo(ctx *fiber.Ctx) error {
	gatePassNo := ctx.Params("gate_pass_no")

	var payload GatePassForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("gate_pass")
	session := middleware.SessionFrom(ctx)

	var header models.GatePassHeader
	if err := c.DB.First(&header, "gate_pass_no = ?", gatePassNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gate pass not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed gate pass cannot be edited",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	details, totals, err := c.buildGatePassDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	repo := repositories.NewGatePassRepository(tx)
	for i := range details {
		details[i].GatePassNo = header.GatePassNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
	}
	if err := repo.ReplaceDetails(tx, header.ID, details); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Saving a draft (e.g. a processor import) promotes it to open.
	if header.Status == "draft" {
		header.Status = "open"
	}

	header.GatePassDate = payload.GatePassDate
	header.InvoiceNo = payload.InvoiceNo
	header.Transporter = payload.Transporter
	header.Driver = payload.Driver
	header.TruckNo = payload.TruckNo
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
		"message": "Gate pass updated successfully",
		"data": fiber.Map{
			"gate_pass_no": header.GatePassNo,
			"totals":       totals,
		},
	})
}

func (c *GatePassController) CompleteGatePass(ctx *fiber.Ctx) error {
	gatePassNo := ctx.Params("gate_pass_no")
	session := middleware.SessionFrom(ctx)

	var header models.GatePassHeader
	if err := c.DB.First(&header, "gate_pass_no = ?", gatePassNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gate pass not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open gate passes can be completed",
		})
	}

	header.Status = "complete"
	header.UpdatedBy = session.UserID
	if err := c.DB.Save(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	helpers.InsertTransactionHistory(c.DB, header.GatePassNo, "complete", "gate_pass", "Gate pass completed", session.UserID)

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Gate pass completed",
	})
}

func (c *GatePassController) DeleteGatePass(ctx *fiber.Ctx) error {
	gatePassNo := ctx.Params("gate_pass_no")
	session := middleware.SessionFrom(ctx)

	var header models.GatePassHeader
	if err := c.DB.First(&header, "gate_pass_no = ?", gatePassNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gate pass not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed gate pass cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Gate pass deleted successfully",
	})
}

func (c *GatePassController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewGatePassRepository(c.DB)
	headers, _, err := repo.GetAllGatePass(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Gate Pass No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Supplier")
	f.SetCellValue(sheet, "D1", "Invoice No")
	f.SetCellValue(sheet, "E1", "Truck No")
	f.SetCellValue(sheet, "F1", "Shipment Mode")
	f.SetCellValue(sheet, "G1", "Status")
	f.SetCellValue(sheet, "H1", "Total Line")
	f.SetCellValue(sheet, "I1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.GatePassNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.GatePassDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.Supplier)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.InvoiceNo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.TruckNo)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.ShipmentMode)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="gate_pass.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
