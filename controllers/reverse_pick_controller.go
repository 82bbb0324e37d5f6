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

// ReversePickController serves the reverse pick screen: returning picked
// stock of a completed buyer order back to the warehouse. Pick quantity
// comes from the order, return quantity is what actually came back, and
// completing the document adds the returned quantity back to inventory.
type ReversePickController struct {
	DB *gorm.DB
}

func NewReversePickController(DB *gorm.DB) *ReversePickController {
	return &ReversePickController{DB: DB}
}

type ReversePickForm struct {
	ReverseDate string     `json:"reverse_date" validate:"required"`
	OrderNo     string     `json:"order_no" validate:"required"`
	Reason      string     `json:"reason"`
	Remarks     string     `json:"remarks_header"`
	Items       []FormItem `json:"items" validate:"required,min=1,dive"`
}

// reverseCarry maps the order's picked quantity onto the reverse pick's
// base quantity. The return quantity is entered by the operator.
var reverseCarry = map[lineitem.Role]lineitem.Role{
	lineitem.RoleNet: lineitem.RoleInvoice,
}

func (c *ReversePickController) ResolveFromOrder(ctx *fiber.Ctx) error {
	orderNo := ctx.Params("order_no")

	repo := repositories.NewOrderRepository(c.DB)
	order, err := repo.GetOrderByNo(orderNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if order.Status != "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Reverse pick can only be raised against a completed order",
		})
	}

	mapping, _ := lineitem.MappingFor("reverse_pick")
	resolution := lineitem.ResolveFromParent(mapping, reverseCarry, orderParent(order))

	rows := make([]fiber.Map, 0, len(resolution.Items))
	for _, item := range resolution.Items {
		rows = append(rows, wireRow(mapping, item))
	}

	warning := ""
	if len(rows) == 0 {
		warning = "Order has no detail lines"
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

// buildReverseDetails maps the reconciled rows onto detail records. The
// operator keys the return quantity, which is this screen's net role.
func (c *ReversePickController) buildReverseDetails(tx *gorm.DB, m lineitem.Mapping, items []FormItem) ([]models.ReversePickDetail, lineitem.Totals, error) {
	store := buildLineStore(m, items)

	details := make([]models.ReversePickDetail, 0, store.Len())
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

		details = append(details, models.ReversePickDetail{
			ItemId:      int(product.ID),
			PartNo:      product.PartNo,
			Description: product.Description,
			SKU:         product.SKU,
			BatchNo:     item.BatchNo,
			Uom:         product.Uom,
			PickQty:     roleInt(item, lineitem.RoleInvoice),
			ReturnQty:   roleInt(item, lineitem.RoleNet),
			ShortQty:    roleInt(item, lineitem.RoleShort),
			Location:    item.Location,
			Remarks:     item.Remarks,
		})
	}

	return details, lineitem.Aggregate(store.Items()), nil
}

func (c *ReversePickController) CreateReversePick(ctx *fiber.Ctx) error {
	var payload ReversePickForm
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

	mapping, _ := lineitem.MappingFor("reverse_pick")
	session := middleware.SessionFrom(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.BuyerOrderHeader
	if err := tx.First(&order, "order_no = ?", payload.OrderNo).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}

	if order.Status != "complete" {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Reverse pick can only be raised against a completed order",
		})
	}

	repo := repositories.NewReversePickRepository(tx)
	reverseNo, err := repo.GenerateReverseNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate reverse pick no",
			"error":   err.Error(),
		})
	}

	details, totals, err := c.buildReverseDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	header := models.ReversePickHeader{
		ReverseNo:   reverseNo,
		ReverseDate: payload.ReverseDate,
		OrderId:     order.ID,
		OrderNo:     order.OrderNo,
		Buyer:       order.Buyer,
		WhsCode:     session.WhsCode,
		Status:      "open",
		Reason:      payload.Reason,
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
			"message": "Failed to insert reverse pick",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].ReverseId = header.ID
		details[i].ReverseNo = header.ReverseNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert reverse pick detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.ReverseNo, "open", "reverse_pick", "Reverse pick created", session.UserID)

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
		"message": "Reverse pick created successfully",
		"data": fiber.Map{
			"reverse_no": header.ReverseNo,
			"totals":     totals,
		},
	})
}

func (c *ReversePickController) GetAllReversePick(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewReversePickRepository(c.DB)
	headers, total, err := repo.GetAllReversePick(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"reverse_picks": headers,
			"total":         total,
			"page":          params.Page,
			"per_page":      params.PerPage,
		},
	})
}

func (c *ReversePickController) GetReversePickByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewReversePickRepository(c.DB)
	header, err := repo.GetReversePickByNo(ctx.Params("reverse_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reverse pick not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

func (c *ReversePickController) UpdateReversePickByNo(ctx *fiber.Ctx) error {
	reverseNo := ctx.Params("reverse_no")

	var payload ReversePickForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("reverse_pick")
	session := middleware.SessionFrom(ctx)

	var header models.ReversePickHeader
	if err := c.DB.First(&header, "reverse_no = ?", reverseNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reverse pick not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed reverse pick cannot be edited",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	details, totals, err := c.buildReverseDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	repo := repositories.NewReversePickRepository(tx)
	for i := range details {
		details[i].ReverseNo = header.ReverseNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
	}
	if err := repo.ReplaceDetails(tx, header.ID, details); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header.ReverseDate = payload.ReverseDate
	header.Reason = payload.Reason
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
		"message": "Reverse pick updated successfully",
		"data": fiber.Map{
			"reverse_no": header.ReverseNo,
			"totals":     totals,
		},
	})
}

// CompleteReversePick locks the document and adds the returned quantity
// of each line back to stock at the return location.
func (c *ReversePickController) CompleteReversePick(ctx *fiber.Ctx) error {
	reverseNo := ctx.Params("reverse_no")
	session := middleware.SessionFrom(ctx)

	repo := repositories.NewReversePickRepository(c.DB)
	header, err := repo.GetReversePickByNo(reverseNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reverse pick not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open reverse picks can be completed",
		})
	}

	for _, d := range header.Details {
		if d.ReturnQty > 0 && d.Location == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Line %s has no return location assigned", d.PartNo),
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
		if d.ReturnQty == 0 {
			continue
		}
		movement := models.Inventory{
			WhsCode:   header.WhsCode,
			Location:  d.Location,
			ItemId:    d.ItemId,
			PartNo:    d.PartNo,
			BatchNo:   d.BatchNo,
			Uom:       d.Uom,
			Quantity:  d.ReturnQty,
			RefNo:     header.ReverseNo,
			RefType:   "reverse_pick",
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

	helpers.InsertTransactionHistory(tx, header.ReverseNo, "complete", "reverse_pick", "Reverse pick completed, stock returned", session.UserID)

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Reverse pick completed, stock returned",
	})
}

func (c *ReversePickController) DeleteReversePick(ctx *fiber.Ctx) error {
	reverseNo := ctx.Params("reverse_no")
	session := middleware.SessionFrom(ctx)

	var header models.ReversePickHeader
	if err := c.DB.First(&header, "reverse_no = ?", reverseNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reverse pick not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed reverse pick cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Reverse pick deleted successfully",
	})
}

func (c *ReversePickController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewReversePickRepository(c.DB)
	headers, _, err := repo.GetAllReversePick(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Reverse No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Order No")
	f.SetCellValue(sheet, "D1", "Buyer")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Total Line")
	f.SetCellValue(sheet, "G1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.ReverseNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.ReverseDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.OrderNo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.Buyer)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="reverse_picks.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
