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

// MultiOrderController consolidates several open buyer orders into one
// picking document. Each detail line remembers the order it came from;
// completing the multi order issues stock and closes the source orders.
type MultiOrderController struct {
	DB *gorm.DB
}

func NewMultiOrderController(DB *gorm.DB) *MultiOrderController {
	return &MultiOrderController{DB: DB}
}

type MultiOrderForm struct {
	PickingDate string   `json:"picking_date" validate:"required"`
	OrderNos    []string `json:"order_nos" validate:"required,min=1"`
	Remarks     string   `json:"remarks_header"`
}

// multiCarry keeps order and pick quantities as they are when lines are
// pulled from the source orders.
var multiCarry = map[lineitem.Role]lineitem.Role{
	lineitem.RoleInvoice: lineitem.RoleInvoice,
	lineitem.RoleNet:     lineitem.RoleNet,
}

func orderParent(order *models.BuyerOrderHeader) lineitem.ParentRecord {
	parent := lineitem.ParentRecord{
		Header: map[string]string{
			"order_no": order.OrderNo,
			"buyer":    order.Buyer,
		},
	}
	for _, d := range order.Details {
		parent.Rows = append(parent.Rows, lineitem.ParentRow{
			PartNo:      d.PartNo,
			Description: d.Description,
			SKU:         d.SKU,
			BatchNo:     d.BatchNo,
			Qty: map[lineitem.Role]float64{
				lineitem.RoleInvoice: float64(d.OrderQty),
				lineitem.RoleNet:     float64(d.PickQty),
			},
		})
	}
	return parent
}

// ResolveOrders previews the consolidated line list for a set of order
// numbers. Orders that are not open are reported and skipped.
func (c *MultiOrderController) ResolveOrders(ctx *fiber.Ctx) error {
	var payload MultiOrderForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(payload.OrderNos) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "At least one order no is required",
		})
	}

	mapping, _ := lineitem.MappingFor("buyer_order")
	repo := repositories.NewOrderRepository(c.DB)

	var rows []fiber.Map
	var skipped []string
	for _, orderNo := range payload.OrderNos {
		order, err := repo.GetOrderByNo(orderNo)
		if err != nil {
			skipped = append(skipped, orderNo)
			continue
		}
		if order.Status != "open" {
			skipped = append(skipped, orderNo)
			continue
		}

		resolution := lineitem.ResolveFromParent(mapping, multiCarry, orderParent(order))
		for _, item := range resolution.Items {
			row := wireRow(mapping, item)
			row["order_no"] = order.OrderNo
			row["buyer"] = order.Buyer
			rows = append(rows, row)
		}
	}

	message := ""
	if len(skipped) > 0 {
		message = fmt.Sprintf("Skipped orders (missing or not open): %v", skipped)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items": rows,
		},
		"message": message,
	})
}

func (c *MultiOrderController) CreateMultiOrder(ctx *fiber.Ctx) error {
	var payload MultiOrderForm
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

	session := middleware.SessionFrom(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	repo := repositories.NewOrderRepository(tx)

	var orders []*models.BuyerOrderHeader
	for _, orderNo := range payload.OrderNos {
		order, err := repo.GetOrderByNo(orderNo)
		if err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Order not found: %s", orderNo),
			})
		}
		if order.Status != "open" {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Order %s is not open", orderNo),
			})
		}

		var pinned int64
		tx.Model(&models.MultiOrderDetail{}).Where("order_no = ?", orderNo).Count(&pinned)
		if pinned > 0 {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Order %s is already on a multi order", orderNo),
			})
		}

		orders = append(orders, order)
	}

	multiNo, err := repo.GenerateMultiNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate multi order no",
			"error":   err.Error(),
		})
	}

	totalLine := 0
	totalQty := 0
	var details []models.MultiOrderDetail
	for _, order := range orders {
		for _, d := range order.Details {
			details = append(details, models.MultiOrderDetail{
				OrderId:     order.ID,
				OrderNo:     order.OrderNo,
				Buyer:       order.Buyer,
				ItemId:      d.ItemId,
				PartNo:      d.PartNo,
				Description: d.Description,
				SKU:         d.SKU,
				BatchNo:     d.BatchNo,
				Uom:         d.Uom,
				OrderQty:    d.OrderQty,
				PickQty:     d.PickQty,
				ShortQty:    d.ShortQty,
				CreatedBy:   session.UserID,
				UpdatedBy:   session.UserID,
			})
			totalLine++
			totalQty += d.PickQty
		}
	}

	header := models.MultiOrderHeader{
		MultiNo:     multiNo,
		PickingDate: payload.PickingDate,
		WhsCode:     session.WhsCode,
		Status:      "open",
		Remarks:     payload.Remarks,
		TotalOrder:  len(orders),
		TotalLine:   totalLine,
		TotalQty:    totalQty,
		CreatedBy:   session.UserID,
		UpdatedBy:   session.UserID,
	}

	if err := tx.Create(&header).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert multi order",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].MultiId = header.ID
		details[i].MultiNo = header.MultiNo
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert multi order detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.MultiNo, "open", "multi_order", "Multi order created", session.UserID)

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
		"message": "Multi order created successfully",
		"data": fiber.Map{
			"multi_no":    header.MultiNo,
			"total_order": header.TotalOrder,
			"total_line":  header.TotalLine,
			"total_qty":   header.TotalQty,
		},
	})
}

func (c *MultiOrderController) GetAllMultiOrders(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewOrderRepository(c.DB)
	headers, total, err := repo.GetAllMultiOrders(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"multi_orders": headers,
			"total":        total,
			"page":         params.Page,
			"per_page":     params.PerPage,
		},
	})
}

func (c *MultiOrderController) GetMultiOrderByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewOrderRepository(c.DB)
	header, err := repo.GetMultiOrderByNo(ctx.Params("multi_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Multi order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

// CompleteMultiOrder issues stock for every consolidated line and closes
// both the multi order and its source orders.
func (c *MultiOrderController) CompleteMultiOrder(ctx *fiber.Ctx) error {
	multiNo := ctx.Params("multi_no")
	session := middleware.SessionFrom(ctx)

	repo := repositories.NewOrderRepository(c.DB)
	header, err := repo.GetMultiOrderByNo(multiNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Multi order not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open multi orders can be completed",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	inventoryRepo := repositories.NewInventoryRepository(tx)
	orderNos := map[string]bool{}
	for _, d := range header.Details {
		orderNos[d.OrderNo] = true
		if d.PickQty == 0 {
			continue
		}
		movement := models.Inventory{
			WhsCode:   header.WhsCode,
			ItemId:    d.ItemId,
			PartNo:    d.PartNo,
			BatchNo:   d.BatchNo,
			Uom:       d.Uom,
			Quantity:  -d.PickQty,
			RefNo:     header.MultiNo,
			RefType:   "multi_order",
			CreatedBy: session.UserID,
			UpdatedBy: session.UserID,
		}
		if err := inventoryRepo.AddMovement(tx, &movement); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	for orderNo := range orderNos {
		if err := tx.Model(&models.BuyerOrderHeader{}).
			Where("order_no = ? AND status = ?", orderNo, "open").
			Updates(map[string]interface{}{"status": "complete", "updated_by": session.UserID}).Error; err != nil {
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

	helpers.InsertTransactionHistory(tx, header.MultiNo, "complete", "multi_order", "Multi order completed, stock issued", session.UserID)

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Multi order completed",
	})
}

func (c *MultiOrderController) DeleteMultiOrder(ctx *fiber.Ctx) error {
	multiNo := ctx.Params("multi_no")
	session := middleware.SessionFrom(ctx)

	var header models.MultiOrderHeader
	if err := c.DB.First(&header, "multi_no = ?", multiNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Multi order not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed multi order cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Multi order deleted successfully",
	})
}

func (c *MultiOrderController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewOrderRepository(c.DB)
	headers, _, err := repo.GetAllMultiOrders(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Multi No")
	f.SetCellValue(sheet, "B1", "Picking Date")
	f.SetCellValue(sheet, "C1", "Status")
	f.SetCellValue(sheet, "D1", "Total Order")
	f.SetCellValue(sheet, "E1", "Total Line")
	f.SetCellValue(sheet, "F1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.MultiNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.PickingDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.TotalOrder)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="multi_orders.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
