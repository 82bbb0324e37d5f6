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
	"wms-api/wms/master/buyer"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BuyerOrderController serves the buyer order screen. Order quantity is
// what the buyer asked for, pick quantity is what the warehouse picked
// and what ships; the shortage is derived from the two. Completing an
// order issues the picked quantity of each line from stock.
type BuyerOrderController struct {
	DB *gorm.DB
}

func NewBuyerOrderController(DB *gorm.DB) *BuyerOrderController {
	return &BuyerOrderController{DB: DB}
}

type BuyerOrderForm struct {
	OrderDate    string     `json:"order_date" validate:"required"`
	Buyer        string     `json:"buyer" validate:"required"`
	ShipmentMode string     `json:"shipment_mode"`
	DeliveryDate string     `json:"delivery_date"`
	Remarks      string     `json:"remarks_header"`
	Items        []FormItem `json:"items" validate:"required,min=1,dive"`
}

func (c *BuyerOrderController) buildOrderDetails(tx *gorm.DB, m lineitem.Mapping, items []FormItem) ([]models.BuyerOrderDetail, lineitem.Totals, error) {
	store := buildLineStore(m, items)

	details := make([]models.BuyerOrderDetail, 0, store.Len())
	for _, item := range store.Items() {
		var product models.Product
		if err := tx.First(&product, "part_no = ?", item.PartNo).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, lineitem.Totals{}, fmt.Errorf("part not found: %s", item.PartNo)
			}
			return nil, lineitem.Totals{}, err
		}

		details = append(details, models.BuyerOrderDetail{
			ItemId:      int(product.ID),
			PartNo:      product.PartNo,
			Description: product.Description,
			SKU:         product.SKU,
			BatchNo:     item.BatchNo,
			Uom:         product.Uom,
			OrderQty:    roleInt(item, lineitem.RoleInvoice),
			PickQty:     roleInt(item, lineitem.RoleNet),
			ShortQty:    roleInt(item, lineitem.RoleShort),
			Remarks:     item.Remarks,
		})
	}

	return details, lineitem.Aggregate(store.Items()), nil
}

func (c *BuyerOrderController) CreateOrder(ctx *fiber.Ctx) error {
	var payload BuyerOrderForm
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

	mapping, _ := lineitem.MappingFor("buyer_order")
	session := middleware.SessionFrom(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var buyerRow buyer.Buyer
	if err := tx.First(&buyerRow, "buyer_code = ? AND is_active = ?", payload.Buyer, true).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Buyer not found or inactive",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewOrderRepository(tx)
	orderNo, err := repo.GenerateOrderNo()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate order no",
			"error":   err.Error(),
		})
	}

	details, totals, err := c.buildOrderDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	header := models.BuyerOrderHeader{
		OrderNo:      orderNo,
		OrderDate:    payload.OrderDate,
		BuyerId:      int(buyerRow.ID),
		Buyer:        buyerRow.BuyerCode,
		ShipmentMode: payload.ShipmentMode,
		DeliveryDate: payload.DeliveryDate,
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
			"message": "Failed to insert order",
			"error":   err.Error(),
		})
	}

	for i := range details {
		details[i].OrderId = header.ID
		details[i].OrderNo = header.OrderNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
		if err := tx.Create(&details[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert order detail",
				"error":   err.Error(),
			})
		}
	}

	helpers.InsertTransactionHistory(tx, header.OrderNo, "open", "buyer_order", "Buyer order created", session.UserID)

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
		"message": "Buyer order created successfully",
		"data": fiber.Map{
			"order_no": header.OrderNo,
			"totals":   totals,
		},
	})
}

func (c *BuyerOrderController) GetAllOrders(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)

	repo := repositories.NewOrderRepository(c.DB)
	headers, total, err := repo.GetAllOrders(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"orders":   headers,
			"total":    total,
			"page":     params.Page,
			"per_page": params.PerPage,
		},
	})
}

func (c *BuyerOrderController) GetOrderByNo(ctx *fiber.Ctx) error {
	repo := repositories.NewOrderRepository(c.DB)
	header, err := repo.GetOrderByNo(ctx.Params("order_no"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    header,
	})
}

func (c *BuyerOrderController) UpdateOrderByNo(ctx *fiber.Ctx) error {
	orderNo := ctx.Params("order_no")

	var payload BuyerOrderForm
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	mapping, _ := lineitem.MappingFor("buyer_order")
	session := middleware.SessionFrom(ctx)

	var header models.BuyerOrderHeader
	if err := c.DB.First(&header, "order_no = ?", orderNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed order cannot be edited",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	details, totals, err := c.buildOrderDetails(tx, mapping, payload.Items)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	repo := repositories.NewOrderRepository(tx)
	for i := range details {
		details[i].OrderNo = header.OrderNo
		details[i].CreatedBy = session.UserID
		details[i].UpdatedBy = session.UserID
	}
	if err := repo.ReplaceDetails(tx, header.ID, details); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	header.OrderDate = payload.OrderDate
	header.ShipmentMode = payload.ShipmentMode
	header.DeliveryDate = payload.DeliveryDate
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
		"message": "Buyer order updated successfully",
		"data": fiber.Map{
			"order_no": header.OrderNo,
			"totals":   totals,
		},
	})
}

// CompleteOrder locks the order and issues the picked quantity of each
// line from stock as negative movements.
func (c *BuyerOrderController) CompleteOrder(ctx *fiber.Ctx) error {
	orderNo := ctx.Params("order_no")
	session := middleware.SessionFrom(ctx)

	repo := repositories.NewOrderRepository(c.DB)
	header, err := repo.GetOrderByNo(orderNo)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if header.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only open orders can be completed",
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	inventoryRepo := repositories.NewInventoryRepository(tx)
	for _, d := range header.Details {
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
			RefNo:     header.OrderNo,
			RefType:   "buyer_order",
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

	helpers.InsertTransactionHistory(tx, header.OrderNo, "complete", "buyer_order", "Buyer order completed, stock issued", session.UserID)

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Buyer order completed",
	})
}

func (c *BuyerOrderController) DeleteOrder(ctx *fiber.Ctx) error {
	orderNo := ctx.Params("order_no")
	session := middleware.SessionFrom(ctx)

	var header models.BuyerOrderHeader
	if err := c.DB.First(&header, "order_no = ?", orderNo).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	if header.Status == "complete" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Completed order cannot be deleted",
		})
	}

	var pinned int64
	c.DB.Model(&models.MultiOrderDetail{}).Where("order_no = ?", header.OrderNo).Count(&pinned)
	if pinned > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Order is referenced by a multi order and cannot be deleted",
		})
	}

	header.DeletedBy = session.UserID
	c.DB.Save(&header)

	if err := c.DB.Delete(&header).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Buyer order deleted successfully",
	})
}

func (c *BuyerOrderController) ExportExcel(ctx *fiber.Ctx) error {
	params := utils.ParsePageParams(ctx)
	params.PerPage = 200

	repo := repositories.NewOrderRepository(c.DB)
	headers, _, err := repo.GetAllOrders(params)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Order No")
	f.SetCellValue(sheet, "B1", "Date")
	f.SetCellValue(sheet, "C1", "Buyer")
	f.SetCellValue(sheet, "D1", "Delivery Date")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Total Line")
	f.SetCellValue(sheet, "G1", "Total Qty")

	for i, header := range headers {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), header.OrderNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header.OrderDate)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), header.Buyer)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), header.DeliveryDate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), header.Status)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), header.TotalLine)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), header.TotalQty)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="buyer_orders.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
