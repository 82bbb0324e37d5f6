package controllers

import (
	"wms-api/lineitem"

	"github.com/gofiber/fiber/v2"
)

// FormItem is one posted detail row, shared by every document form. The
// quantities map is keyed by the screen's wire field names and carries
// the raw strings the operator typed; derived fields sent by the client
// are ignored and recomputed here.
type FormItem struct {
	ID         int64             `json:"id"`
	PartNo     string            `json:"part_no" validate:"required"`
	BatchNo    string            `json:"batch_no"`
	Location   string            `json:"location"`
	Remarks    string            `json:"remarks"`
	Quantities map[string]string `json:"quantities"`
}

// editableRoles lists the fields an operator may set directly on a
// screen. Short and bin count are always derived; net is derived on the
// receiving screens but keyed directly (as the picked or returned
// quantity) where the mapping carries no received role.
func editableRoles(m lineitem.Mapping) []lineitem.Role {
	roles := []lineitem.Role{
		lineitem.RoleInvoice,
		lineitem.RoleReceived,
		lineitem.RoleDamage,
		lineitem.RoleBinQty,
	}
	if !m.Has(lineitem.RoleReceived) {
		roles = append(roles, lineitem.RoleNet)
	}
	return roles
}

// buildLineStore replays the posted rows through the reconciliation
// engine: every editable quantity is applied as an edit, so shortage,
// net quantity and bin count come out derived and the header totals can
// be aggregated from the result.
func buildLineStore(m lineitem.Mapping, rows []FormItem) *lineitem.Store {
	store := lineitem.NewStore(m)
	for _, row := range rows {
		item := lineitem.NewItem()
		item.ID = row.ID
		item.PartNo = row.PartNo
		item.BatchNo = row.BatchNo
		item.Location = row.Location
		item.Remarks = row.Remarks

		id := store.Insert(item)
		for _, role := range editableRoles(m) {
			if !m.Has(role) {
				continue
			}
			if raw, ok := row.Quantities[m.WireName(role)]; ok {
				store.Update(id, role, raw)
			}
		}
	}
	return store
}

func roleInt(item lineitem.Item, role lineitem.Role) int {
	return int(item.Get(role))
}

// wireRow serializes an engine row for the form, quantities keyed by the
// screen's wire field names.
func wireRow(m lineitem.Mapping, item lineitem.Item) fiber.Map {
	quantities := fiber.Map{}
	for role, wire := range m.Wire {
		if item.Has(role) {
			quantities[wire] = item.Qty[role].Raw
		}
	}
	return fiber.Map{
		"id":          item.ID,
		"part_no":     item.PartNo,
		"description": item.Description,
		"sku":         item.SKU,
		"batch_no":    item.BatchNo,
		"location":    item.Location,
		"remarks":     item.Remarks,
		"quantities":  quantities,
	}
}
