package lineitem

import "math"

// Reconcile applies one field edit to a row and recomputes every derived
// quantity that depends on it. On the receiving screens, where the
// mapping carries a received role:
//
//	short    = max(0, invoice - received)
//	net      = max(0, received - (short + damage))
//	binCount = ceil(received / binQty)   when binQty > 0, otherwise unset
//
// Short is recomputed before net inside the same call. The picking
// screens carry no received role: the picked (or returned) quantity is
// keyed directly as the net, and only the shortage is derived:
//
//	short = max(0, invoice - net)
//
// The function is pure and total: it returns a new row, never panics,
// and malformed numeric input counts as zero.
func Reconcile(m Mapping, item Item, changed Role, raw string) Item {
	out := item.clone()
	if out.Qty == nil {
		out.Qty = map[Role]Quantity{}
	}
	if !m.Has(changed) {
		return out
	}
	out.Qty[changed] = ParseQuantity(raw)

	if !m.Has(RoleReceived) {
		if (changed == RoleInvoice || changed == RoleNet) && m.Has(RoleShort) {
			short := out.Get(RoleInvoice) - out.Get(RoleNet)
			out.Qty[RoleShort] = derivedQuantity(short)
		}
		return out
	}

	shortChanged := changed == RoleShort
	if (changed == RoleInvoice || changed == RoleReceived) && m.Has(RoleShort) {
		short := out.Get(RoleInvoice) - out.Get(RoleReceived)
		out.Qty[RoleShort] = derivedQuantity(short)
		shortChanged = true
	}

	if (changed == RoleReceived || changed == RoleDamage || shortChanged) && m.Has(RoleNet) {
		net := out.Get(RoleReceived) - (out.Get(RoleShort) + out.Get(RoleDamage))
		out.Qty[RoleNet] = derivedQuantity(net)
	}

	if (changed == RoleBinQty || changed == RoleReceived) && m.Has(RoleBinCount) {
		if binQty := out.Get(RoleBinQty); binQty > 0 {
			out.Qty[RoleBinCount] = derivedQuantity(math.Ceil(out.Get(RoleReceived) / binQty))
		} else {
			delete(out.Qty, RoleBinCount)
		}
	}

	return out
}
