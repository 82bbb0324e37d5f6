package lineitem

import (
	"strconv"
	"strings"
)

// Quantity keeps the raw string the operator typed next to the value used
// for computation. A raw string that does not parse still displays as
// typed but counts as zero everywhere it is summed or derived from.
type Quantity struct {
	Raw   string  `json:"raw"`
	Value float64 `json:"value"`
	Set   bool    `json:"set"`
}

// ParseQuantity never fails; malformed input degrades to value zero with
// the raw text preserved.
func ParseQuantity(raw string) Quantity {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Quantity{Raw: raw}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v < 0 {
		return Quantity{Raw: raw, Set: true}
	}
	return Quantity{Raw: raw, Value: v, Set: true}
}

// derivedQuantity is used for fields the engine computes itself, so the
// raw string always matches the value.
func derivedQuantity(v float64) Quantity {
	if v < 0 {
		v = 0
	}
	return Quantity{Raw: strconv.FormatFloat(v, 'f', -1, 64), Value: v, Set: true}
}

// Item is one row of a document's detail table.
type Item struct {
	ID          int64
	PartNo      string
	Description string
	SKU         string
	BatchNo     string
	Location    string
	Remarks     string
	Qty         map[Role]Quantity
}

// NewItem builds an empty row. The zero ID marks a row the store has not
// assigned an identity to yet.
func NewItem() Item {
	return Item{Qty: map[Role]Quantity{}}
}

// Get returns the computed value of a role, zero when absent.
func (it Item) Get(role Role) float64 {
	return it.Qty[role].Value
}

// Has reports whether the role carries a set value on this row.
func (it Item) Has(role Role) bool {
	return it.Qty[role].Set
}

// clone copies the row so reconciliation never mutates the caller's copy.
func (it Item) clone() Item {
	qty := make(map[Role]Quantity, len(it.Qty))
	for role, q := range it.Qty {
		qty[role] = q
	}
	out := it
	out.Qty = qty
	return out
}
