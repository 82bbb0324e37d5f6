package lineitem

// ParentRow is one detail row of a selected parent document, reduced to
// what cascade seeding needs.
type ParentRow struct {
	PartNo      string
	Description string
	SKU         string
	BatchNo     string
	Qty         map[Role]float64
}

// ParentRecord is a fetched parent document. Header carries the field
// values the child document adopts when the parent is selected.
type ParentRecord struct {
	Header map[string]string
	Rows   []ParentRow
}

// Resolution is the atomic outcome of a parent selection: header fields
// to merge and the full replacement row list. Callers apply both or
// neither.
type Resolution struct {
	Header map[string]string
	Items  []Item
}

// ResolveFromParent builds the child document's rows from a parent
// record. carry translates parent roles to child roles (a GRN's net
// quantity becomes a putaway's received quantity, and so on); roles not
// carried start unset so the child's own edits derive them fresh.
//
// A malformed parent (no detail rows) resolves to an empty list and no
// header fields. The caller surfaces the warning; this never errors.
func ResolveFromParent(m Mapping, carry map[Role]Role, parent ParentRecord) Resolution {
	if len(parent.Rows) == 0 {
		return Resolution{Header: map[string]string{}}
	}

	res := Resolution{
		Header: make(map[string]string, len(parent.Header)),
		Items:  make([]Item, 0, len(parent.Rows)),
	}
	for k, v := range parent.Header {
		res.Header[k] = v
	}

	for _, row := range parent.Rows {
		item := NewItem()
		item.PartNo = row.PartNo
		item.Description = row.Description
		item.SKU = row.SKU
		item.BatchNo = row.BatchNo
		for from, to := range carry {
			if !m.Has(to) {
				continue
			}
			if v, ok := row.Qty[from]; ok {
				item = Reconcile(m, item, to, derivedQuantity(v).Raw)
			}
		}
		res.Items = append(res.Items, item)
	}
	return res
}
