package lineitem

// Totals are the document-level rollups derived from the full row list.
// Headers never carry editable totals; they always come from here.
type Totals struct {
	Lines         int     `json:"lines"`
	TotalInvoice  float64 `json:"total_invoice_qty"`
	TotalReceived float64 `json:"total_received_qty"`
	TotalShort    float64 `json:"total_short_qty"`
	TotalDamage   float64 `json:"total_damage_qty"`
	TotalNet      float64 `json:"total_net_qty"`
	TotalBinCount float64 `json:"total_bin_count"`
}

// Aggregate recomputes totals over the full list. Lists are small (tens
// of rows), so there is no incremental maintenance. Absent or malformed
// quantities count as zero; the empty list yields zero totals.
func Aggregate(items []Item) Totals {
	t := Totals{Lines: len(items)}
	for _, item := range items {
		t.TotalInvoice += item.Get(RoleInvoice)
		t.TotalReceived += item.Get(RoleReceived)
		t.TotalShort += item.Get(RoleShort)
		t.TotalDamage += item.Get(RoleDamage)
		t.TotalNet += item.Get(RoleNet)
		t.TotalBinCount += item.Get(RoleBinCount)
	}
	return t
}
