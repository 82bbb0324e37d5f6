package lineitem

import "testing"

func TestResolveFromParentRoundTrip(t *testing.T) {
	m := grnMapping(t)
	parent := ParentRecord{
		Header: map[string]string{"supplier_code": "SUP01", "invoice_no": "INV-9"},
		Rows: []ParentRow{
			{PartNo: "P-1", Description: "Widget", SKU: "SKU1", BatchNo: "B1",
				Qty: map[Role]float64{RoleInvoice: 100, RoleReceived: 80}},
			{PartNo: "P-2", Description: "Gadget", SKU: "SKU2", BatchNo: "B2",
				Qty: map[Role]float64{RoleInvoice: 40, RoleReceived: 40}},
		},
	}

	carry := map[Role]Role{RoleInvoice: RoleInvoice, RoleReceived: RoleReceived}
	res := ResolveFromParent(m, carry, parent)

	if len(res.Items) != len(parent.Rows) {
		t.Fatalf("expected %d items got %d", len(parent.Rows), len(res.Items))
	}
	if res.Header["supplier_code"] != "SUP01" {
		t.Fatalf("header field not carried: %+v", res.Header)
	}
	first := res.Items[0]
	if first.PartNo != "P-1" || first.SKU != "SKU1" || first.BatchNo != "B1" {
		t.Fatalf("identity fields not carried: %+v", first)
	}
	if first.Get(RoleInvoice) != 100 || first.Get(RoleReceived) != 80 {
		t.Fatalf("quantities not carried: %+v", first.Qty)
	}
	// Seeded rows are reconciled, so the derived fields are already right.
	if first.Get(RoleShort) != 20 || first.Get(RoleNet) != 60 {
		t.Fatalf("seeded row not reconciled: short=%v net=%v",
			first.Get(RoleShort), first.Get(RoleNet))
	}
}

func TestResolveFromParentTranslatesRoles(t *testing.T) {
	m := putawayMapping(t)
	parent := ParentRecord{
		Header: map[string]string{"grn_no": "GRN-1"},
		Rows: []ParentRow{
			{PartNo: "P-1", Qty: map[Role]float64{RoleNet: 55}},
		},
	}

	// A GRN's net quantity becomes the putaway's received quantity.
	res := ResolveFromParent(m, map[Role]Role{RoleNet: RoleReceived}, parent)
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item got %d", len(res.Items))
	}
	if got := res.Items[0].Get(RoleReceived); got != 55 {
		t.Fatalf("expected received 55 got %v", got)
	}
	if res.Items[0].Has(RoleBinQty) {
		t.Fatalf("bin qty must start unset on seeded putaway rows")
	}
}

func TestResolveFromParentMalformed(t *testing.T) {
	m := grnMapping(t)
	res := ResolveFromParent(m, nil, ParentRecord{
		Header: map[string]string{"supplier_code": "SUP01"},
	})

	if len(res.Items) != 0 {
		t.Fatalf("malformed parent must resolve to an empty list")
	}
	if len(res.Header) != 0 {
		t.Fatalf("malformed parent must not populate header fields")
	}
}

func TestResolveThenReplaceAll(t *testing.T) {
	m := grnMapping(t)
	s := NewStore(m)
	s.Insert(newRow("STALE"))

	parent := ParentRecord{
		Header: map[string]string{},
		Rows:   []ParentRow{{PartNo: "P-1"}, {PartNo: "P-2"}, {PartNo: "P-3"}},
	}
	res := ResolveFromParent(m, nil, parent)
	s.ReplaceAll(res.Items)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("replace after resolve left %d rows", len(items))
	}
	for i, item := range items {
		if item.ID == 0 {
			t.Fatalf("row %d has no id after replace", i)
		}
	}
}
