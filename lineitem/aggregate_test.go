package lineitem

import "testing"

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if totals.Lines != 0 || totals.TotalNet != 0 {
		t.Fatalf("empty list must aggregate to zero, got %+v", totals)
	}
}

func TestAggregateSumsNet(t *testing.T) {
	m := grnMapping(t)
	s := NewStore(m)

	for _, qty := range []struct{ inv, rec, dmg string }{
		{"100", "80", "5"}, // net 55
		{"50", "50", "0"},  // net 50
		{"10", "4", "1"},   // net 0 after short 6 and damage 1... net = 4-(6+1) clamps to 0
	} {
		id := s.Insert(NewItem())
		s.Update(id, RoleInvoice, qty.inv)
		s.Update(id, RoleReceived, qty.rec)
		s.Update(id, RoleDamage, qty.dmg)
	}

	totals := Aggregate(s.Items())
	if totals.Lines != 3 {
		t.Fatalf("expected 3 lines got %d", totals.Lines)
	}
	if totals.TotalNet != 105 {
		t.Fatalf("expected total net 105 got %v", totals.TotalNet)
	}
	if totals.TotalReceived != 134 {
		t.Fatalf("expected total received 134 got %v", totals.TotalReceived)
	}
	if totals.TotalShort != 26 {
		t.Fatalf("expected total short 26 got %v", totals.TotalShort)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := Reconcile(grnMapping(t), NewItem(), RoleReceived, "30")
	b := Reconcile(grnMapping(t), NewItem(), RoleReceived, "12")

	fwd := Aggregate([]Item{a, b})
	rev := Aggregate([]Item{b, a})
	if fwd.TotalNet != rev.TotalNet || fwd.TotalReceived != rev.TotalReceived {
		t.Fatalf("aggregation depends on order: %+v vs %+v", fwd, rev)
	}
}

func TestAggregateTreatsMalformedAsZero(t *testing.T) {
	item := NewItem()
	item.Qty[RoleNet] = ParseQuantity("abc")

	totals := Aggregate([]Item{item})
	if totals.TotalNet != 0 {
		t.Fatalf("malformed net must count as zero, got %v", totals.TotalNet)
	}
}
