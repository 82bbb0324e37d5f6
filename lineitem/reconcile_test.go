package lineitem

import "testing"

func grnMapping(t *testing.T) Mapping {
	t.Helper()
	m, ok := MappingFor("grn")
	if !ok {
		t.Fatalf("grn mapping not registered")
	}
	return m
}

func putawayMapping(t *testing.T) Mapping {
	t.Helper()
	m, ok := MappingFor("putaway")
	if !ok {
		t.Fatalf("putaway mapping not registered")
	}
	return m
}

func orderMapping(t *testing.T) Mapping {
	t.Helper()
	m, ok := MappingFor("buyer_order")
	if !ok {
		t.Fatalf("buyer_order mapping not registered")
	}
	return m
}

func TestReconcileShortage(t *testing.T) {
	m := grnMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "100")
	item = Reconcile(m, item, RoleReceived, "80")
	if got := item.Get(RoleShort); got != 20 {
		t.Fatalf("expected short 20 got %v", got)
	}

	item = Reconcile(m, item, RoleReceived, "120")
	if got := item.Get(RoleShort); got != 0 {
		t.Fatalf("over-receipt must clamp short to 0, got %v", got)
	}
}

func TestReconcileNetQuantity(t *testing.T) {
	m := grnMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "100")
	item = Reconcile(m, item, RoleReceived, "80")
	item = Reconcile(m, item, RoleDamage, "5")

	// received=80 short=20 damage=5
	if got := item.Get(RoleNet); got != 55 {
		t.Fatalf("expected net 55 got %v", got)
	}
}

func TestReconcileShortBeforeNetInOneCall(t *testing.T) {
	m := grnMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "100")
	// A single received edit must refresh short first, then net from the
	// refreshed short.
	item = Reconcile(m, item, RoleReceived, "60")
	if got := item.Get(RoleShort); got != 40 {
		t.Fatalf("expected short 40 got %v", got)
	}
	if got := item.Get(RoleNet); got != 20 {
		t.Fatalf("expected net 20 got %v", got)
	}
}

func TestReconcilePickedQuantityIsNet(t *testing.T) {
	m := orderMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "50")
	item = Reconcile(m, item, RoleNet, "30")

	// Picking 30 of 50 ships 30 and leaves 20 short; the shortage must
	// not be subtracted from the shipped quantity again.
	if got := item.Get(RoleShort); got != 20 {
		t.Fatalf("expected short 20 got %v", got)
	}
	if got := item.Get(RoleNet); got != 30 {
		t.Fatalf("expected net 30 got %v", got)
	}
}

func TestReconcileOverPickClampsShort(t *testing.T) {
	m := orderMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "50")
	item = Reconcile(m, item, RoleNet, "60")
	if got := item.Get(RoleShort); got != 0 {
		t.Fatalf("over-pick must clamp short to 0, got %v", got)
	}
	if got := item.Get(RoleNet); got != 60 {
		t.Fatalf("expected net 60 got %v", got)
	}
}

func TestReconcileOrderEditRefreshesShort(t *testing.T) {
	m := orderMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "50")
	item = Reconcile(m, item, RoleNet, "30")
	item = Reconcile(m, item, RoleInvoice, "40")
	if got := item.Get(RoleShort); got != 10 {
		t.Fatalf("expected short 10 after order edit got %v", got)
	}
	if got := item.Get(RoleNet); got != 30 {
		t.Fatalf("order edit must not touch the picked quantity, got %v", got)
	}
}

func TestReconcileBinCount(t *testing.T) {
	m := putawayMapping(t)

	item := Reconcile(m, NewItem(), RoleReceived, "55")
	item = Reconcile(m, item, RoleBinQty, "10")
	if got := item.Get(RoleBinCount); got != 6 {
		t.Fatalf("expected bin count 6 got %v", got)
	}

	item = Reconcile(m, item, RoleBinQty, "0")
	if item.Has(RoleBinCount) {
		t.Fatalf("bin count must be unset when bin qty is zero")
	}
}

func TestReconcileMalformedInputCountsAsZero(t *testing.T) {
	m := grnMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "100")
	item = Reconcile(m, item, RoleReceived, "8x")

	if got := item.Qty[RoleReceived].Raw; got != "8x" {
		t.Fatalf("raw input must be preserved, got %q", got)
	}
	if got := item.Get(RoleShort); got != 100 {
		t.Fatalf("malformed received must count as 0, expected short 100 got %v", got)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	m := grnMapping(t)

	item := Reconcile(m, NewItem(), RoleInvoice, "100")
	once := Reconcile(m, item, RoleReceived, "80")
	twice := Reconcile(m, once, RoleReceived, "80")

	for _, role := range []Role{RoleInvoice, RoleReceived, RoleShort, RoleDamage, RoleNet} {
		if once.Get(role) != twice.Get(role) {
			t.Fatalf("role %s drifted on repeat: %v vs %v", role, once.Get(role), twice.Get(role))
		}
	}
}

func TestReconcileIgnoresUnmappedRole(t *testing.T) {
	m := putawayMapping(t)

	item := Reconcile(m, NewItem(), RoleDamage, "5")
	if item.Has(RoleDamage) {
		t.Fatalf("putaway rows must not accept a damage quantity")
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	m := grnMapping(t)

	orig := Reconcile(m, NewItem(), RoleInvoice, "100")
	_ = Reconcile(m, orig, RoleReceived, "80")
	if orig.Has(RoleReceived) {
		t.Fatalf("input row mutated by reconcile")
	}
}
