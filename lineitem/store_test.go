package lineitem

import "testing"

func newRow(partNo string) Item {
	item := NewItem()
	item.PartNo = partNo
	return item
}

func TestStoreInsertAssignsUniqueIDs(t *testing.T) {
	s := NewStore(grnMapping(t))

	a := s.Insert(newRow("A"))
	b := s.Insert(newRow("B"))
	if a == b {
		t.Fatalf("ids must be unique, got %d twice", a)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 rows got %d", s.Len())
	}
}

func TestStoreUpdateIsolation(t *testing.T) {
	s := NewStore(grnMapping(t))

	a := s.Insert(newRow("A"))
	b := s.Insert(newRow("B"))
	s.Update(a, RoleInvoice, "10")
	s.Update(b, RoleInvoice, "99")
	before, _ := s.Get(a)

	s.Update(b, RoleReceived, "40")

	after, _ := s.Get(a)
	for _, role := range []Role{RoleInvoice, RoleReceived, RoleShort, RoleNet} {
		if before.Get(role) != after.Get(role) {
			t.Fatalf("untouched row changed at role %s", role)
		}
	}
	updated, _ := s.Get(b)
	if got := updated.Get(RoleShort); got != 59 {
		t.Fatalf("expected short 59 on updated row got %v", got)
	}
}

func TestStoreInsertDuplicateIDReplaces(t *testing.T) {
	s := NewStore(grnMapping(t))

	first := newRow("A")
	first.ID = 500
	second := newRow("B")
	second.ID = 500
	s.Insert(first)
	s.Insert(second)

	if s.Len() != 1 {
		t.Fatalf("duplicate id must replace, got %d rows", s.Len())
	}
	row, ok := s.Get(500)
	if !ok || row.PartNo != "B" {
		t.Fatalf("expected the later row under id 500, got %+v", row)
	}

	s.Update(500, RoleInvoice, "10")
	row, _ = s.Get(500)
	if got := row.Get(RoleInvoice); got != 10 {
		t.Fatalf("update after duplicate insert targeted the wrong row: %v", got)
	}
}

func TestStoreUpdateUnknownIDIsNoop(t *testing.T) {
	s := NewStore(grnMapping(t))
	s.Insert(newRow("A"))

	s.Update(12345, RoleInvoice, "10")
	s.Remove(12345)

	if s.Len() != 1 {
		t.Fatalf("unknown id must not change the store")
	}
}

func TestStoreRemoveKeepsOrderAndRetiresID(t *testing.T) {
	s := NewStore(grnMapping(t))

	a := s.Insert(newRow("A"))
	b := s.Insert(newRow("B"))
	c := s.Insert(newRow("C"))

	s.Remove(b)

	items := s.Items()
	if len(items) != 2 || items[0].ID != a || items[1].ID != c {
		t.Fatalf("expected order [%d %d] got %+v", a, c, items)
	}

	d := s.Insert(newRow("D"))
	if d == b {
		t.Fatalf("removed id %d was reused", b)
	}
}

func TestStoreReplaceAllAtomic(t *testing.T) {
	s := NewStore(grnMapping(t))
	s.Insert(newRow("OLD1"))
	s.Insert(newRow("OLD2"))
	s.Insert(newRow("OLD3"))

	hydrated := newRow("NEW1")
	hydrated.ID = 900100 // server-assigned
	s.ReplaceAll([]Item{hydrated, newRow("NEW2")})

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected exactly the replacement rows, got %d", len(items))
	}
	if items[0].PartNo != "NEW1" || items[1].PartNo != "NEW2" {
		t.Fatalf("replacement order not preserved: %+v", items)
	}
	if items[0].ID != 900100 {
		t.Fatalf("server-assigned id lost: %d", items[0].ID)
	}
	if items[1].ID == 0 {
		t.Fatalf("zero-id row not assigned an id")
	}
	if next := s.Insert(newRow("NEW3")); next <= 900100 {
		t.Fatalf("fresh ids must stay above hydrated ids, got %d", next)
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(grnMapping(t))
	s.Insert(newRow("A"))
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("clear left %d rows", s.Len())
	}
}

func TestStoreItemsAreCopies(t *testing.T) {
	s := NewStore(grnMapping(t))
	id := s.Insert(newRow("A"))

	items := s.Items()
	items[0].Qty[RoleInvoice] = ParseQuantity("77")

	row, _ := s.Get(id)
	if row.Has(RoleInvoice) {
		t.Fatalf("mutating a returned row leaked into the store")
	}
}
