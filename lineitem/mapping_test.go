package lineitem

import "testing"

// The wire name of the net role differs per screen; the screens and the
// bulk formats depend on these exact names.
func TestMappingNetWireNames(t *testing.T) {
	cases := map[string]string{
		"gate_pass":    "net_qty",
		"grn":          "grn_qty",
		"putaway":      "putaway_qty",
		"buyer_order":  "pick_qty",
		"reverse_pick": "return_qty",
	}

	for docType, want := range cases {
		m, ok := MappingFor(docType)
		if !ok {
			t.Fatalf("%s mapping not registered", docType)
		}
		if got := m.WireName(RoleNet); got != want {
			t.Fatalf("%s: net wire name %q, want %q", docType, got, want)
		}
	}
}

// The receiving screens derive net from received; the picking screens
// have no received role and take the picked quantity as the net.
func TestMappingRoleFamilies(t *testing.T) {
	for _, docType := range []string{"gate_pass", "grn", "putaway"} {
		m, _ := MappingFor(docType)
		if !m.Has(RoleReceived) {
			t.Fatalf("%s must map the received role", docType)
		}
	}
	for _, docType := range []string{"buyer_order", "reverse_pick"} {
		m, _ := MappingFor(docType)
		if m.Has(RoleReceived) {
			t.Fatalf("%s must not map the received role", docType)
		}
		if !m.Has(RoleInvoice) || !m.Has(RoleShort) {
			t.Fatalf("%s must map the base and shortage roles", docType)
		}
	}
}

func TestMappingForUnknownDocType(t *testing.T) {
	if _, ok := MappingFor("unknown"); ok {
		t.Fatalf("unknown document type must not resolve to a mapping")
	}
}
