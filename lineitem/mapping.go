package lineitem

// Role is the logical meaning of a quantity column, independent of the
// wire name a given screen uses for it.
type Role string

const (
	RoleInvoice  Role = "invoice"
	RoleReceived Role = "received"
	RoleShort    Role = "short"
	RoleDamage   Role = "damage"
	RoleNet      Role = "net"
	RoleBinQty   Role = "bin_qty"
	RoleBinCount Role = "bin_count"
)

// Mapping binds engine roles to the wire field names of one document type.
// A role missing from Wire does not exist on that screen and is never
// computed for it.
type Mapping struct {
	DocType string
	Wire    map[Role]string
}

func (m Mapping) Has(role Role) bool {
	_, ok := m.Wire[role]
	return ok
}

// WireName returns the JSON field name a role is serialized as.
func (m Mapping) WireName(role Role) string {
	return m.Wire[role]
}

var mappings = map[string]Mapping{
	"gate_pass": {
		DocType: "gate_pass",
		Wire: map[Role]string{
			RoleInvoice:  "invoice_qty",
			RoleReceived: "received_qty",
			RoleShort:    "short_qty",
			RoleDamage:   "damage_qty",
			RoleNet:      "net_qty",
		},
	},
	"grn": {
		DocType: "grn",
		Wire: map[Role]string{
			RoleInvoice:  "invoice_qty",
			RoleReceived: "received_qty",
			RoleShort:    "short_qty",
			RoleDamage:   "damage_qty",
			RoleNet:      "grn_qty",
		},
	},
	"putaway": {
		DocType: "putaway",
		Wire: map[Role]string{
			RoleReceived: "received_qty",
			RoleNet:      "putaway_qty",
			RoleBinQty:   "bin_qty",
			RoleBinCount: "bin_count",
		},
	},
	// The picking screens have no received role: the picked (or returned)
	// quantity is the net quantity itself and is keyed directly, so it is
	// what completion moves out of (or back into) stock.
	"buyer_order": {
		DocType: "buyer_order",
		Wire: map[Role]string{
			RoleInvoice: "order_qty",
			RoleShort:   "short_qty",
			RoleNet:     "pick_qty",
		},
	},
	"reverse_pick": {
		DocType: "reverse_pick",
		Wire: map[Role]string{
			RoleInvoice: "pick_qty",
			RoleShort:   "short_qty",
			RoleNet:     "return_qty",
		},
	},
}

// MappingFor looks up the field mapping of a document type.
func MappingFor(docType string) (Mapping, bool) {
	m, ok := mappings[docType]
	return m, ok
}
