package ufwlog

// Entry is one parsed firewall log record. Entries are immutable once built;
// Raw holds the verbatim source line and is the only stable identity an entry
// has across reloads.
//
// Optional string fields use pointers because the logs distinguish a missing
// key from a key that is present with an empty value (OUT= is routine on
// inbound traffic). Both mean "no interface" for direction purposes, but
// neither is a parse failure.
type Entry struct {
	Timestamp string
	Action    string
	InIface   *string
	OutIface  *string
	SrcIP     string
	DstIP     string
	SrcPort   *uint16
	DstPort   *uint16
	Proto     string
	Service   string
	Raw       string
}

// Direction classifies a packet by which interfaces it touched.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionIn
	DirectionOut
	DirectionForwarded
)

// String returns the short display form used in table rows.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	case DirectionForwarded:
		return "FWD"
	default:
		return "?"
	}
}

// Direction derives the packet direction from interface presence: only an
// input interface means inbound, only an output interface means outbound,
// both mean forwarded.
func (e Entry) Direction() Direction {
	hasIn := e.InIface != nil && *e.InIface != ""
	hasOut := e.OutIface != nil && *e.OutIface != ""
	switch {
	case hasIn && hasOut:
		return DirectionForwarded
	case hasIn:
		return DirectionIn
	case hasOut:
		return DirectionOut
	default:
		return DirectionUnknown
	}
}

// IfaceOrEmpty dereferences an optional interface field.
func IfaceOrEmpty(iface *string) string {
	if iface == nil {
		return ""
	}
	return *iface
}
