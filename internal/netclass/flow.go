package netclass

import "github.com/ufwtail/ufwtail/internal/ufwlog"

// Flow is the three-valued endpoint classifier cycled by the flow filter.
type Flow int

const (
	FlowAll Flow = iota
	FlowLocalToLocal
	FlowLocalToExternal
)

// Next returns the following flow mode in cycle order.
func (f Flow) Next() Flow {
	switch f {
	case FlowAll:
		return FlowLocalToLocal
	case FlowLocalToLocal:
		return FlowLocalToExternal
	default:
		return FlowAll
	}
}

// Label returns the status-line form of the mode.
func (f Flow) Label() string {
	switch f {
	case FlowLocalToLocal:
		return "local->local"
	case FlowLocalToExternal:
		return "local->external"
	default:
		return "all"
	}
}

// MatchesFlow reports whether the entry's endpoints satisfy the flow mode.
func MatchesFlow(flow Flow, entry ufwlog.Entry) bool {
	switch flow {
	case FlowLocalToLocal:
		return IsLocal(entry.SrcIP) && IsLocal(entry.DstIP)
	case FlowLocalToExternal:
		return IsLocal(entry.SrcIP) && IsWAN(entry.DstIP)
	default:
		return true
	}
}

// DirectionMode is the four-valued direction filter.
type DirectionMode int

const (
	DirectionBoth DirectionMode = iota
	DirectionInbound
	DirectionOutbound
	DirectionForwarded
)

// Next returns the following direction mode in cycle order.
func (m DirectionMode) Next() DirectionMode {
	switch m {
	case DirectionBoth:
		return DirectionInbound
	case DirectionInbound:
		return DirectionOutbound
	case DirectionOutbound:
		return DirectionForwarded
	default:
		return DirectionBoth
	}
}

// Label returns the status-line form of the mode.
func (m DirectionMode) Label() string {
	switch m {
	case DirectionInbound:
		return "in"
	case DirectionOutbound:
		return "out"
	case DirectionForwarded:
		return "forwarded"
	default:
		return "in+out"
	}
}

// MatchesDirection reports whether the entry's derived direction satisfies
// the mode. Entries with unknown direction match only DirectionBoth.
func MatchesDirection(mode DirectionMode, entry ufwlog.Entry) bool {
	switch mode {
	case DirectionInbound:
		return entry.Direction() == ufwlog.DirectionIn
	case DirectionOutbound:
		return entry.Direction() == ufwlog.DirectionOut
	case DirectionForwarded:
		return entry.Direction() == ufwlog.DirectionForwarded
	default:
		return true
	}
}
