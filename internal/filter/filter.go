// Package filter composes the operator's filter state into the visible row
// set. State is a plain value: deriving visibility is a pure function over
// the entry collection, so there is no hidden coupling between a toggle and
// the rows it affects.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ufwtail/ufwtail/internal/netclass"
	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

// Field names one of the six free-text criteria.
type Field int

const (
	FieldService Field = iota
	FieldPort
	FieldIP
	FieldAction
	FieldProto
	FieldText

	numFields
)

// Fields lists all criteria fields in display order.
func Fields() []Field {
	fields := make([]Field, 0, numFields)
	for f := Field(0); f < numFields; f++ {
		fields = append(fields, f)
	}
	return fields
}

// Label returns the operator-facing name of the field.
func (f Field) Label() string {
	switch f {
	case FieldService:
		return "service"
	case FieldPort:
		return "port"
	case FieldIP:
		return "ip"
	case FieldAction:
		return "action"
	case FieldProto:
		return "protocol"
	case FieldText:
		return "text"
	default:
		return "?"
	}
}

// Criteria holds the six free-text filter values. Empty means inactive.
type Criteria struct {
	Service string
	Port    string
	IP      string
	Action  string
	Proto   string
	Text    string
}

// Value returns the current value of one field.
func (c Criteria) Value(field Field) string {
	switch field {
	case FieldService:
		return c.Service
	case FieldPort:
		return c.Port
	case FieldIP:
		return c.IP
	case FieldAction:
		return c.Action
	case FieldProto:
		return c.Proto
	case FieldText:
		return c.Text
	default:
		return ""
	}
}

// WithValue returns a copy of the criteria with one field replaced. The
// value is trimmed; setting an empty value clears just that field.
func (c Criteria) WithValue(field Field, value string) Criteria {
	value = strings.TrimSpace(value)
	switch field {
	case FieldService:
		c.Service = value
	case FieldPort:
		c.Port = value
	case FieldIP:
		c.IP = value
	case FieldAction:
		c.Action = value
	case FieldProto:
		c.Proto = value
	case FieldText:
		c.Text = value
	}
	return c
}

// ActiveCount returns how many criteria are non-empty.
func (c Criteria) ActiveCount() int {
	count := 0
	for _, f := range Fields() {
		if c.Value(f) != "" {
			count++
		}
	}
	return count
}

// Matches applies every non-empty criterion to the entry. Text criteria use
// case-insensitive substring containment; the port criterion requires exact
// equality with either port when it parses as an integer, and falls back to
// substring matching against the decimal port strings otherwise.
func (c Criteria) Matches(entry ufwlog.Entry) bool {
	if c.Service != "" && !containsFold(entry.Service, c.Service) {
		return false
	}

	if c.Port != "" {
		wanted := strings.TrimSpace(c.Port)
		if port, err := strconv.ParseUint(wanted, 10, 16); err == nil {
			if !portEquals(entry.SrcPort, uint16(port)) && !portEquals(entry.DstPort, uint16(port)) {
				return false
			}
		} else {
			src := portString(entry.SrcPort)
			dst := portString(entry.DstPort)
			if !strings.Contains(src, wanted) && !strings.Contains(dst, wanted) {
				return false
			}
		}
	}

	if c.IP != "" && !containsFold(entry.SrcIP, c.IP) && !containsFold(entry.DstIP, c.IP) {
		return false
	}
	if c.Action != "" && !containsFold(entry.Action, c.Action) {
		return false
	}
	if c.Proto != "" && !containsFold(entry.Proto, c.Proto) {
		return false
	}
	if c.Text != "" && !containsFold(entry.Raw, c.Text) {
		return false
	}
	return true
}

// State is the complete filter configuration. It is a value type: every
// mutation produces a new state, and visibility is recomputed from scratch.
type State struct {
	Criteria     Criteria
	ShowLocalSrc bool
	ShowWANSrc   bool
	Flow         netclass.Flow
	Direction    netclass.DirectionMode
	Interface    string // empty selects all interfaces
}

// DefaultState hides local-source rows and shows WAN-source rows, matching
// the viewer's startup posture.
func DefaultState() State {
	return State{ShowWANSrc: true}
}

// Accepts reports whether a single entry passes every active criterion.
func (s State) Accepts(entry ufwlog.Entry) bool {
	if s.Interface != "" {
		inMatch := entry.InIface != nil && *entry.InIface == s.Interface
		outMatch := entry.OutIface != nil && *entry.OutIface == s.Interface
		if !inMatch && !outMatch {
			return false
		}
	}
	if !s.ShowLocalSrc && netclass.IsLocal(entry.SrcIP) {
		return false
	}
	if !s.ShowWANSrc && netclass.IsWAN(entry.SrcIP) {
		return false
	}
	if !netclass.MatchesFlow(s.Flow, entry) {
		return false
	}
	if !netclass.MatchesDirection(s.Direction, entry) {
		return false
	}
	return s.Criteria.Matches(entry)
}

// VisibleIndices returns the indices of entries passing the state, in the
// same order as the input. Filtering never reorders.
func VisibleIndices(entries []ufwlog.Entry, state State) []int {
	indices := make([]int, 0, len(entries))
	for i, entry := range entries {
		if state.Accepts(entry) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Interfaces rebuilds the interface catalogue from the entry collection:
// every non-empty input or output interface counted, sorted by descending
// occurrence count, ties broken by ascending name.
func Interfaces(entries []ufwlog.Entry) []string {
	counts := make(map[string]int)
	for _, entry := range entries {
		for _, iface := range []*string{entry.InIface, entry.OutIface} {
			if iface == nil || *iface == "" {
				continue
			}
			counts[*iface]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func portEquals(port *uint16, wanted uint16) bool {
	return port != nil && *port == wanted
}

func portString(port *uint16) string {
	if port == nil {
		return ""
	}
	return strconv.Itoa(int(*port))
}
