package filter

import (
	"reflect"
	"testing"

	"github.com/ufwtail/ufwtail/internal/netclass"
	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

func strptr(s string) *string { return &s }

func portptr(p uint16) *uint16 { return &p }

func testEntries() []ufwlog.Entry {
	return []ufwlog.Entry{
		{ // 0: WAN -> local inbound ssh
			Action: "BLOCK", InIface: strptr("eth0"), OutIface: strptr(""),
			SrcIP: "203.0.113.7", DstIP: "192.168.1.10",
			SrcPort: portptr(55123), DstPort: portptr(22),
			Proto: "TCP", Service: "ssh",
			Raw: "Feb 11 20:21:00 host kernel: [UFW BLOCK] IN=eth0 OUT= SRC=203.0.113.7 DST=192.168.1.10 PROTO=TCP SPT=55123 DPT=22",
		},
		{ // 1: local -> WAN outbound https
			Action: "ALLOW", OutIface: strptr("eth0"),
			SrcIP: "192.168.1.10", DstIP: "8.8.8.8",
			SrcPort: portptr(40000), DstPort: portptr(443),
			Proto: "TCP", Service: "https",
			Raw: "Feb 11 20:21:01 host kernel: [UFW ALLOW] OUT=eth0 SRC=192.168.1.10 DST=8.8.8.8 PROTO=TCP SPT=40000 DPT=443",
		},
		{ // 2: local -> local forwarded dns over the bridge
			Action: "ALLOW", InIface: strptr("br-lan"), OutIface: strptr("eth0"),
			SrcIP: "192.168.1.20", DstIP: "192.168.1.1",
			SrcPort: portptr(5353), DstPort: portptr(53),
			Proto: "UDP", Service: "domain",
			Raw: "Feb 11 20:21:02 host kernel: [UFW ALLOW] IN=br-lan OUT=eth0 SRC=192.168.1.20 DST=192.168.1.1 PROTO=UDP SPT=5353 DPT=53",
		},
	}
}

// allVisible is a state with every restriction disabled.
func allVisible() State {
	return State{ShowLocalSrc: true, ShowWANSrc: true}
}

func TestVisibleIndicesPreservesOrder(t *testing.T) {
	entries := testEntries()
	got := VisibleIndices(entries, allVisible())
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("VisibleIndices = %v, want [0 1 2]", got)
	}
}

func TestDefaultStateHidesLocalSources(t *testing.T) {
	entries := testEntries()
	got := VisibleIndices(entries, DefaultState())
	// Only the WAN-sourced entry survives.
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("VisibleIndices = %v, want [0]", got)
	}
}

func TestToggleWANHidesWANSources(t *testing.T) {
	entries := testEntries()
	state := allVisible()
	state.ShowWANSrc = false
	got := VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("VisibleIndices = %v, want [1 2]", got)
	}
}

func TestInterfaceSelection(t *testing.T) {
	entries := testEntries()
	state := allVisible()
	state.Interface = "br-lan"
	got := VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("VisibleIndices = %v, want [2]", got)
	}

	// Matches either side of the packet.
	state.Interface = "eth0"
	got = VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Fatalf("VisibleIndices = %v, want [0 1 2]", got)
	}

	// Present-but-empty interfaces never equal a selected name.
	state.Interface = ""
	got = VisibleIndices(entries, state)
	if len(got) != 3 {
		t.Fatalf("empty interface selection must mean all, got %v", got)
	}
}

func TestFlowAndDirectionComposition(t *testing.T) {
	entries := testEntries()
	state := allVisible()
	state.Flow = netclass.FlowLocalToExternal
	got := VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("local->external = %v, want [1]", got)
	}

	state.Flow = netclass.FlowLocalToLocal
	got = VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("local->local = %v, want [2]", got)
	}

	state = allVisible()
	state.Direction = netclass.DirectionForwarded
	got = VisibleIndices(entries, state)
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("forwarded = %v, want [2]", got)
	}
}

func TestCriteriaTextMatching(t *testing.T) {
	entries := testEntries()
	cases := []struct {
		name  string
		field Field
		value string
		want  []int
	}{
		{"service substring", FieldService, "ssh", []int{0}},
		{"service case-insensitive", FieldService, "SSH", []int{0}},
		{"ip matches src or dst", FieldIP, "192.168.1.10", []int{0, 1}},
		{"action substring", FieldAction, "block", []int{0}},
		{"protocol", FieldProto, "udp", []int{2}},
		{"raw text", FieldText, "dpt=443", []int{1}},
		{"no match", FieldText, "nonexistent", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := allVisible()
			state.Criteria = state.Criteria.WithValue(tc.field, tc.value)
			got := VisibleIndices(entries, state)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("VisibleIndices = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPortCriterion(t *testing.T) {
	entries := testEntries()
	cases := []struct {
		name  string
		value string
		want  []int
	}{
		{"numeric exact dst", "22", []int{0}},
		{"numeric exact src", "40000", []int{1}},
		{"numeric no substring match", "2", []int{}}, // 22, 5123... would substring-match, but 2 parses as int
		{"non-numeric falls back to substring", "40x", []int{}},
		{"overflow falls back to substring", "99999", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := allVisible()
			state.Criteria = state.Criteria.WithValue(FieldPort, tc.value)
			got := VisibleIndices(entries, state)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("VisibleIndices(port=%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestCriteriaAbsentPortRendersEmpty(t *testing.T) {
	entry := ufwlog.Entry{Raw: "x"}
	c := Criteria{}.WithValue(FieldPort, "4")
	if c.Matches(entry) {
		t.Fatal("absent ports must not substring-match a digit")
	}
}

func TestClearingOneCriterionLeavesOthers(t *testing.T) {
	c := Criteria{}.
		WithValue(FieldService, "ssh").
		WithValue(FieldProto, "tcp")
	c = c.WithValue(FieldService, "")
	if c.Service != "" {
		t.Fatalf("Service = %q, want cleared", c.Service)
	}
	if c.Proto != "tcp" {
		t.Fatalf("Proto = %q, want tcp untouched", c.Proto)
	}
	if c.ActiveCount() != 1 {
		t.Fatalf("ActiveCount = %d, want 1", c.ActiveCount())
	}
}

func TestMonotonicity(t *testing.T) {
	// Adding any single restrictive criterion never grows the visible set.
	entries := testEntries()
	base := allVisible()
	baseCount := len(VisibleIndices(entries, base))

	restricted := []State{}
	for _, f := range Fields() {
		s := base
		s.Criteria = s.Criteria.WithValue(f, "a")
		restricted = append(restricted, s)
	}
	s := base
	s.ShowLocalSrc = false
	restricted = append(restricted, s)
	s = base
	s.ShowWANSrc = false
	restricted = append(restricted, s)
	s = base
	s.Flow = netclass.FlowLocalToLocal
	restricted = append(restricted, s)
	s = base
	s.Direction = netclass.DirectionInbound
	restricted = append(restricted, s)
	s = base
	s.Interface = "eth0"
	restricted = append(restricted, s)

	for i, st := range restricted {
		if got := len(VisibleIndices(entries, st)); got > baseCount {
			t.Errorf("restriction %d grew visible count: %d > %d", i, got, baseCount)
		}
	}
}

func TestInterfaces(t *testing.T) {
	entries := testEntries()
	got := Interfaces(entries)
	// eth0 appears three times, br-lan once; the empty OUT= value on entry 0
	// is never counted.
	want := []string{"eth0", "br-lan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Interfaces = %v, want %v", got, want)
	}
}

func TestInterfacesTieBreakByName(t *testing.T) {
	entries := []ufwlog.Entry{
		{InIface: strptr("wlan0")},
		{InIface: strptr("eth0")},
	}
	got := Interfaces(entries)
	want := []string{"eth0", "wlan0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Interfaces = %v, want %v", got, want)
	}
}
