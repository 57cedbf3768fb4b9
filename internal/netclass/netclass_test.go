package netclass

import (
	"testing"

	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

func TestIsLocal(t *testing.T) {
	cases := []struct {
		name string
		ip   string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"ten net", "10.0.0.5", true},
		{"loopback", "127.0.0.1", true},
		{"rfc1918 192", "192.168.1.10", true},
		{"rfc1918 172 low", "172.16.0.1", true},
		{"rfc1918 172 high", "172.31.255.254", true},
		{"172 outside range", "172.32.0.1", false},
		{"172 below range", "172.15.0.1", false},
		{"link local v4", "169.254.10.20", true},
		{"public v4", "8.8.8.8", false},
		{"v6 loopback", "::1", true},
		{"v6 link local", "FE80::1", true},
		{"v6 unique local fc", "fc00::1", true},
		{"v6 unique local fd", "fd12:3456::1", true},
		{"v6 global", "2001:db8::1", false},
		{"three octets", "10.0.0", false},
		{"five octets", "10.0.0.1.2", false},
		{"octet overflow", "10.0.0.256", false},
		{"garbage", "not-an-ip", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLocal(tc.ip); got != tc.want {
				t.Fatalf("IsLocal(%q) = %v, want %v", tc.ip, got, tc.want)
			}
		})
	}
}

func TestIsWAN(t *testing.T) {
	cases := []struct {
		name string
		ip   string
		want bool
	}{
		{"empty", "", false},
		{"public v4", "8.8.8.8", true},
		{"local v4", "192.168.1.1", false},
		{"unspecified v4", "0.0.0.0", false},
		{"multicast v4", "224.0.0.1", false},
		{"unspecified v6", "::", false},
		{"multicast v6", "ff02::1", false},
		{"global v6", "2001:db8::1", true},
		{"unparseable", "999.1.1.1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWAN(tc.ip); got != tc.want {
				t.Fatalf("IsWAN(%q) = %v, want %v", tc.ip, got, tc.want)
			}
		})
	}
}

func TestLocalAndWANAreComplementary(t *testing.T) {
	// Over valid, non-unspecified, non-multicast addresses the two
	// classifications partition the space.
	valid := []string{
		"10.0.0.5", "127.0.0.1", "192.168.1.10", "172.20.0.1",
		"169.254.1.1", "8.8.8.8", "1.1.1.1", "203.0.113.9",
		"::1", "fe80::1", "fd00::1", "2001:db8::1", "2606:4700::1",
	}
	for _, ip := range valid {
		if IsLocal(ip) == IsWAN(ip) {
			t.Errorf("IsLocal(%q) == IsWAN(%q) == %v, want complementary", ip, ip, IsLocal(ip))
		}
	}
}

func TestIsWANCandidateInterface(t *testing.T) {
	cases := []struct {
		name  string
		iface string
		want  bool
	}{
		{"loopback", "lo", false},
		{"docker bridge", "docker0", false},
		{"veth pair", "veth1234", false},
		{"libvirt bridge", "virbr0", false},
		{"compose bridge", "br-123abc", false},
		{"tailscale", "tailscale0", false},
		{"tun", "tun0", false},
		{"tap", "tap0", false},
		{"wireguard", "wg0", false},
		{"ethernet en", "enp3s0", true},
		{"ethernet eth", "eth0", true},
		{"wireless", "wlan0", true},
		{"wwan modem", "wwan0", true},
		{"ppp", "ppp0", true},
		{"wan anywhere", "mywan1", true},
		{"case insensitive exclude", "DOCKER0", false},
		{"case insensitive include", "ETH0", true},
		{"unknown", "ibp0", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWANCandidateInterface(tc.iface); got != tc.want {
				t.Fatalf("IsWANCandidateInterface(%q) = %v, want %v", tc.iface, got, tc.want)
			}
		})
	}
}

func TestDefaultWANInterface(t *testing.T) {
	cases := []struct {
		name      string
		catalogue []string
		want      string
		ok        bool
	}{
		{"candidate present", []string{"docker0", "lo", "wlan0", "br-123"}, "wlan0", true},
		{"no candidate falls back to first", []string{"docker0", "lo"}, "docker0", true},
		{"empty catalogue", nil, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DefaultWANInterface(tc.catalogue)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("DefaultWANInterface(%v) = %q, %v, want %q, %v", tc.catalogue, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMatchesFlow(t *testing.T) {
	localToExternal := ufwlog.Entry{SrcIP: "192.168.1.10", DstIP: "8.8.8.8"}
	localToLocal := ufwlog.Entry{SrcIP: "192.168.1.10", DstIP: "192.168.1.20"}

	if !MatchesFlow(FlowAll, localToExternal) || !MatchesFlow(FlowAll, localToLocal) {
		t.Fatal("FlowAll must match everything")
	}
	if !MatchesFlow(FlowLocalToExternal, localToExternal) {
		t.Fatal("local->external entry must match FlowLocalToExternal")
	}
	if MatchesFlow(FlowLocalToLocal, localToExternal) {
		t.Fatal("local->external entry must not match FlowLocalToLocal")
	}
	if !MatchesFlow(FlowLocalToLocal, localToLocal) {
		t.Fatal("local->local entry must match FlowLocalToLocal")
	}
	if MatchesFlow(FlowLocalToExternal, localToLocal) {
		t.Fatal("local->local entry must not match FlowLocalToExternal")
	}
}

func TestMatchesDirection(t *testing.T) {
	in := "eth0"
	out := "eth1"
	inbound := ufwlog.Entry{InIface: &in}
	outbound := ufwlog.Entry{OutIface: &out}
	forwarded := ufwlog.Entry{InIface: &in, OutIface: &out}
	unknown := ufwlog.Entry{}

	for _, e := range []ufwlog.Entry{inbound, outbound, forwarded, unknown} {
		if !MatchesDirection(DirectionBoth, e) {
			t.Fatal("DirectionBoth must match everything")
		}
	}
	if !MatchesDirection(DirectionInbound, inbound) || MatchesDirection(DirectionInbound, outbound) {
		t.Fatal("DirectionInbound mismatch")
	}
	if !MatchesDirection(DirectionOutbound, outbound) || MatchesDirection(DirectionOutbound, forwarded) {
		t.Fatal("DirectionOutbound mismatch")
	}
	if !MatchesDirection(DirectionForwarded, forwarded) || MatchesDirection(DirectionForwarded, unknown) {
		t.Fatal("DirectionForwarded mismatch")
	}
}

func TestModeCycles(t *testing.T) {
	if got := FlowAll.Next().Next().Next(); got != FlowAll {
		t.Fatalf("flow cycle does not return to FlowAll, got %v", got)
	}
	if got := DirectionBoth.Next().Next().Next().Next(); got != DirectionBoth {
		t.Fatalf("direction cycle does not return to DirectionBoth, got %v", got)
	}
}
