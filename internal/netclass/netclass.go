// Package netclass classifies addresses and interface names as local or
// wide-area. All functions are pure and treat unparseable input as a
// classification result, never an error.
package netclass

import (
	"net/netip"
	"strconv"
	"strings"
)

// IsLocal reports whether ip falls in a private, loopback, or link-local
// range. Empty or unparseable input is not local.
func IsLocal(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false
	}

	lower := strings.ToLower(ip)
	if lower == "::1" ||
		strings.HasPrefix(lower, "fe80:") ||
		strings.HasPrefix(lower, "fc") ||
		strings.HasPrefix(lower, "fd") {
		return true
	}

	octets, ok := ipv4Octets(ip)
	if !ok {
		return false
	}
	switch {
	case octets[0] == 10:
		return true
	case octets[0] == 127:
		return true
	case octets[0] == 192 && octets[1] == 168:
		return true
	case octets[0] == 172 && octets[1] >= 16 && octets[1] <= 31:
		return true
	case octets[0] == 169 && octets[1] == 254:
		return true
	default:
		return false
	}
}

// IsWAN reports whether ip is a valid, non-special address outside the local
// ranges. Unspecified and multicast addresses are neither local nor WAN.
func IsWAN(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	if addr.IsUnspecified() || addr.IsMulticast() {
		return false
	}
	return !IsLocal(ip)
}

// ipv4Octets parses a strict dotted quad: exactly four parts, each an 8-bit
// decimal number.
func ipv4Octets(ip string) ([4]uint8, bool) {
	var octets [4]uint8
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return octets, false
	}
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return octets, false
		}
		octets[i] = uint8(value)
	}
	return octets, true
}

// wanExcludePrefixes are virtual or tunnel interfaces that never face the
// wide area, checked before the include list.
var wanExcludePrefixes = []string{
	"docker", "veth", "virbr", "br-", "tailscale", "tun", "tap", "wg",
}

var wanIncludePrefixes = []string{"en", "eth", "wl", "wwan", "ppp"}

// IsWANCandidateInterface applies a name-pattern heuristic for interfaces
// likely to carry wide-area traffic. Exclusions win over inclusions.
func IsWANCandidateInterface(name string) bool {
	lower := strings.ToLower(name)
	if lower == "lo" {
		return false
	}
	for _, prefix := range wanExcludePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}
	for _, prefix := range wanIncludePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return strings.Contains(lower, "wan")
}

// DefaultWANInterface picks the first WAN candidate from the catalogue,
// falling back to the first catalogue entry when nothing matches.
func DefaultWANInterface(catalogue []string) (string, bool) {
	for _, name := range catalogue {
		if IsWANCandidateInterface(name) {
			return name, true
		}
	}
	if len(catalogue) > 0 {
		return catalogue[0], true
	}
	return "", false
}
