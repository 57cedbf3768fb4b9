// Package ufwlog parses UFW kernel log lines into structured entries.
//
// The parser is best-effort and line-local: a line either contains a
// recognizable "[UFW <action>]" marker and becomes an Entry, or it is
// silently dropped. Kernel logs routinely interleave unrelated messages with
// firewall records, so a rejected line is expected input, not an error.
package ufwlog

import (
	"strconv"
	"strings"

	"github.com/ufwtail/ufwtail/internal/services"
)

const (
	ufwMarker    = "[UFW "
	kernelMarker = " kernel:"
)

// Parse extracts a structured entry from one kernel log line. The second
// return value reports whether the line carried a UFW marker; lines without
// one yield no entry.
func Parse(line string) (Entry, bool) {
	action, ok := parseAction(line)
	if !ok {
		return Entry{}, false
	}

	entry := Entry{
		Action:    action,
		Timestamp: parseTimestamp(line),
		InIface:   fieldValue(line, "IN"),
		OutIface:  fieldValue(line, "OUT"),
		Raw:       line,
	}

	if v := fieldValue(line, "SRC"); v != nil {
		entry.SrcIP = *v
	}
	if v := fieldValue(line, "DST"); v != nil {
		entry.DstIP = *v
	}
	if v := fieldValue(line, "PROTO"); v != nil {
		entry.Proto = strings.ToUpper(*v)
	}
	entry.SrcPort = parsePort(fieldValue(line, "SPT"))
	entry.DstPort = parsePort(fieldValue(line, "DPT"))

	if name, ok := lookupService(entry.DstPort); ok {
		entry.Service = name
	} else if name, ok := lookupService(entry.SrcPort); ok {
		entry.Service = name
	}

	return entry, true
}

func parseAction(line string) (string, bool) {
	start := strings.Index(line, ufwMarker)
	if start < 0 {
		return "", false
	}
	rest := line[start+len(ufwMarker):]
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func parseTimestamp(line string) string {
	idx := strings.Index(line, kernelMarker)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[:idx])
}

// fieldValue scans whitespace-delimited KEY=VALUE tokens and returns the
// value of the first token whose key matches. A key present with an empty
// value returns a pointer to "", which callers must keep distinct from a nil
// (absent) result.
func fieldValue(line, key string) *string {
	for _, token := range strings.Fields(line) {
		k, v, found := strings.Cut(token, "=")
		if !found || k != key {
			continue
		}
		v = strings.Trim(v, ",]")
		return &v
	}
	return nil
}

func parsePort(value *string) *uint16 {
	if value == nil {
		return nil
	}
	parsed, err := strconv.ParseUint(*value, 10, 16)
	if err != nil {
		return nil
	}
	port := uint16(parsed)
	return &port
}

func lookupService(port *uint16) (string, bool) {
	if port == nil {
		return "", false
	}
	return services.Name(*port)
}
