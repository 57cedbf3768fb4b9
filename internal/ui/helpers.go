package ui

import (
	"strconv"
	"strings"

	"github.com/ufwtail/ufwtail/internal/services"
	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

const rawScrollStep = 8

// formatTimestamp compacts a log timestamp for a table cell. ISO-8601 and
// syslog shapes are recognized; anything else passes through unchanged.
func formatTimestamp(timestamp string, showDate bool) string {
	token := strings.TrimSpace(firstField(timestamp))

	// ISO-8601 style: 2026-02-11T23:00:39.987820+02:00
	if date, timePart, found := strings.Cut(token, "T"); found {
		clock := timePart
		if idx := strings.IndexAny(clock, ".+Z"); idx >= 0 {
			clock = clock[:idx]
		}
		if idx := strings.IndexByte(clock, '-'); idx >= 0 {
			clock = clock[:idx]
		}
		if date != "" && clock != "" {
			if showDate {
				return date + " " + clock
			}
			return clock
		}
	}

	// Syslog style: Feb 11 20:21:00 host
	parts := strings.Fields(timestamp)
	if len(parts) >= 3 && strings.Contains(parts[2], ":") {
		if showDate {
			return parts[0] + " " + parts[1] + " " + parts[2]
		}
		return parts[2]
	}

	return timestamp
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// serviceDisplay renders the service cell, optionally appending the registry
// description when it adds information beyond the name.
func serviceDisplay(entry ufwlog.Entry, showDescription bool) string {
	name := entry.Service
	if name == "" {
		return "-"
	}
	if !showDescription {
		return name
	}

	port := entry.DstPort
	if port == nil {
		port = entry.SrcPort
	}
	if port == nil {
		return name
	}
	description, ok := services.Description(*port)
	if !ok || strings.EqualFold(description, name) {
		return name
	}
	return name + ": " + description
}

// endpointDisplay renders an address cell as ip:port, with "-" placeholders.
func endpointDisplay(ip string, port *uint16) string {
	if ip == "" {
		return "-"
	}
	if port == nil {
		return ip
	}
	return ip + ":" + strconv.Itoa(int(*port))
}

// padTo pads or truncates s to exactly width cells.
func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// sliceFrom returns s starting at the given rune offset, for horizontal
// scrolling of the raw detail line.
func sliceFrom(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	runes := []rune(s)
	if offset >= len(runes) {
		return ""
	}
	return string(runes[offset:])
}
