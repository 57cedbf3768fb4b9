// Package services maps port numbers to IANA service names.
//
// The lookup table is built once, on first use, from an embedded snapshot of
// the IANA service-names-port-numbers registry. Only tcp and udp rows are
// considered, and the first row seen for a port wins, which keeps the mapping
// deterministic across rebuilds of the table.
package services

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/service-names-port-numbers.csv
var registryCSV string

type serviceInfo struct {
	name        string
	description string
}

var portServices = sync.OnceValue(buildPortServices)

// Name returns the IANA service name registered for port, if any.
func Name(port uint16) (string, bool) {
	info, ok := portServices()[port]
	if !ok {
		return "", false
	}
	return info.name, true
}

// Description returns the registry description for port. Ports whose registry
// row carries no description report false.
func Description(port uint16) (string, bool) {
	info, ok := portServices()[port]
	if !ok || info.description == "" {
		return "", false
	}
	return info.description, true
}

func buildPortServices() map[uint16]serviceInfo {
	table := make(map[uint16]serviceInfo)

	reader := csv.NewReader(strings.NewReader(registryCSV))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Registry rows occasionally carry stray quoting; skip and move on.
			continue
		}
		if header {
			header = false
			continue
		}
		if len(record) < 4 {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}

		proto := strings.ToLower(strings.TrimSpace(record[2]))
		if proto != "tcp" && proto != "udp" {
			continue
		}

		port, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
		if err != nil {
			continue
		}

		// First row per port wins.
		if _, exists := table[uint16(port)]; exists {
			continue
		}
		table[uint16(port)] = serviceInfo{
			name:        name,
			description: strings.TrimSpace(record[3]),
		}
	}

	return table
}
