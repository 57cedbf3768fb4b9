// Package source owns the authoritative entry collection and keeps it in
// sync with the backing log file.
//
// The source is a single-threaded, poll-driven state machine with two
// states, live and paused. While live, it fingerprints the file at most once
// per poll interval and reloads when the fingerprint changes. A reload
// replaces the collection wholesale and then reconciles the operator's
// selection by content: the selected entry's raw line is captured before the
// reload and searched for afterwards, falling back to clamping the old
// numeric position when the line is gone. Raw lines are not guaranteed
// unique; the first match in visible order wins.
package source

import (
	"fmt"
	"os"
	"time"

	"github.com/ufwtail/ufwtail/internal/filter"
	"github.com/ufwtail/ufwtail/internal/netclass"
	"github.com/ufwtail/ufwtail/internal/ufwlog"
)

// DefaultPollInterval is the minimum spacing between fingerprint checks.
const DefaultPollInterval = time.Second

// fingerprint captures the file metadata used to decide whether a reparse is
// needed. It is an equality check, never a validation of content.
type fingerprint struct {
	modTime time.Time
	size    int64
}

func fileFingerprint(path string) (fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}, err
	}
	return fingerprint{modTime: info.ModTime(), size: info.Size()}, nil
}

func (f fingerprint) equal(other fingerprint) bool {
	return f.modTime.Equal(other.modTime) && f.size == other.size
}

// Source is the live view over one log file. All methods are synchronous;
// the caller drives polling from its own event loop.
type Source struct {
	path      string
	pollEvery time.Duration

	entries []ufwlog.Entry
	ifaces  []string
	state   filter.State

	selected  int
	paused    bool
	lastCheck time.Time
	lastFP    fingerprint
	hasFP     bool
	loadErr   error
}

// New creates a source for the file at path and performs the initial load.
// A load failure is not fatal: the source starts empty with the error
// retained for status reporting.
func New(path string, pollEvery time.Duration) *Source {
	if pollEvery <= 0 {
		pollEvery = DefaultPollInterval
	}
	s := &Source{
		path:      path,
		pollEvery: pollEvery,
		state:     filter.DefaultState(),
	}
	s.Reload()
	return s
}

// Path returns the backing file path.
func (s *Source) Path() string { return s.path }

// Entries returns the current collection, newest first.
func (s *Source) Entries() []ufwlog.Entry { return s.entries }

// Interfaces returns the interface catalogue from the last reload.
func (s *Source) Interfaces() []string { return s.ifaces }

// Filter returns the current filter state.
func (s *Source) Filter() filter.State { return s.state }

// Err returns the failure from the last reload, or nil.
func (s *Source) Err() error { return s.loadErr }

// Paused reports whether polling is suspended.
func (s *Source) Paused() bool { return s.paused }

// Visible returns the indices of entries passing the current filter state.
func (s *Source) Visible() []int {
	return filter.VisibleIndices(s.entries, s.state)
}

// Reload reads the whole file, replaces the entry collection, and reconciles
// the interface catalogue and selection. It reports whether the read
// succeeded. On failure the collection is cleared and Err is set; the next
// poll tick or manual reload is the only retry.
func (s *Source) Reload() bool {
	prevSelected := s.selected
	prevRaw, hadSelection := s.selectedRaw()
	prevIface := s.state.Interface

	entries, err := ufwlog.Load(s.path)
	if err != nil {
		s.entries = nil
		s.ifaces = nil
		s.selected = 0
		s.hasFP = false
		s.loadErr = fmt.Errorf("read %s: %w", s.path, err)
		return false
	}

	s.entries = entries
	s.refreshInterfaces(prevIface)

	visible := s.Visible()
	s.selected = prevSelected
	if hadSelection {
		if pos, ok := positionOfRaw(s.entries, visible, prevRaw); ok {
			s.selected = pos
		}
	}
	s.clampSelection(len(visible))

	if fp, err := fileFingerprint(s.path); err == nil {
		s.lastFP = fp
		s.hasFP = true
	} else {
		s.hasFP = false
	}
	s.loadErr = nil
	return true
}

// MaybeReload performs the periodic change check. At most once per poll
// interval it fingerprints the file and reloads on any difference. A failed
// fingerprint (file briefly missing) is ignored and the in-memory entries
// stay visible. Returns true when a reload ran.
func (s *Source) MaybeReload(now time.Time) bool {
	if s.paused {
		return false
	}
	if now.Sub(s.lastCheck) < s.pollEvery {
		return false
	}
	s.lastCheck = now

	current, err := fileFingerprint(s.path)
	if err != nil {
		return false
	}
	if s.hasFP && s.lastFP.equal(current) {
		return false
	}
	return s.Reload()
}

// Pause suspends polling.
func (s *Source) Pause() { s.paused = true }

// Resume re-enables polling and immediately reloads.
func (s *Source) Resume() {
	s.paused = false
	s.Reload()
}

// TogglePause flips the live/paused state, reloading on resume.
func (s *Source) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// SetFilter replaces one free-text criterion, resets the selection, and
// returns the updated visible-row count.
func (s *Source) SetFilter(field filter.Field, value string) int {
	s.state.Criteria = s.state.Criteria.WithValue(field, value)
	return s.resetSelection()
}

// ClearFilter clears one criterion, leaving the others untouched.
func (s *Source) ClearFilter(field filter.Field) int {
	return s.SetFilter(field, "")
}

// ClearAllFilters restores the default filter state: criteria empty, local
// sources hidden, WAN sources shown, flow and direction unrestricted, and
// the default WAN interface selected.
func (s *Source) ClearAllFilters() int {
	s.state = filter.DefaultState()
	if name, ok := netclass.DefaultWANInterface(s.ifaces); ok {
		s.state.Interface = name
	}
	return s.resetSelection()
}

// ToggleLocal flips visibility of local-source rows.
func (s *Source) ToggleLocal() int {
	s.state.ShowLocalSrc = !s.state.ShowLocalSrc
	return s.resetSelection()
}

// ToggleWAN flips visibility of WAN-source rows.
func (s *Source) ToggleWAN() int {
	s.state.ShowWANSrc = !s.state.ShowWANSrc
	return s.resetSelection()
}

// CycleFlow advances the flow classifier.
func (s *Source) CycleFlow() int {
	s.state.Flow = s.state.Flow.Next()
	return s.resetSelection()
}

// CycleDirection advances the direction classifier.
func (s *Source) CycleDirection() int {
	s.state.Direction = s.state.Direction.Next()
	return s.resetSelection()
}

// SelectInterface pins the view to one interface; the empty name selects all.
func (s *Source) SelectInterface(name string) int {
	s.state.Interface = name
	return s.resetSelection()
}

// SelectDefaultWAN selects the default WAN interface from the catalogue.
func (s *Source) SelectDefaultWAN() int {
	name, _ := netclass.DefaultWANInterface(s.ifaces)
	return s.SelectInterface(name)
}

// CycleInterface steps through the catalogue in either direction, passing
// through "all interfaces" between the ends.
func (s *Source) CycleInterface(forward bool) int {
	if len(s.ifaces) == 0 {
		return s.SelectInterface("")
	}

	idx := -1
	if s.state.Interface != "" {
		for i, name := range s.ifaces {
			if name == s.state.Interface {
				idx = i
				break
			}
		}
	}

	if forward {
		if idx >= len(s.ifaces)-1 {
			idx = -1
		} else {
			idx++
		}
	} else {
		if idx < 0 {
			idx = len(s.ifaces) - 1
		} else {
			idx--
		}
	}

	if idx < 0 {
		return s.SelectInterface("")
	}
	return s.SelectInterface(s.ifaces[idx])
}

// Selection returns the current position within the visible sequence.
func (s *Source) Selection() int { return s.selected }

// MoveSelection shifts the selection by delta, clamped to the visible
// sequence.
func (s *Source) MoveSelection(delta int) {
	visible := s.Visible()
	if len(visible) == 0 {
		s.selected = 0
		return
	}
	next := s.selected + delta
	if next < 0 {
		next = 0
	}
	if next > len(visible)-1 {
		next = len(visible) - 1
	}
	s.selected = next
}

// SelectedEntry returns the entry at the current selection, if the visible
// sequence is non-empty.
func (s *Source) SelectedEntry() (ufwlog.Entry, bool) {
	visible := s.Visible()
	if len(visible) == 0 {
		return ufwlog.Entry{}, false
	}
	pos := s.selected
	if pos > len(visible)-1 {
		pos = len(visible) - 1
	}
	return s.entries[visible[pos]], true
}

func (s *Source) selectedRaw() (string, bool) {
	entry, ok := s.SelectedEntry()
	if !ok {
		return "", false
	}
	return entry.Raw, true
}

// refreshInterfaces rebuilds the catalogue, keeping the previous selection
// when it still exists and falling back to the default WAN interface.
func (s *Source) refreshInterfaces(previous string) {
	s.ifaces = filter.Interfaces(s.entries)

	if previous != "" {
		for _, name := range s.ifaces {
			if name == previous {
				s.state.Interface = previous
				return
			}
		}
	}
	s.state.Interface = ""
	if name, ok := netclass.DefaultWANInterface(s.ifaces); ok {
		s.state.Interface = name
	}
}

func (s *Source) resetSelection() int {
	s.selected = 0
	return len(s.Visible())
}

func (s *Source) clampSelection(visibleLen int) {
	if visibleLen == 0 {
		s.selected = 0
		return
	}
	if s.selected > visibleLen-1 {
		s.selected = visibleLen - 1
	}
}

func positionOfRaw(entries []ufwlog.Entry, visible []int, raw string) (int, bool) {
	for pos, idx := range visible {
		if entries[idx].Raw == raw {
			return pos, true
		}
	}
	return 0, false
}
