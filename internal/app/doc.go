// Package app wires ufwtail's components together.
//
// Run loads the config and user preferences, builds the live log source, and
// hands everything to the UI. Polling is driven by the UI's tick loop rather
// than a background goroutine: the whole viewer is single-threaded and the
// source's MaybeReload gate enforces the poll cadence, so there is exactly
// one writer to the entry collection and no snapshot coordination to get
// wrong.
package app
