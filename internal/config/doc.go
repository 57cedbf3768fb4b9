// Package config loads ufwtail's configuration file.
//
// The config lives at ~/.config/ufwtail/config.toml and is optional: a
// missing file yields the built-in defaults (log at /var/log/ufw.log, one
// fingerprint check per second). A present but malformed file is an error so
// that typos do not silently fall back to defaults.
//
// Recognized keys:
//
//	log_path = "/var/log/ufw.log"
//	poll_seconds = 1
//
// Paths support ~ expansion. Command-line flags override the file.
package config
