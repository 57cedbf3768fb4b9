package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ufwtail/ufwtail/internal/config"
	"github.com/ufwtail/ufwtail/internal/prefs"
	"github.com/ufwtail/ufwtail/internal/source"
	"github.com/ufwtail/ufwtail/internal/ui"
)

// Options configure the ufwtail application.
type Options struct {
	ConfigPath string
	LogPath    string // overrides the configured log path when set
	PrefsPath  string // empty uses default ~/.config/ufwtail/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the ufwtail TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logPath := cfg.LogPath
	if opts.LogPath != "" {
		logPath = opts.LogPath
	}

	pollSeconds := cfg.PollSeconds
	if opts.PollEvery > 0 {
		pollSeconds = opts.PollEvery
	}
	interval := time.Duration(pollSeconds) * time.Second

	// Initial load happens here so the first frame already has rows. A
	// missing file is not fatal: the source keeps polling for it.
	src := source.New(logPath, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Source:    src,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
