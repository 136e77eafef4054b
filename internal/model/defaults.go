package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultTheme           = "dark"
	DefaultPrefsBackend    = "file"
	DefaultSwipeThreshold  = 50
	DefaultCellWidthPx     = 8
	DefaultRevealDuration  = 2000 * time.Millisecond
	DefaultThemeTransition = 400 * time.Millisecond
	DefaultLogLevel        = "info"

	// ThemeKey is the preference key holding "dark" or "light".
	ThemeKey = "theme"
)
