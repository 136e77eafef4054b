package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/prefs"
	"github.com/tinytelemetry/boardroom/internal/theme"
)

func TestThemeCommands_StoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := prefs.OpenFile(filepath.Join(t.TempDir(), "prefs.yml"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()

	st, err := storedTheme(ctx, store, theme.Dark)
	if err != nil || st != theme.Dark {
		t.Fatalf("empty store theme = %s, %v; want fallback dark", st, err)
	}

	if st, err = toggleStoredTheme(ctx, store, theme.Dark); err != nil || st != theme.Light {
		t.Fatalf("toggle = %s, %v; want light", st, err)
	}
	if v, _, _ := store.Get(ctx, model.ThemeKey); v != "light" {
		t.Fatalf("stored = %q, want light", v)
	}

	if st, err = setStoredTheme(ctx, store, "dark"); err != nil || st != theme.Dark {
		t.Fatalf("set dark = %s, %v", st, err)
	}
	if _, err = setStoredTheme(ctx, store, "sepia"); err == nil {
		t.Fatal("unknown theme accepted")
	}
	if st, _ = storedTheme(ctx, store, theme.Light); st != theme.Dark {
		t.Fatalf("stored theme = %s, want dark", st)
	}
}

func TestStoredTheme_UnknownValueFallsBack(t *testing.T) {
	t.Parallel()

	store, err := prefs.OpenFile(filepath.Join(t.TempDir(), "prefs.yml"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	if err := store.Set(ctx, model.ThemeKey, "sepia"); err != nil {
		t.Fatalf("set: %v", err)
	}

	st, err := storedTheme(ctx, store, theme.Light)
	if err != nil || st != theme.Light {
		t.Fatalf("theme = %s, %v; want fallback light", st, err)
	}
}
