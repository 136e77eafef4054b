package main

import (
	"context"
	"fmt"

	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/prefs"
	"github.com/tinytelemetry/boardroom/internal/theme"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the stored theme",
	Long: `Reads or writes the theme flag in the preference store. A running
dashboard using the file backend picks up changes immediately.`,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored theme",
	Args:  cobra.NoArgs,
	RunE: withStore(func(ctx context.Context, cfg appConfig, store prefs.Store, _ []string) (theme.State, error) {
		return storedTheme(ctx, store, cfg.fallbackTheme())
	}),
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Store a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: withStore(func(ctx context.Context, _ appConfig, store prefs.Store, args []string) (theme.State, error) {
		return setStoredTheme(ctx, store, args[0])
	}),
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the stored theme",
	Args:  cobra.NoArgs,
	RunE: withStore(func(ctx context.Context, cfg appConfig, store prefs.Store, _ []string) (theme.State, error) {
		return toggleStoredTheme(ctx, store, cfg.fallbackTheme())
	}),
}

func init() {
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

type themeAction func(ctx context.Context, cfg appConfig, store prefs.Store, args []string) (theme.State, error)

// withStore opens the configured store around action and prints the
// resulting theme.
func withStore(action themeAction) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store, err := prefs.Open(cfg.PrefsBackend, cfg.PrefsPath)
		if err != nil {
			return fmt.Errorf("opening preferences: %w", err)
		}
		defer store.Close()

		st, err := action(cmd.Context(), cfg, store, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), st)
		return nil
	}
}

func storedTheme(ctx context.Context, store prefs.Store, fallback theme.State) (theme.State, error) {
	v, ok, err := store.Get(ctx, model.ThemeKey)
	if err != nil {
		return fallback, fmt.Errorf("reading theme: %w", err)
	}
	if !ok {
		return fallback, nil
	}
	st, valid := theme.ParseState(v)
	if !valid {
		return fallback, nil
	}
	return st, nil
}

func setStoredTheme(ctx context.Context, store prefs.Store, value string) (theme.State, error) {
	st, ok := theme.ParseState(value)
	if !ok {
		return st, fmt.Errorf("unknown theme %q (want dark or light)", value)
	}
	if err := store.Set(ctx, model.ThemeKey, st.String()); err != nil {
		return st, fmt.Errorf("writing theme: %w", err)
	}
	return st, nil
}

func toggleStoredTheme(ctx context.Context, store prefs.Store, fallback theme.State) (theme.State, error) {
	st, err := storedTheme(ctx, store, fallback)
	if err != nil {
		return st, err
	}
	return setStoredTheme(ctx, store, st.Toggled().String())
}
