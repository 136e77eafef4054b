package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Terminal investor dashboard",
	Long: `Boardroom renders an investor dashboard in the terminal: headline
metrics, info cards and two carousels of financial and operational charts.
Use the arrow keys or the mouse to page through charts and t to switch
between the dark and light theme. The theme choice is remembered.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return runTUI(cmd.Context(), cfg)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/boardroom/config.yml)")
}
