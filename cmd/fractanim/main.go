package main

import (
	"fmt"
	"os"

	"github.com/san-kum/fractanim/internal/config"
	"github.com/san-kum/fractanim/internal/gui"
	"github.com/san-kum/fractanim/internal/report"
	"github.com/san-kum/fractanim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
)

// main registers the commands; with no subcommand the animation opens in a window.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fractanim",
		Short:        "animated mandelbrot escape-time viewer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "preview the animation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "print escape-count statistics of the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return report.Print(cmd.OutOrStdout(), cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig prefers --config over --preset and falls back to defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}
