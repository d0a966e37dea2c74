// Package cli wires flags, config, and the metrics provider into the TUI.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/google/taskmon/internal/config"
	"github.com/google/taskmon/internal/logger"
	"github.com/google/taskmon/internal/metrics"
	"github.com/google/taskmon/internal/ui"
)

var (
	flagInterval time.Duration
	flagPath     string
	flagConfig   string
	flagMock     bool
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "taskmon",
	Short: "Terminal resource monitor with live bars and a CPU trend graph",
	Long: `taskmon samples CPU, memory, disk, and network usage once per
interval and renders them as color-coded bars plus a scrolling CPU history
graph, entirely in the terminal.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().DurationVarP(&flagInterval, "interval", "n", time.Second, "refresh interval")
	rootCmd.Flags().StringVarP(&flagPath, "path", "p", "/", "disk path to monitor")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default ./taskmon.yaml, ~/.config/taskmon/taskmon.yaml)")
	rootCmd.Flags().BoolVar(&flagMock, "mock", false, "run with simulated metrics")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colors, plain bars only")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags beat the config file, but only when actually set.
	if cmd.Flags().Changed("interval") {
		cfg.Interval = flagInterval
	}
	if cmd.Flags().Changed("path") {
		cfg.DiskPath = flagPath
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flagNoColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log := logger.New("[taskmon]")

	var provider metrics.Provider
	if flagMock {
		provider = &metrics.MockProvider{}
	} else {
		provider = metrics.NewRealProvider(log)
	}

	// Provider failure here is fatal: every tick would fail the same way.
	if err := provider.Init(); err != nil {
		return fmt.Errorf("metrics source unavailable: %w", err)
	}
	defer provider.Shutdown()

	program := tea.NewProgram(ui.NewRootModel(provider, cfg, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// SetVersionInfo attaches build metadata injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command. Errors exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
