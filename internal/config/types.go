package config

import (
	"fmt"
	"time"
)

// Config holds the user-tunable settings for taskmon. The refresh interval
// and monitored disk path are the knobs that matter; the rest shape the
// display.
type Config struct {
	Interval      time.Duration `mapstructure:"interval"`
	DiskPath      string        `mapstructure:"disk_path"`
	HistoryLength int           `mapstructure:"history_length"`
	GraphHeight   int           `mapstructure:"graph_height"`
	BarWidth      int           `mapstructure:"bar_width"`
	MaxProcesses  int           `mapstructure:"max_processes"`
	NoColor       bool          `mapstructure:"no_color"`
}

// Default returns the hardcoded default configuration.
func Default() *Config {
	return &Config{
		Interval:      time.Second,
		DiskPath:      "/",
		HistoryLength: 30,
		GraphHeight:   5,
		BarWidth:      30,
		MaxProcesses:  10,
	}
}

// Validate checks ranges and rejects values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Interval < 100*time.Millisecond {
		return fmt.Errorf("interval %s too short, minimum is 100ms", c.Interval)
	}
	if c.DiskPath == "" {
		return fmt.Errorf("disk_path must not be empty")
	}
	if c.HistoryLength < 1 || c.HistoryLength > 600 {
		return fmt.Errorf("history_length %d out of range 1-600", c.HistoryLength)
	}
	if c.GraphHeight < 1 || c.GraphHeight > 20 {
		return fmt.Errorf("graph_height %d out of range 1-20", c.GraphHeight)
	}
	if c.BarWidth < 10 || c.BarWidth > 200 {
		return fmt.Errorf("bar_width %d out of range 10-200", c.BarWidth)
	}
	if c.MaxProcesses < 0 || c.MaxProcesses > 100 {
		return fmt.Errorf("max_processes %d out of range 0-100", c.MaxProcesses)
	}
	return nil
}
