// Package config loads taskmon settings from an optional YAML file, the
// environment, and flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file base name ("taskmon.yaml").
	ConfigFileName = "taskmon"
	// GlobalConfigDir is the per-user config directory under $HOME.
	GlobalConfigDir = ".config/taskmon"
)

// Load reads configuration. When path is non-empty that exact file is used
// and must exist; otherwise the search order is ./taskmon.yaml, then
// ~/.config/taskmon/taskmon.yaml, then defaults. TASKMON_* environment
// variables override file values (e.g. TASKMON_DISK_PATH).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TASKMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, GlobalConfigDir))
		}
		if err := v.ReadInConfig(); err != nil {
			// A missing file means defaults; anything else is a real error.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("interval", d.Interval)
	v.SetDefault("disk_path", d.DiskPath)
	v.SetDefault("history_length", d.HistoryLength)
	v.SetDefault("graph_height", d.GraphHeight)
	v.SetDefault("bar_width", d.BarWidth)
	v.SetDefault("max_processes", d.MaxProcesses)
	v.SetDefault("no_color", d.NoColor)
}
