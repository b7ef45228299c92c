package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for concord settings.
const envPrefix = "CONCORD"

// Config holds the settings of a concord run. Every field may be set by a
// command line flag, an environment variable CONCORD_<KEY> or a YAML config
// file, in decreasing order of precedence.
type Config struct {
	HTML    bool   `mapstructure:"html"`
	Locale  string `mapstructure:"locale"`
	Fold    bool   `mapstructure:"fold"`
	From    string `mapstructure:"from"`
	To      string `mapstructure:"to"`
	Min     int    `mapstructure:"min"`
	Reverse bool   `mapstructure:"reverse"`
	Dump    bool   `mapstructure:"dump"`
	Dot     string `mapstructure:"dot"`
	NoColor bool   `mapstructure:"no-color"`
	Verbose bool   `mapstructure:"verbose"`
}

var errConflictingOrders = errors.New("--locale and --fold are mutually exclusive")

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Bool("html", false, "input is HTML; count words of its text content")
	flags.String("locale", "", "collate words by the rules of a language, e.g. 'de'")
	flags.Bool("fold", false, "treat words differing only in case as one")
	flags.String("from", "", "print words not ordered before this one")
	flags.String("to", "", "print words ordered before this one")
	flags.Int("min", 0, "erase words occurring less often")
	flags.Bool("reverse", false, "print in decreasing order")
	flags.Bool("dump", false, "print the tree structure of the word map")
	flags.String("dot", "", "write the tree structure in DOT format to a file")
	flags.Bool("no-color", false, "disable colored output")
	flags.BoolP("verbose", "v", false, "trace map operations to stderr")
	flags.String("config", "", "config file (YAML)")
}

// loadConfig merges flags, environment and an optional config file.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Locale != "" && cfg.Fold {
		return errConflictingOrders
	}
	if cfg.Min < 0 {
		return fmt.Errorf("--min must not be negative, is %d", cfg.Min)
	}
	return nil
}
