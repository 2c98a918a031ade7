// Package config loads the tool's options from its configuration
// file, environment and command-line flags, and provides the parsers
// for the value syntaxes the file uses (truth values, proxy
// endpoints).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nace/gavel/internal/proxy"
)

// Options is the effective configuration after merging defaults,
// config file, environment and flags.
type Options struct {
	Username string
	Password string
	LogDir   string
	Debug    bool
	Quiet    bool
	Batch    bool
	Proxy    proxy.Endpoint

	// Settings is the raw merged key/value view, kept for the
	// "config" inspection command.
	Settings map[string]any
}

// boolKeys are the options whose values go through ParseBool.
var boolKeys = []string{"debug", "quiet", "batch"}

// Load builds Options for cmd. Precedence, lowest to highest:
// defaults, gavel.yaml (user config dir, then current dir, or the
// explicit path when non-empty), GAVEL_* environment variables,
// command-line flags. A missing config file is fine; a malformed one
// or an invalid value is not.
func Load(cmd *cobra.Command, explicit string) (*Options, error) {
	v := viper.New()

	v.SetDefault("proxy", "")
	v.SetDefault("logdir", "")

	v.SetConfigName("gavel")
	v.SetConfigType("yaml")
	if explicit != "" {
		v.SetConfigFile(explicit)
	}
	if userDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(userDir, "gavel"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("gavel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	// The flag spells the key with a dash; map it onto the config
	// file's "logdir".
	if f := cmd.Flags().Lookup("log-dir"); f != nil {
		if err := v.BindPFlag("logdir", f); err != nil {
			return nil, err
		}
	}

	opts := &Options{
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		LogDir:   v.GetString("logdir"),
		Settings: v.AllSettings(),
	}

	for _, key := range boolKeys {
		val, err := boolOption(v, key)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		switch key {
		case "debug":
			opts.Debug = val
		case "quiet":
			opts.Quiet = val
		case "batch":
			opts.Batch = val
		}
	}

	if err := opts.Proxy.Set(v.GetString("proxy")); err != nil {
		return nil, fmt.Errorf("option %q: %w", "proxy", err)
	}

	return opts, nil
}

// boolOption reads key as a truth value. An unset key is false; a key
// present with an empty value is the bare form, which ParseBool
// defines as true.
func boolOption(v *viper.Viper, key string) (bool, error) {
	if !v.IsSet(key) {
		return false, nil
	}
	s := v.GetString(key)
	if s == "" {
		return ParseBool(nil)
	}
	return ParseBool(&s)
}
