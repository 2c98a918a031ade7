package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gavel.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`username: bidder42`,
		`password: hunter2`,
		`logdir: /tmp/gavel-logs`,
		`debug: "y"`,
		`quiet: "0"`,
		`proxy: http://proxy.example.com:3128/`,
	}, "\n"))

	opts, err := Load(&cobra.Command{}, path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Username != "bidder42" {
		t.Errorf("username = %q", opts.Username)
	}
	if opts.Password != "hunter2" {
		t.Errorf("password = %q", opts.Password)
	}
	if opts.LogDir != "/tmp/gavel-logs" {
		t.Errorf("logdir = %q", opts.LogDir)
	}
	if !opts.Debug {
		t.Error("debug = false, want true")
	}
	if opts.Quiet {
		t.Error("quiet = true, want false")
	}
	if opts.Proxy.Host != "proxy.example.com" || opts.Proxy.Port != 3128 {
		t.Errorf("proxy = %+v", opts.Proxy)
	}
	if opts.Settings == nil {
		t.Error("settings map not captured")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `username: bidder42`)

	opts, err := Load(&cobra.Command{}, path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Debug || opts.Quiet || opts.Batch {
		t.Errorf("unset booleans should be false: %+v", opts)
	}
	if opts.Proxy.Enabled() {
		t.Errorf("unset proxy should be disabled: %+v", opts.Proxy)
	}
}

func TestLoadLogDirFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, `logdir: /from/file`)

	cmd := &cobra.Command{}
	cmd.Flags().String("log-dir", "", "")
	if err := cmd.Flags().Set("log-dir", "/from/flag"); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(cmd, path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.LogDir != "/from/flag" {
		t.Errorf("logdir = %q, want flag value", opts.LogDir)
	}
}

func TestLoadRejectsBadBool(t *testing.T) {
	path := writeConfig(t, `debug: maybe`)

	if _, err := Load(&cobra.Command{}, path); err == nil {
		t.Fatal("want error for debug=maybe")
	}
}

func TestLoadRejectsBadProxy(t *testing.T) {
	path := writeConfig(t, `proxy: "proxy.example.com:8080/extra"`)

	if _, err := Load(&cobra.Command{}, path); err == nil {
		t.Fatal("want error for malformed proxy value")
	}
}
