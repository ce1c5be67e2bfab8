// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"aligner/internal/cli"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "aligner.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadAndApplyDefaults(t *testing.T) {
	p := writeCfg(t, "mode: HW\nmax_distance: 4\nwidth: 80\n")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}

	opts := cli.Options{Mode: "NW", MaxDistance: -1, Width: 50, Format: cli.FormatNice, Output: "text"}
	f.Apply(&opts, func(string) bool { return false })

	if opts.Mode != "HW" || opts.MaxDistance != 4 || opts.Width != 80 {
		t.Errorf("defaults not applied: %+v", opts)
	}
	if opts.Format != cli.FormatNice || opts.Output != "text" {
		t.Errorf("unset keys must not change options: %+v", opts)
	}
}

func TestExplicitFlagsWin(t *testing.T) {
	p := writeCfg(t, "mode: HW\nnum_best: 7\n")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}

	opts := cli.Options{Mode: "SHW", NumBest: 0}
	f.Apply(&opts, func(name string) bool { return name == "mode" })

	if opts.Mode != "SHW" {
		t.Errorf("flag-set mode overridden: %+v", opts)
	}
	if opts.NumBest != 7 {
		t.Errorf("unset num-best not filled: %+v", opts)
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	p := writeCfg(t, "mode: HW\nthreads: 8\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEmptyFileOK(t *testing.T) {
	p := writeCfg(t, "")
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	opts := cli.Options{Mode: "NW"}
	f.Apply(&opts, func(string) bool { return false })
	if opts.Mode != "NW" {
		t.Errorf("empty config must not change options: %+v", opts)
	}
}
