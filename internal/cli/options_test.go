// internal/cli/options_test.go
package cli

import (
	"testing"

	flag "github.com/spf13/pflag"
)

func newFS() *flag.FlagSet { return NewFlagSet("test") }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "q.fasta", "t.fasta")
	if o.QueriesFile != "q.fasta" || o.TargetFile != "t.fasta" {
		t.Errorf("positionals: %+v", o)
	}
	if o.Mode != "NW" || o.MaxDistance != -1 || o.NumBest != 0 || o.Format != FormatNice {
		t.Errorf("bad defaults: %+v", o)
	}
	if o.Output != "text" || o.Width != 50 {
		t.Errorf("bad defaults: %+v", o)
	}
}

func TestShorthands(t *testing.T) {
	o := mustParse(t, "-m", "HW", "-n", "5", "-k", "3", "-p", "-l", "-t", "-s", "q.fa", "t.fa")
	if o.Mode != "HW" || o.NumBest != 5 || o.MaxDistance != 3 {
		t.Errorf("bad shorthand parse: %+v", o)
	}
	if !o.FindPath || !o.FindStartLocs || !o.Simple || !o.Silent {
		t.Errorf("bad shorthand bools: %+v", o)
	}
}

func TestErrorMissingPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-m", "NW"}); err == nil {
		t.Fatal("expected error without queries/target files")
	}
	if _, err := ParseArgs(newFS(), []string{"only-one.fa"}); err == nil {
		t.Fatal("expected error with one positional")
	}
}

func TestErrorInvalidMode(t *testing.T) {
	opts, err := ParseArgs(newFS(), []string{"-m", "SW", "q.fa", "t.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err == nil {
		t.Fatal("expected invalid mode error")
	}
}

func TestErrorInvalidFormat(t *testing.T) {
	opts, err := ParseArgs(newFS(), []string{"-f", "FANCY", "q.fa", "t.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err == nil {
		t.Fatal("expected invalid format error")
	}
}

func TestErrorInvalidNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "-1", "q.fa", "t.fa"},
		{"-k", "-2", "q.fa", "t.fa"},
		{"--width", "0", "q.fa", "t.fa"},
	} {
		opts, err := ParseArgs(newFS(), args)
		if err != nil {
			t.Fatalf("parse err for %v: %v", args, err)
		}
		if err := Validate(&opts); err == nil {
			t.Fatalf("expected validation error for %v", args)
		}
	}
}

func TestErrorInvalidOutput(t *testing.T) {
	opts, err := ParseArgs(newFS(), []string{"-o", "xml", "q.fa", "t.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if err := Validate(&opts); err == nil {
		t.Fatal("expected invalid output error")
	}
}
