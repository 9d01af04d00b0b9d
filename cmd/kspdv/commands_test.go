package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChristopherRabotin/kspdv"
	"github.com/spf13/viper"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPathCmd(t *testing.T) {
	for _, exp := range []struct {
		args []string
		out  string
	}{
		{[]string{"path", "kerbin", "mun", "--to-orbit"}, "4570"},
		{[]string{"path", "Mun", "Minmus", "--from-orbit", "--to-orbit"}, "2260"},
		{[]string{"path", "0", "8"}, "6540"},
		{[]string{"path", "eve", "eve", "--to-orbit"}, "8000"},
	} {
		out, err := run(t, exp.args...)
		if err != nil {
			t.Fatalf("%v: %s", exp.args, err)
		}
		if strings.TrimSpace(out) != exp.out {
			t.Fatalf("%v: got %q exp %q", exp.args, out, exp.out)
		}
	}
}

func TestPathCmdVerbose(t *testing.T) {
	out, err := run(t, "path", "kerbin", "duna", "-v")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "Kerbin (landed) -> Duna (landed): 6540 m/s (interplanetary)" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPathCmdVerboseEnv(t *testing.T) {
	t.Setenv(kspdv.ConfigEnv, "")
	t.Setenv("KSPDV_VERBOSE", "true")
	out, err := run(t, "path", "mun", "minmus", "--from-orbit", "--to-orbit")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "Mun (orbiting) -> Minmus (orbiting): 2260 m/s (sibling satellites)" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPathCmdUnknownBody(t *testing.T) {
	if _, err := run(t, "path", "kerbin", "earth"); !errors.Is(err, kspdv.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
	if _, err := run(t, "path", "kerbin"); err == nil {
		t.Fatal("a single body was accepted")
	}
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 18 {
		t.Fatalf("expected a header and 17 bodies, got %d lines", len(lines))
	}
	if fields := strings.Fields(lines[2]); len(fields) != 4 || fields[1] != "Mun" || fields[2] != "satellite" || fields[3] != "Kerbin" {
		t.Fatalf("unexpected Mun line %q", lines[2])
	}
}

func TestTableCmd(t *testing.T) {
	out, err := run(t, "table", "--from-orbit", "--to-orbit")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 18 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "from/to,Kerbin,Mun,Minmus") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Mun,1170,0,2260") {
		t.Fatalf("unexpected Mun row %q", lines[2])
	}
}

func TestTableCmdExport(t *testing.T) {
	t.Setenv(kspdv.ConfigEnv, "")
	for _, name := range []string{"x", "y"} {
		dir := t.TempDir()
		out, err := run(t, "table", "--out", name, "--output", dir)
		if err != nil {
			t.Fatal(err)
		}
		exp := filepath.Join(dir, "dv-"+name+".csv")
		if strings.TrimSpace(out) != exp {
			t.Fatalf("printed %q instead of %q", out, exp)
		}
		if _, err := os.Stat(exp); err != nil {
			t.Fatalf("%s not exported: %s", exp, err)
		}
	}
}

func TestTableCmdExportBrokenConfig(t *testing.T) {
	t.Setenv(kspdv.ConfigEnv, t.TempDir())
	dir := t.TempDir()
	if _, err := run(t, "table", "--out", "x", "--output", dir); !errors.Is(err, kspdv.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dv-x.csv")); !os.IsNotExist(err) {
		t.Fatal("matrix exported despite the broken configuration")
	}
}
