package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDumpCommand(t *testing.T) {
	out, err := execute(t, "dump", "grid")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	for _, want := range []string{"cell-0-0", "status", "board"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDumpUnknownView(t *testing.T) {
	_, err := execute(t, "dump", "nope")
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Errorf("err = %v, want unknown view error", err)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{`title = "bower"`, "width = 800", "[clear_color]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
