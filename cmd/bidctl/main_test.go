package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func fixturesDir() string {
	return filepath.Join("..", "..", "config", "fixtures")
}

func TestRun_PrintsCompiledGroup(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	err := run(context.Background(), &out, options{fixturesDir: fixturesDir(), profileID: "oli", period: "Jan 2026"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "T01 S5 AVOID DEST BOM") {
		t.Fatalf("expected BOM avoid on first line, got:\n%s", got)
	}
	if !strings.Contains(got, "T02 S4 AWARD DEST DXB [H++]") {
		t.Fatalf("expected DXB award on second line, got:\n%s", got)
	}
	if !strings.Contains(got, "trips: 7024, 7202") {
		t.Fatalf("expected 4-day trips to be listed, got:\n%s", got)
	}
}

func TestRun_DemoGroup(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	err := run(context.Background(), &out, options{fixturesDir: fixturesDir(), demo: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"G01 AWARD TRIP_LENGTH_DAYS = 4 POOL H+ LIMIT 3",
		"G01 AWARD DESTINATION MLE POOL H++ LIMIT 2",
		"G01 AVOID REPORT_TIME < 07:00",
		"trips: 7024",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in output:\n%s", want, got)
		}
	}
}

func TestRun_UnknownProfile(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, options{fixturesDir: fixturesDir(), profileID: "nobody"})
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
}
