package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/dominoes/internal/analysis"
	"github.com/Mr-Dark-debug/dominoes/internal/config"
	"github.com/Mr-Dark-debug/dominoes/internal/domino"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvHand, "")
	t.Setenv(config.EnvLogFile, "")

	c := New(io.Discard)
	c.in = strings.NewReader(stdin)

	root := c.RootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))

	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sort default", []string{"sort"}, "[[1,1],[1,2],[5,1],[3,4],[3,4],[4,3],[6,1]]"},
		{"sort desc", []string{"sort", "--order", "desc"}, "[[6,1],[4,3],[3,4],[3,4],[5,1],[1,2],[1,1]]"},
		{"dedupe", []string{"dedupe"}, "[[6,1],[5,1],[1,1],[1,2]]"},
		{"dedupe alias", []string{"--tiles", "[[3,4],[4,3],[1,2]]", "remove-duplicates"}, "[[1,2]]"},
		{"flip", []string{"--tiles", "[[6,1],[2,2]]", "flip"}, "[[1,6],[2,2]]"},
		{"remove total", []string{"--tiles", "[[6,1],[4,3],[5,1]]", "remove", "7"}, "[[5,1]]"},
		{"remove blank", []string{"--tiles", "[[6,1]]", "remove"}, "[[6,1]]"},
		{"add appends", []string{"--tiles", "[[6,1]]", "add", "2", "2"}, "[[6,1],[2,2]]"},
		{"add toggles off", []string{"--tiles", "[[6,1],[2,2]]", "add", "1", "6"}, "[[2,2]]"},
		{"add --append", []string{"--tiles", "[[6,1]]", "add", "--append", "1", "6"}, "[[6,1],[1,6]]"},
		{"empty list", []string{"--tiles", "[]", "flip"}, "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute(%v) error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("Execute(%v) = %s, want %s", tt.args, got, tt.want)
			}
		})
	}
}

func TestTilesFromStdin(t *testing.T) {
	got, err := run(t, "[[4,3],[0,0]]\n", "--tiles", "-", "sort")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[[0,0],[4,3]]" {
		t.Errorf("got %s", got)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		cause error
	}{
		{"add out of range", []string{"add", "7", "1"}, domino.ErrInvalidPip},
		{"add not a number", []string{"add", "x", "1"}, domino.ErrInvalidPip},
		{"remove not a number", []string{"remove", "seven"}, domino.ErrInvalidTotal},
		{"bad order", []string{"sort", "--order", "up"}, domino.ErrInvalidOrder},
		{"tiles out of range", []string{"--tiles", "[[0,9]]", "flip"}, domino.ErrInvalidPip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if !errors.Is(err, tt.cause) {
				t.Errorf("Execute(%v) error = %v, want %v", tt.args, err, tt.cause)
			}
			if !domino.IsValidation(err) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestMalformedTiles(t *testing.T) {
	if _, err := run(t, "", "--tiles", "[[1,2,3]]", "flip"); err == nil {
		t.Error("expected error for malformed tile list")
	}
	if _, err := run(t, "", "add", "1"); err == nil {
		t.Error("expected arity error")
	}
}

func TestStatsJSON(t *testing.T) {
	out, err := run(t, "", "stats", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var report analysis.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decoding report: %v\n%s", err, out)
	}
	if report.Stats.Doubles != 1 || report.Stats.Pairs != 2 || report.Stats.Threes != 1 {
		t.Errorf("unexpected stats %+v", report.Stats)
	}
	if len(report.Hand) != 7 {
		t.Errorf("expected 7 tiles in report, got %d", len(report.Hand))
	}
}

func TestStatsTextFormats(t *testing.T) {
	out, err := run(t, "", "stats")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Double Numbers", "Threes", "[3,4] appears 3 times"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, "", "stats", "-f", "markdown")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "| Pairs | 2 |") {
		t.Errorf("markdown output missing pairs row:\n%s", out)
	}

	if _, err := run(t, "", "stats", "-f", "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "--tiles", "[[1,1],[3,4],[4,3],[0,6]]", "show")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "double") {
		t.Errorf("line 1 should mark double: %q", lines[0])
	}
	if !strings.Contains(lines[1], "duplicate") || !strings.Contains(lines[2], "duplicate") {
		t.Errorf("lines 2-3 should mark duplicates: %q %q", lines[1], lines[2])
	}
	if strings.Contains(lines[3], "duplicate") || strings.Contains(lines[3], "double") {
		t.Errorf("line 4 should be unmarked: %q", lines[3])
	}
}

func TestPrettyOutput(t *testing.T) {
	out, err := run(t, "", "--pretty", "--tiles", "[[6,1]]", "flip")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[\n    1,\n    6\n  ]") {
		t.Errorf("expected indented output, got:\n%s", out)
	}
}
