package pa_stats

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"pseudoaln_buddy_go/logging"
)

func writeInput(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "aln.txt")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stderr, logBuf bytes.Buffer
	log := logging.New(&logBuf, true)
	log.SetTimestamps(false)
	cmd := NewCommand(func() *logging.Logger { return log })
	cmd.SetErr(&stderr)
	cmd.SetOut(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), logBuf.String(), err
}

func TestCommand_PrintsThreeHeadlineLines(t *testing.T) {
	input := writeInput(t, t.TempDir(), "0 5 6\n1\n")
	out, _, err := runCommand(t, "--input", input)
	if err != nil {
		t.Fatal(err)
	}
	want := "Number of reads: 2\nFraction of positive reads: 0.5\nFraction of unique positive reads: 0\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("output =\n%s\nwant prefix\n%s", out, want)
	}
}

func TestCommand_RequiresInput(t *testing.T) {
	if _, _, err := runCommand(t); err == nil {
		t.Error("expected error without --input")
	}
}

func TestCommand_MalformedPrintsNothing(t *testing.T) {
	input := writeInput(t, t.TempDir(), "0 1\n2 abc\n")
	out, _, err := runCommand(t, "-i", input)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("err = %v, want ErrMalformedLine", err)
	}
	if strings.Contains(out, "Number of reads") {
		t.Errorf("statistics printed on failure:\n%s", out)
	}
}

func TestCommand_MissingInput(t *testing.T) {
	_, _, err := runCommand(t, "-i", filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("err = %v, want ErrInputUnavailable", err)
	}
}

func TestCommand_ColorNamesDoNotChangeStats(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "0 5 6\n1\n2 1\n")
	names := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(names, []byte("a\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	plain, _, err := runCommand(t, "-i", input)
	if err != nil {
		t.Fatal(err)
	}
	withNames, log, err := runCommand(t, "-i", input, "-c", names)
	if err != nil {
		t.Fatal(err)
	}
	if plain != withNames {
		t.Errorf("color names changed output:\n%s\nvs\n%s", plain, withNames)
	}
	if !strings.Contains(log, "accepted but not used") {
		t.Errorf("expected debug line about color names, got %q", log)
	}

	_, log, err = runCommand(t, "-i", input, "-c", filepath.Join(dir, "nope.txt"))
	if err != nil {
		t.Fatalf("missing color names file should not be fatal: %v", err)
	}
	if !strings.Contains(log, "[WARN]") {
		t.Errorf("expected warning for missing color names file, got %q", log)
	}
}

func TestCommand_ReportFiles(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "0 5 6\n1\n2 5\n")
	prefix := filepath.Join(dir, "out", "sample")
	if err := os.MkdirAll(filepath.Dir(prefix), 0755); err != nil {
		t.Fatal(err)
	}
	_, log, err := runCommand(t, "-i", input, "-o", prefix, "--csv", "--per-color", "--plot")
	if err != nil {
		t.Fatal(err)
	}
	for _, suffix := range []string{".csv", "_per_color.csv", "_set_sizes.svg"} {
		if _, err := os.Stat(prefix + suffix); err != nil {
			t.Errorf("missing %s: %v", suffix, err)
		}
	}
	if strings.Count(log, "[INFO] Wrote") != 3 {
		t.Errorf("expected three Wrote lines:\n%s", log)
	}
}

func TestCommand_ConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "0 1\nbad\n")
	cfg := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(cfg, []byte("skip_malformed: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCommand(t, "-i", input, "--config", cfg)
	if err != nil {
		t.Fatalf("config should enable lenient mode: %v", err)
	}
	if !strings.Contains(out, "Skipped malformed lines: 1") {
		t.Errorf("output =\n%s", out)
	}

	_, _, err = runCommand(t, "-i", input, "--config", cfg, "--skip-malformed=false")
	if !errors.Is(err, ErrMalformedLine) {
		t.Errorf("flag should override config, err = %v", err)
	}
}

func TestCommand_EmptyFile(t *testing.T) {
	input := writeInput(t, t.TempDir(), "")
	out, log, err := runCommand(t, "-i", input, "--plot", "-o", filepath.Join(t.TempDir(), "p"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Fraction of positive reads: N/A") {
		t.Errorf("output =\n%s", out)
	}
	if !strings.Contains(log, "skipping colors-per-read plot") {
		t.Errorf("expected plot skip warning:\n%s", log)
	}
}
