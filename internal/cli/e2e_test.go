package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gatewaymaker/internal/config"
)

// writeWorkspace lays out a config, a header, and question files in a temp
// dir and returns the config path. History is left off so the tests stay on
// the filesystem.
func writeWorkspace(t *testing.T, dir string) string {
	t.Helper()
	write := func(rel, contents string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	write("headers/test_header.tex", "\\documentclass{exam}\n% Version %%VERSION_NUMBER%%\n\\begin{document}")
	write("questions/algebra.tex", "q1\n%% $1$\nq2\n%% $2$\nq3\n%% $3$\n")
	write(config.ConfigFileName, strings.Join([]string{
		"version: 1",
		"output_dir: tests",
		"test_header_file: headers/test_header.tex",
		"page_breaks_after: [2]",
		"question_sets:",
		"  - name: algebra",
		"    number_of_questions: 2",
		"    question_files:",
		"      - path: questions/algebra.tex",
		"        instructions: Solve.",
		"",
	}, "\n"))
	return filepath.Join(dir, config.ConfigFileName)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("validate: exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("validate stdout = %q", out.String())
	}
}

func TestValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)
	if err := os.Remove(filepath.Join(dir, "headers", "test_header.tex")); err != nil {
		t.Fatal(err)
	}

	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("validate: exit %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "Validation failed:") {
		t.Fatalf("validate stderr = %q", errBuf.String())
	}
	if !strings.Contains(errBuf.String(), "test_header_file") {
		t.Fatalf("validate stderr does not name the field: %q", errBuf.String())
	}
}

func TestMakeCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	var out, errBuf bytes.Buffer
	code := Run([]string{"make", "--config", configPath, "--seed", "11"}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("make: exit %d, stderr %q", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "Wrote test 1 (2 questions)") {
		t.Fatalf("make stdout = %q", out.String())
	}
	for _, name := range []string{"test_1.tex", "test_1_answers.tex"} {
		if _, err := os.Stat(filepath.Join(dir, "tests", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestMakeCommandCount(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	var out, errBuf bytes.Buffer
	code := Run([]string{"make", "--config", configPath, "--count", "2"}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("make: exit %d, stderr %q", code, errBuf.String())
	}
	for _, name := range []string{"test_1.tex", "test_2.tex", "test_2_answers.tex"} {
		if _, err := os.Stat(filepath.Join(dir, "tests", name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestMakeCommandRejectsBadSeed(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"make", "--seed", "banana"}, &out, &errBuf)
	if code != ExitUsage {
		t.Fatalf("make: exit %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(errBuf.String(), "invalid seed") {
		t.Fatalf("make stderr = %q", errBuf.String())
	}
}

func TestMakeCommandInsufficientPool(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)
	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	edited := strings.Replace(string(raw), "number_of_questions: 2", "number_of_questions: 9", 1)
	if err := os.WriteFile(configPath, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errBuf bytes.Buffer
	code := Run([]string{"make", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("make: exit %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "insufficient questions") {
		t.Fatalf("make stderr = %q", errBuf.String())
	}
	if entries, err := os.ReadDir(filepath.Join(dir, "tests")); err == nil && len(entries) > 0 {
		t.Fatalf("expected no output files, found %d", len(entries))
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, config.ConfigFileName)

	var out, errBuf bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("init: exit %d, stderr %q", code, errBuf.String())
	}
	if _, err := config.Load(configPath); err != nil {
		t.Fatalf("scaffolded config does not load: %v", err)
	}

	out.Reset()
	errBuf.Reset()
	if code := Run([]string{"init", "--config", configPath}, &out, &errBuf); code != ExitError {
		t.Fatalf("second init: exit %d, want %d", code, ExitError)
	}
}

func TestHistoryCommandWithoutHistoryFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	var out, errBuf bytes.Buffer
	code := Run([]string{"history", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("history: exit %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "No history_file configured") {
		t.Fatalf("history stderr = %q", errBuf.String())
	}
}

func TestMenuCommandNeedsTTY(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	var out, errBuf bytes.Buffer
	code := Run([]string{"menu", "--config", configPath}, &out, &errBuf)
	if code != ExitError {
		t.Fatalf("menu: exit %d, want %d", code, ExitError)
	}
	if !strings.Contains(errBuf.String(), "interactive terminal") {
		t.Fatalf("menu stderr = %q", errBuf.String())
	}
}

func TestMenuCommandRunsProgram(t *testing.T) {
	dir := t.TempDir()
	configPath := writeWorkspace(t, dir)

	restoreTTY := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	defer func() { isTerminal = restoreTTY }()

	var started bool
	restoreRun := runProgram
	runProgram = func(model tea.Model, stdout io.Writer) error {
		started = true
		if model.View() == "" {
			t.Error("menu model renders nothing")
		}
		return nil
	}
	defer func() { runProgram = restoreRun }()

	var out, errBuf bytes.Buffer
	code := Run([]string{"menu", "--config", configPath}, &out, &errBuf)
	if code != ExitOK {
		t.Fatalf("menu: exit %d, stderr %q", code, errBuf.String())
	}
	if !started {
		t.Fatal("menu program was not started")
	}
}
