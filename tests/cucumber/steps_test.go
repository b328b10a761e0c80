package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"gatewaymaker/internal/cli"
	"gatewaymaker/internal/config"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	projectDir string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a scaffolded project$`, state.aScaffoldedProject)
	ctx.Step(`^the question pool is smaller than the draw count$`, state.thePoolIsTooSmall)
	ctx.Step(`^the test header file is missing$`, state.theHeaderFileIsMissing)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output directory contains test (\d+) and its answer key$`, state.theOutputDirContainsTest)
	ctx.Step(`^the output directory contains no documents$`, state.theOutputDirIsEmpty)
	ctx.Step(`^the error output mentions "([^"]+)"$`, state.theErrorOutputMentions)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
		s.projectDir = ""
	}
}

// aScaffoldedProject creates a temp project via the init scaffold and makes
// it the working directory so config discovery finds it.
func (s *featureState) aScaffoldedProject() error {
	dir, err := os.MkdirTemp("", "gatewaymaker-feature-")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	s.projectDir = dir
	if err := config.Scaffold(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return fmt.Errorf("scaffold project: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter project dir: %w", err)
	}
	return nil
}

// thePoolIsTooSmall raises the draw count above the sample pool size.
func (s *featureState) thePoolIsTooSmall() error {
	return s.editConfig("number_of_questions: 2", "number_of_questions: 50")
}

// theHeaderFileIsMissing removes the scaffolded header.
func (s *featureState) theHeaderFileIsMissing() error {
	return os.Remove(filepath.Join(s.projectDir, "headers", "test_header.tex"))
}

func (s *featureState) editConfig(from, to string) error {
	path := filepath.Join(s.projectDir, config.ConfigFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	edited := strings.Replace(string(raw), from, to, 1)
	if edited == string(raw) {
		return fmt.Errorf("config does not contain %q", from)
	}
	return os.WriteFile(path, []byte(edited), 0o644)
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "gatewaymaker" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("exit code %d, stderr: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected failure, got exit 0, stdout: %s", s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputDirContainsTest(number int) error {
	outputDir := filepath.Join(s.projectDir, config.DefaultOutputDir)
	for _, name := range []string{
		fmt.Sprintf("test_%d.tex", number),
		fmt.Sprintf("test_%d_answers.tex", number),
	} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			return fmt.Errorf("expected %s: %w", name, err)
		}
	}
	return nil
}

func (s *featureState) theOutputDirIsEmpty() error {
	outputDir := filepath.Join(s.projectDir, config.DefaultOutputDir)
	entries, err := os.ReadDir(outputDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tex") {
			return fmt.Errorf("unexpected document %s", entry.Name())
		}
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("stderr %q does not mention %q", s.stderr.String(), text)
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		name := row.Cells[0].Value
		if !strings.Contains(output, name) {
			return fmt.Errorf("output does not list command %q: %s", name, output)
		}
	}
	return nil
}
