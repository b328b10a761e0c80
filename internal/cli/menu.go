package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gatewaymaker/internal/config"
	"gatewaymaker/internal/exam"
	"gatewaymaker/internal/spec"
	"gatewaymaker/internal/ui/menu"
)

var runProgram = defaultRunProgram

func defaultRunProgram(model tea.Model, stdout io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	_, err := program.Run()
	return err
}

// runMenu builds the handler for the menu command.
func runMenu(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "The menu needs an interactive terminal. Use \"gatewaymaker make\" instead.")
			return ExitError
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		model := menu.NewModel(menuItems(resolved, cfg, stderr), menu.Options{Title: "gatewaymaker"})
		if err := runProgram(model, stdout); err != nil {
			fmt.Fprintf(stderr, "Menu failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// menuItems wires the menu actions against a loaded config. Actions that
// change files reload the config themselves so edits made while the menu is
// open are honored.
func menuItems(configPath string, cfg spec.Config, stderr io.Writer) []menu.Item {
	baseDir := config.BaseDirFromConfigPath(configPath)
	return []menu.Item{
		{
			Title: "Make test",
			Action: func() (string, error) {
				fresh, err := config.Load(configPath)
				if err != nil {
					return "", err
				}
				result, err := generateRun(fresh, baseDir, exam.NewRand())
				if err != nil {
					return "", err
				}
				recordHistory(fresh, baseDir, result, stderr)
				return fmt.Sprintf("Wrote test %d (%d questions) to %s", result.Number, result.QuestionCount, result.TestPath), nil
			},
		},
		{
			Title: "Validate config",
			Action: func() (string, error) {
				if _, err := config.Load(configPath); err != nil {
					return "", err
				}
				return "Config OK", nil
			},
		},
		{
			Title: "Show settings",
			Action: func() (string, error) {
				return menu.RenderSettings(settingsFor(configPath, cfg), false), nil
			},
		},
		{Title: "Quit"},
	}
}

func settingsFor(configPath string, cfg spec.Config) []menu.Setting {
	names := make([]string, 0, len(cfg.QuestionSets))
	for _, set := range cfg.QuestionSets {
		names = append(names, set.Name)
	}
	historyFile := cfg.HistoryFile
	if historyFile == "" {
		historyFile = "(disabled)"
	}
	return []menu.Setting{
		{Name: "config", Value: configPath},
		{Name: "output_dir", Value: cfg.OutputDir},
		{Name: "test_header_file", Value: cfg.TestHeaderFile},
		{Name: "history_file", Value: historyFile},
		{Name: "question_sets", Value: strings.Join(names, ", ")},
	}
}
