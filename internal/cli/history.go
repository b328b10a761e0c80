package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gatewaymaker/internal/config"
	"gatewaymaker/internal/history"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		limit := flags.Int("limit", 20, "Maximum rows to list")
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
		if cfg.HistoryFile == "" {
			fmt.Fprintln(stderr, "No history_file configured.")
			return ExitError
		}
		path := cfg.HistoryFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(config.BaseDirFromConfigPath(resolved), path)
		}

		db, err := history.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open history db: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		rows, err := history.List(ctx, db, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to list history: %v\n", err)
			return ExitError
		}
		if len(rows) == 0 {
			fmt.Fprintln(stdout, "No tests generated yet.")
			return ExitOK
		}
		for _, row := range rows {
			fmt.Fprintf(stdout, "test_%d  %d questions  %d sets  %s\n",
				row.TestNumber, row.QuestionCount, row.SetCount,
				row.CreatedAt.Format(time.RFC3339))
		}
		return ExitOK
	}
}
