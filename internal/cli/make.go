package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gatewaymaker/internal/config"
	"gatewaymaker/internal/exam"
	"gatewaymaker/internal/generate"
	"gatewaymaker/internal/history"
	"gatewaymaker/internal/spec"
)

var generateRun = generate.Run

// runMake builds the handler for the make command.
func runMake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for "+config.ConfigFileName+")")
		seed := flags.String("seed", "", "Seed for the random draw (default: system entropy)")
		count := flags.Int("count", 1, "Number of tests to generate")
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
		if *count < 1 {
			fmt.Fprintln(stderr, "count must be >= 1")
			return ExitUsage
		}

		rng, err := newRand(*seed)
		if err != nil {
			fmt.Fprintf(stderr, "invalid seed: %v\n", err)
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
		baseDir := config.BaseDirFromConfigPath(resolved)

		// Each pass re-reads the question files so edits between passes are
		// picked up; only the config is reused.
		for pass := 0; pass < *count; pass++ {
			result, err := generateRun(cfg, baseDir, rng)
			if err != nil {
				fmt.Fprintf(stderr, "Generation failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Wrote test %d (%d questions)\n", result.Number, result.QuestionCount)
			fmt.Fprintf(stdout, "  Test:       %s\n", result.TestPath)
			fmt.Fprintf(stdout, "  Answer key: %s\n", result.AnswersPath)
			recordHistory(cfg, baseDir, result, stderr)
		}
		return ExitOK
	}
}

func newRand(seed string) (*rand.Rand, error) {
	if strings.TrimSpace(seed) == "" {
		return exam.NewRand(), nil
	}
	value, err := strconv.ParseUint(strings.TrimSpace(seed), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed must be an unsigned integer: %w", err)
	}
	return rand.New(rand.NewPCG(value, value)), nil
}

// recordHistory appends a run row to the history database. The documents are
// already on disk, so history trouble is a warning rather than a failure.
func recordHistory(cfg spec.Config, baseDir string, result generate.Result, stderr io.Writer) {
	if cfg.HistoryFile == "" {
		return
	}
	path := cfg.HistoryFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	db, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: could not open history db: %v\n", err)
		return
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := history.Record(ctx, db, history.Entry{
		TestNumber:    result.Number,
		QuestionCount: result.QuestionCount,
		SetCount:      result.SetCount,
	}); err != nil {
		fmt.Fprintf(stderr, "Warning: could not record history: %v\n", err)
	}
}
