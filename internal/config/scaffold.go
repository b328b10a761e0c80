package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
output_dir: "tests"
test_header_file: "headers/test_header.tex"
history_file: "tests/history.duckdb"
page_breaks_after: [4]
question_sets:
  - name: sample
    number_of_questions: 2
    question_files:
      - path: "questions/sample.tex"
        instructions: "Answer each of the following."
`

const defaultHeader = `\documentclass[12pt]{exam}
\usepackage{amsmath}
\pagestyle{headandfoot}
\firstpageheader{Gateway Exam}{Version %%VERSION_NUMBER%%}{Name: \underline{\hspace{5cm}}}
\runningheader{}{Version %%VERSION_NUMBER%%}{}
\begin{document}
`

const defaultQuestions = `% Sample question file.  One question per line; an answer follows on the
% next line prefixed with the double marker.
Compute $\frac{d}{dx}\left(x^3 - 4x\right)$.
%% $3x^2 - 4$
Compute $\int_0^1 2x \, dx$.
%% $1$
Simplify $\frac{x^2 - 1}{x - 1}$ for $x \neq 1$.
%% $x + 1$
`

// Scaffold writes a starter config, header, and question file so a fresh
// directory can generate a test immediately. Existing files are never
// overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	baseDir := filepath.Dir(configPath)
	files := []struct {
		path     string
		contents string
	}{
		{filepath.Join(baseDir, "headers", "test_header.tex"), defaultHeader},
		{filepath.Join(baseDir, "questions", "sample.tex"), defaultQuestions},
	}
	for _, file := range files {
		if info, err := os.Stat(file.path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", file.path)
			}
			return fmt.Errorf("file already exists at %q", file.path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %q: %w", file.path, err)
		}
	}

	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.path), 0o755); err != nil {
			return fmt.Errorf("create %q: %w", filepath.Dir(file.path), err)
		}
		if err := os.WriteFile(file.path, []byte(file.contents), 0o644); err != nil {
			return fmt.Errorf("write %q: %w", file.path, err)
		}
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
