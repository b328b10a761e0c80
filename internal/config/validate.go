package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gatewaymaker/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a config for correctness and referenced files. Relative
// paths are resolved against baseDir, the directory holding the config file.
func Validate(cfg *spec.Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	if cfg.TestHeaderFile == "" {
		collector.add("test_header_file", "is required")
	} else {
		checkFile(collector, "test_header_file", cfg.TestHeaderFile, baseDir)
	}
	if cfg.AnswerHeaderFile != "" {
		checkFile(collector, "answer_header_file", cfg.AnswerHeaderFile, baseDir)
	}

	for i, after := range cfg.PageBreaksAfter {
		if after < 1 {
			collector.add(fmt.Sprintf("page_breaks_after[%d]", i), "must be >= 1")
		}
	}

	if len(cfg.QuestionSets) == 0 {
		collector.add("question_sets", "must include at least one entry")
	}
	setNames := map[string]struct{}{}
	for i, set := range cfg.QuestionSets {
		fieldPrefix := fmt.Sprintf("question_sets[%d]", i)
		if set.Name != "" {
			if _, exists := setNames[set.Name]; exists {
				collector.add(fieldPrefix+".name", fmt.Sprintf("duplicate name %q", set.Name))
			} else {
				setNames[set.Name] = struct{}{}
			}
		}
		if set.NumberOfQuestions < 0 {
			collector.add(fieldPrefix+".number_of_questions", "must be >= 0")
		}
		if len(set.QuestionFiles) == 0 {
			collector.add(fieldPrefix+".question_files", "must include at least one entry")
		}
		for j, file := range set.QuestionFiles {
			fileField := fmt.Sprintf("%s.question_files[%d]", fieldPrefix, j)
			if file.Path == "" {
				collector.add(fileField+".path", "is required")
				continue
			}
			checkFile(collector, fileField+".path", file.Path, baseDir)
		}
	}

	return collector.result()
}

func checkFile(collector *issueCollector, field, path, baseDir string) {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(baseDir, resolved)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		collector.add(field, fmt.Sprintf("file not found at %q", path))
		return
	}
	if info.IsDir() {
		collector.add(field, fmt.Sprintf("path %q is a directory", path))
	}
}
