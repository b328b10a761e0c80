package config

import (
	"strings"

	"gatewaymaker/internal/spec"
)

// Normalize fills defaults and trims surrounding whitespace from paths.
func Normalize(cfg *spec.Config) {
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	cfg.TestHeaderFile = strings.TrimSpace(cfg.TestHeaderFile)
	cfg.AnswerHeaderFile = strings.TrimSpace(cfg.AnswerHeaderFile)
	cfg.HistoryFile = strings.TrimSpace(cfg.HistoryFile)
	for i := range cfg.QuestionSets {
		set := &cfg.QuestionSets[i]
		set.Name = strings.TrimSpace(set.Name)
		for j := range set.QuestionFiles {
			set.QuestionFiles[j].Path = strings.TrimSpace(set.QuestionFiles[j].Path)
		}
	}
}
