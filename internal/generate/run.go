package generate

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gatewaymaker/internal/exam"
	"gatewaymaker/internal/question"
	"gatewaymaker/internal/spec"
	"gatewaymaker/internal/tex"
)

// Result reports what one generation pass produced.
type Result struct {
	Number        int
	TestPath      string
	AnswersPath   string
	QuestionCount int
	SetCount      int
}

// Run executes one generation pass: load headers and question files, validate
// every pool, sample, assemble both streams, and write them under the next
// free test number. Relative config paths resolve against baseDir. Nothing is
// written unless every earlier stage succeeded.
func Run(cfg spec.Config, baseDir string, rng *rand.Rand) (Result, error) {
	testHeader, err := readHeader(cfg.TestHeaderFile, baseDir)
	if err != nil {
		return Result{}, err
	}
	answerHeader := testHeader
	if cfg.AnswerHeaderFile != "" {
		answerHeader, err = readHeader(cfg.AnswerHeaderFile, baseDir)
		if err != nil {
			return Result{}, err
		}
	}

	// Question files are re-read on every pass so edits between passes are
	// picked up.
	pools, err := loadPools(cfg, baseDir)
	if err != nil {
		return Result{}, err
	}
	for _, pool := range pools {
		if err := exam.Validate(pool); err != nil {
			return Result{}, err
		}
	}

	assembler := tex.NewAssembler(testHeader, answerHeader, cfg.PageBreaksAfter)
	for _, pool := range pools {
		assembler.AppendPool(pool.Files, exam.Sample(pool, rng))
	}
	doc := assembler.Finish()

	outputDir := resolvePath(cfg.OutputDir, baseDir)
	number, testPath, answersPath, err := writeDocuments(doc, outputDir)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Number:        number,
		TestPath:      testPath,
		AnswersPath:   answersPath,
		QuestionCount: assembler.QuestionsEmitted(),
		SetCount:      len(pools),
	}, nil
}

func loadPools(cfg spec.Config, baseDir string) ([]exam.Pool, error) {
	pools := make([]exam.Pool, 0, len(cfg.QuestionSets))
	for _, set := range cfg.QuestionSets {
		pool := exam.Pool{Name: set.Name, DrawCount: set.NumberOfQuestions}
		for _, fileCfg := range set.QuestionFiles {
			file, err := question.LoadFile(fileCfg.Path, resolvePath(fileCfg.Path, baseDir), fileCfg.Instructions)
			if err != nil {
				return nil, err
			}
			pool.Files = append(pool.Files, file)
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

func readHeader(path, baseDir string) (string, error) {
	data, err := os.ReadFile(resolvePath(path, baseDir))
	if err != nil {
		return "", fmt.Errorf("read header file %q: %w", path, err)
	}
	return string(data), nil
}

func resolvePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
