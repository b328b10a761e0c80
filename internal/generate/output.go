package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"gatewaymaker/internal/tex"
)

// TestFileName returns the test document name for a test number.
func TestFileName(number int) string {
	return fmt.Sprintf("test_%d.tex", number)
}

// AnswersFileName returns the answer-key document name for a test number.
func AnswersFileName(number int) string {
	return fmt.Sprintf("test_%d_answers.tex", number)
}

// nextTestNumber probes for the smallest number with neither document
// present. A linear walk from 1 is fine at the test counts this tool sees;
// racing a second process on the same directory is out of scope.
func nextTestNumber(dir string) int {
	for number := 1; ; number++ {
		if fileExists(filepath.Join(dir, TestFileName(number))) {
			continue
		}
		if fileExists(filepath.Join(dir, AnswersFileName(number))) {
			continue
		}
		return number
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeDocuments stamps the version token and persists both streams. When the
// second write fails the first file is removed so a run never leaves half an
// output pair behind.
func writeDocuments(doc tex.Document, outputDir string) (int, string, string, error) {
	if info, err := os.Stat(outputDir); err == nil && !info.IsDir() {
		return 0, "", "", fmt.Errorf("output path %q is a file, not a directory; move it or choose another output_dir", outputDir)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, "", "", fmt.Errorf("create output dir %q (check permissions): %w", outputDir, err)
	}

	number := nextTestNumber(outputDir)
	stamped := doc.WithVersion(number)
	testPath := filepath.Join(outputDir, TestFileName(number))
	answersPath := filepath.Join(outputDir, AnswersFileName(number))

	if err := os.WriteFile(testPath, []byte(stamped.Test), 0o644); err != nil {
		return 0, "", "", fmt.Errorf("write %q (check permissions): %w", testPath, err)
	}
	if err := os.WriteFile(answersPath, []byte(stamped.AnswerKey), 0o644); err != nil {
		_ = os.Remove(testPath)
		return 0, "", "", fmt.Errorf("write %q (check permissions): %w", answersPath, err)
	}
	return number, testPath, answersPath, nil
}
