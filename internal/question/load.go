package question

import (
	"fmt"
	"os"
)

// LoadFile reads and parses one question source file. The returned File
// carries the configured path so error messages and sections can name it.
func LoadFile(path, resolvedPath, instructions string) (File, error) {
	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		return File{}, fmt.Errorf("read question file %q: %w", path, err)
	}
	return File{
		Path:         path,
		Instructions: instructions,
		Fragments:    Parse(string(data)),
	}, nil
}
