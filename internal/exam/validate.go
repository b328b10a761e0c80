package exam

import (
	"fmt"
	"strings"
)

// InsufficientQuestionsError reports a pool whose files hold fewer questions
// than its draw count. It aborts the whole run before any output is written.
type InsufficientQuestionsError struct {
	Pool  string
	Paths []string
	Want  int
	Have  int
}

func (err *InsufficientQuestionsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "insufficient questions in set %q:\n", err.Pool)
	for _, path := range err.Paths {
		fmt.Fprintf(&b, "\t%s\n", path)
	}
	fmt.Fprintf(&b, "expected at least %d questions total, found %d", err.Want, err.Have)
	return b.String()
}

// Validate checks that a pool holds enough fragments to satisfy its draw
// count.
func Validate(pool Pool) error {
	have := pool.TotalFragments()
	if pool.DrawCount <= have {
		return nil
	}
	paths := make([]string, 0, len(pool.Files))
	for _, file := range pool.Files {
		paths = append(paths, file.Path)
	}
	return &InsufficientQuestionsError{
		Pool:  pool.Name,
		Paths: paths,
		Want:  pool.DrawCount,
		Have:  have,
	}
}
