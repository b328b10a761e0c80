package exam

import "gatewaymaker/internal/question"

// Pool is one question set: a draw count and the ordered source files the
// draw is taken from.
type Pool struct {
	Name      string
	DrawCount int
	Files     []question.File
}

// TotalFragments returns the number of fragments available across all files.
func (p Pool) TotalFragments() int {
	total := 0
	for _, file := range p.Files {
		total += len(file.Fragments)
	}
	return total
}
