package question

import "strings"

const (
	commentMarker = "%"
	answerMarker  = "%%"
)

// Parse scans raw question file text into ordered fragments.
//
// A line whose trimmed form is empty or starts with the comment marker is
// skipped. Any other line is a question. When the line directly below a
// question starts (trimmed) with the answer marker, the remainder of that
// trimmed line is the answer and the line is consumed, so it is never
// re-scanned as a question of its own. A question on the last line gets an
// empty answer.
func Parse(data string) []Fragment {
	lines := strings.Split(data, "\n")
	var fragments []Fragment
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		fragment := Fragment{Text: line}
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if strings.HasPrefix(next, answerMarker) {
				fragment.Answer = next[len(answerMarker):]
				i++
			}
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}
