package tex

import (
	"strconv"
	"strings"
)

// WithVersion substitutes the reserved header token with the assigned test
// number. The answer-key stream gets the number with the key label appended.
func (d Document) WithVersion(number int) Document {
	value := strconv.Itoa(number)
	return Document{
		Test:      strings.ReplaceAll(d.Test, VersionToken, value),
		AnswerKey: strings.ReplaceAll(d.AnswerKey, VersionToken, value+"ANSWER KEY"),
	}
}
