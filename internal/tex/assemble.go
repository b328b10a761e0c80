package tex

import (
	"strings"

	"gatewaymaker/internal/exam"
	"gatewaymaker/internal/question"
)

// Document holds the two parallel output streams of one run.
type Document struct {
	Test      string
	AnswerKey string
}

// Assembler builds the test and answer-key streams in lockstep: every
// structural marker lands in both streams at the same question position, and
// only the boxed answer content differs. The emitted counter is global across
// every pool appended to one assembler because page breaks are positions in
// the whole document.
type Assembler struct {
	pageBreaks map[int]struct{}
	emitted    int
	test       strings.Builder
	key        strings.Builder
}

// NewAssembler starts both streams with their headers.
func NewAssembler(testHeader, answerHeader string, pageBreaksAfter []int) *Assembler {
	breaks := make(map[int]struct{}, len(pageBreaksAfter))
	for _, after := range pageBreaksAfter {
		breaks[after] = struct{}{}
	}
	assembler := &Assembler{pageBreaks: breaks}
	assembler.test.WriteString(testHeader + "\n")
	assembler.key.WriteString(answerHeader + "\n")
	return assembler
}

// QuestionsEmitted returns the global number of questions appended so far.
func (a *Assembler) QuestionsEmitted() int {
	return a.emitted
}

// AppendPool emits the sampled questions of one pool, one section per
// contiguous run of items from the same file. Drawn items must already be
// grouped by file index (the order exam.Sample returns). A pool or file that
// contributed no items emits nothing.
func (a *Assembler) AppendPool(files []question.File, drawn []exam.Drawn) {
	start := 0
	for start < len(drawn) {
		end := start
		for end < len(drawn) && drawn[end].FileIndex == drawn[start].FileIndex {
			end++
		}
		a.appendSection(files[drawn[start].FileIndex].Instructions, drawn[start:end])
		start = end
	}
}

func (a *Assembler) appendSection(instructions string, items []exam.Drawn) {
	a.both(InstructionStart + instructions + InstructionEnd + "\n")
	a.both(BeginQuestions + "\n")
	for _, item := range items {
		a.test.WriteString(Spacing + Item + item.Text + "\n")
		a.test.WriteString(Spacing + answerBoxEmpty + "\n")

		a.key.WriteString(Spacing + Item + item.Text + "\n")
		a.key.WriteString(Spacing + answerBoxFullStart)
		// The answer goes on its own line: answers keep their raw tail after
		// the marker, which may itself contain comment characters.
		a.key.WriteString("\n" + Spacing + Spacing + item.Answer + "\n")
		a.key.WriteString(Spacing + answerBoxFullEnd + "\n")

		a.emitted++
		if _, ok := a.pageBreaks[a.emitted]; ok {
			a.both(Spacing + NewPage + "\n")
		}
	}
	a.both(EndQuestions + "\n\n")
}

func (a *Assembler) both(s string) {
	a.test.WriteString(s)
	a.key.WriteString(s)
}

// Finish appends the document terminator to both streams and returns them.
func (a *Assembler) Finish() Document {
	return Document{
		Test:      a.test.String() + EndDocument,
		AnswerKey: a.key.String() + EndDocument,
	}
}
