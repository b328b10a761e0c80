package question

// Fragment is one parsed question with its optional answer.
type Fragment struct {
	Text   string
	Answer string
}

// File holds the parsed fragments of one question source file together with
// the instruction text printed before questions drawn from it.
type File struct {
	Path         string
	Instructions string
	Fragments    []Fragment
}
