package tex

// Markup fragments for the generated documents. The empty and filled answer
// boxes share the same dimensions so the test and its answer key paginate
// identically.
const (
	answerBoxHeight = "1.6cm"
	answerBoxWidth  = "3cm"

	Spacing          = "    "
	BeginQuestions   = "\\begin{questions}"
	EndQuestions     = "\\end{questions}"
	Item             = "\\item "
	EndDocument      = "\\end{document}"
	InstructionStart = "\\noindent \\bf{"
	InstructionEnd   = "}"
	NewPage          = "\\newpage"

	// VersionToken is replaced with the assigned test number at final
	// serialization, after the output writer has probed for it.
	VersionToken = "%%VERSION_NUMBER%%"

	answerBoxEmpty = "%\\\\[.3in] \\vspace*{-10ex} \n" + Spacing +
		"\\begin{flushright} \\fbox{\\rule[0cm]{0cm}{" + answerBoxHeight +
		"} \\hspace{" + answerBoxWidth + "} } \\end{flushright} "
	answerBoxFullStart = "%\\\\[.3in] \\vspace*{-10ex} \n" + Spacing +
		"\\begin{flushright} \\fbox{\\rule[0cm]{0cm}{0cm} \\begin{minipage}[0pt][" +
		answerBoxHeight + "][c]{" + answerBoxWidth + "} \\begin{center}"
	answerBoxFullEnd = "\\end{center} \\end{minipage}} \\end{flushright}"
)
