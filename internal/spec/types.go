package spec

// Config is the generator configuration schema loaded from gatewaymaker.yml.
type Config struct {
	Version          int                 `yaml:"version"`
	OutputDir        string              `yaml:"output_dir"`
	TestHeaderFile   string              `yaml:"test_header_file"`
	AnswerHeaderFile string              `yaml:"answer_header_file"`
	HistoryFile      string              `yaml:"history_file"`
	PageBreaksAfter  []int               `yaml:"page_breaks_after"`
	QuestionSets     []QuestionSetConfig `yaml:"question_sets"`
}

// QuestionSetConfig describes one pool of interchangeable questions.
type QuestionSetConfig struct {
	Name              string               `yaml:"name"`
	NumberOfQuestions int                  `yaml:"number_of_questions"`
	QuestionFiles     []QuestionFileConfig `yaml:"question_files"`
}

// QuestionFileConfig pairs a question source file with the instruction text
// printed before the questions drawn from it.
type QuestionFileConfig struct {
	Path         string `yaml:"path"`
	Instructions string `yaml:"instructions"`
}
