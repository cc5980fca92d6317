package models

// QuestionKind identifies how a question is answered and graded.
type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionCode           QuestionKind = "code"
)

// Question is one graded item within a level. Multiple-choice questions carry
// an options list and the index of the correct option; code questions carry
// the concepts the submitted snippet must contain.
type Question struct {
	Text             string       `json:"text"`
	Kind             QuestionKind `json:"kind"`
	Options          []string     `json:"options,omitempty"`
	Correct          int          `json:"correct"`
	ExpectedConcepts []string     `json:"expected_concepts,omitempty"`
	Placeholder      string       `json:"placeholder,omitempty"`
	Explanation      string       `json:"explanation"`
}

// QuestionView is a Question with the grading key removed.
type QuestionView struct {
	Text        string       `json:"text"`
	Kind        QuestionKind `json:"kind"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Answer is one submitted answer. Choice is used for multiple-choice
// questions, Code for code questions.
type Answer struct {
	Choice int    `json:"choice"`
	Code   string `json:"code,omitempty"`
}

// QuestionResult is per-question grading feedback.
type QuestionResult struct {
	Number      int    `json:"number"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
	// CorrectOption is the text of the right option for a missed
	// multiple-choice question, empty otherwise.
	CorrectOption string `json:"correct_option,omitempty"`
}

// ScoreResult is the outcome of grading one answer set against one level.
// It is a pure value: producing it touches no player state.
type ScoreResult struct {
	CorrectCount    int              `json:"correct_count"`
	TotalQuestions  int              `json:"total_questions"`
	ScorePercentage float64          `json:"score_percentage"`
	Results         []QuestionResult `json:"results"`
}
