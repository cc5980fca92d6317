// Package engine implements the level-progression, scoring and achievement
// rules. Everything here is a pure computation over catalog content and
// player state; persistence and transport live elsewhere.
package engine

import (
	"fmt"
	"go/parser"
	"go/token"
	"strings"

	apperrors "codequest/internal/errors"
	"codequest/internal/models"
)

// Grade scores one answer set against one level. It has no side effects: a
// rejected submission (wrong answer count, empty question set) returns an
// error before any player state could be touched.
func Grade(level models.Level, answers []models.Answer) (*models.ScoreResult, error) {
	if len(level.Questions) == 0 {
		return nil, apperrors.NewValidationError("level", fmt.Sprintf("level %d has no questions", level.ID))
	}
	if len(answers) != len(level.Questions) {
		return nil, apperrors.NewAnswerCountError(len(answers), len(level.Questions))
	}

	result := &models.ScoreResult{
		TotalQuestions: len(level.Questions),
		Results:        make([]models.QuestionResult, 0, len(level.Questions)),
	}

	for i, q := range level.Questions {
		correct := gradeQuestion(q, answers[i])
		if correct {
			result.CorrectCount++
		}

		qr := models.QuestionResult{
			Number:      i + 1,
			Correct:     correct,
			Explanation: q.Explanation,
		}
		if !correct && q.Kind == models.QuestionMultipleChoice && q.Correct >= 0 && q.Correct < len(q.Options) {
			qr.CorrectOption = q.Options[q.Correct]
		}
		result.Results = append(result.Results, qr)
	}

	result.ScorePercentage = float64(result.CorrectCount) / float64(result.TotalQuestions) * 100
	return result, nil
}

func gradeQuestion(q models.Question, a models.Answer) bool {
	switch q.Kind {
	case models.QuestionCode:
		return gradeCode(q, a.Code)
	default:
		return a.Choice == q.Correct
	}
}

// gradeCode accepts a snippet only when it parses as Go AND contains every
// expected concept. A snippet that does not parse is wrong no matter how
// many concepts it mentions.
func gradeCode(q models.Question, code string) bool {
	if !parsesAsGo(code) {
		return false
	}
	lower := strings.ToLower(code)
	for _, concept := range q.ExpectedConcepts {
		if !strings.Contains(lower, strings.ToLower(concept)) {
			return false
		}
	}
	return true
}

// parsesAsGo checks syntactic validity of a submitted snippet. Snippets are
// rarely complete files, so declarations and statement blocks are tried with
// the minimal wrapping they need.
func parsesAsGo(src string) bool {
	src = strings.TrimSpace(src)
	if src == "" {
		return false
	}

	candidates := []string{
		src,
		"package main\n\n" + src,
		"package main\n\nfunc _() {\n" + src + "\n}",
	}
	for _, candidate := range candidates {
		fset := token.NewFileSet()
		if _, err := parser.ParseFile(fset, "snippet.go", candidate, 0); err == nil {
			return true
		}
	}

	_, err := parser.ParseExpr(src)
	return err == nil
}
