package quizlogic

import (
	"fmt"
	"strings"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// NewQuestionFields — поля запроса на создание вопроса.
// nil означает, что поле отсутствует в запросе.
type NewQuestionFields struct {
	Question   *string
	Answer     *string
	Category   *entity.CategoryID
	Difficulty *int
}

// ValidateNewQuestion проверяет, что все четыре поля заданы и корректны,
// и возвращает готовую к сохранению сущность.
func ValidateNewQuestion(f NewQuestionFields) (*entity.Question, error) {
	var missing []string
	if f.Question == nil {
		missing = append(missing, "question")
	}
	if f.Answer == nil {
		missing = append(missing, "answer")
	}
	if f.Category == nil {
		missing = append(missing, "category")
	}
	if f.Difficulty == nil {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}

	text := strings.TrimSpace(*f.Question)
	answer := strings.TrimSpace(*f.Answer)
	if text == "" || answer == "" {
		return nil, fmt.Errorf("%w: question and answer must not be blank", apperrors.ErrValidation)
	}
	if f.Category.IsZero() {
		return nil, fmt.Errorf("%w: category must be a positive id", apperrors.ErrValidation)
	}
	if !entity.IsValidDifficulty(*f.Difficulty) {
		return nil, fmt.Errorf("%w: difficulty must be between %d and %d, got %d",
			apperrors.ErrValidation, entity.MinDifficulty, entity.MaxDifficulty, *f.Difficulty)
	}

	return &entity.Question{
		Question:   text,
		Answer:     answer,
		Category:   *f.Category,
		Difficulty: *f.Difficulty,
	}, nil
}
