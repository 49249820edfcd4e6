package memory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// LoadQuestionsFile читает начальный набор вопросов из JSON-файла
// (массив объектов {question, answer, category, difficulty}).
// Пустой путь означает встроенный набор DefaultQuestions.
func LoadQuestionsFile(path string) ([]entity.Question, error) {
	if path == "" {
		return DefaultQuestions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var questions []entity.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	for i, q := range questions {
		if q.Question == "" || q.Answer == "" || q.Category.IsZero() || !entity.IsValidDifficulty(q.Difficulty) {
			return nil, fmt.Errorf("seed file %s: invalid question at index %d", path, i)
		}
	}
	return questions, nil
}

// DefaultQuestions — встроенный набор вопросов для режима без БД
func DefaultQuestions() []entity.Question {
	return []entity.Question{
		{ID: 1, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 2, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 3, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 4, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 5, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 6, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{ID: 7, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	}
}
