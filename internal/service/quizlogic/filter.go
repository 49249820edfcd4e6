package quizlogic

import (
	"strings"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// Search выполняет регистронезависимый поиск подстроки только по тексту вопроса.
// Пустой term совпадает со всеми вопросами. Порядок входа сохраняется.
func Search(all []entity.Question, term string) ([]entity.Question, int) {
	needle := strings.ToLower(term)
	matches := make([]entity.Question, 0, len(all))
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, len(matches)
}

// FilterByCategory оставляет только вопросы указанной категории
func FilterByCategory(all []entity.Question, categoryID entity.CategoryID) []entity.Question {
	out := make([]entity.Question, 0)
	for i := range all {
		if all[i].InCategory(categoryID) {
			out = append(out, all[i])
		}
	}
	return out
}

// ExcludeIDs убирает вопросы, id которых присутствуют в excluded
func ExcludeIDs(all []entity.Question, excluded []uint) []entity.Question {
	if len(excluded) == 0 {
		out := make([]entity.Question, len(all))
		copy(out, all)
		return out
	}

	seen := make(map[uint]struct{}, len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	out := make([]entity.Question, 0, len(all))
	for _, q := range all {
		if _, skip := seen[q.ID]; !skip {
			out = append(out, q)
		}
	}
	return out
}
