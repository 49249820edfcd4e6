package quizlogic

import (
	"strconv"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// NormalizePage приводит номер страницы к допустимому значению (>= 1)
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ParsePage разбирает номер страницы из query-параметра.
// Пустое или некорректное значение означает первую страницу.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return NormalizePage(page)
}

// Paginate возвращает окно [(page-1)*size, (page-1)*size+size) из упорядоченного списка.
// Страница за пределами данных даёт пустой срез, это не ошибка.
// Исходный срез не изменяется.
func Paginate(all []entity.Question, page, size int) []entity.Question {
	page = NormalizePage(page)
	if size < 1 {
		size = QuestionsPerPage
	}

	// Номер страницы сравнивается с числом страниц до умножения: (page-1)*size переполняется для больших page
	pages := len(all) / size
	if len(all)%size != 0 {
		pages++
	}
	if page-1 >= pages {
		return []entity.Question{}
	}
	start := (page - 1) * size
	end := len(all)
	if end-start > size {
		end = start + size
	}

	out := make([]entity.Question, end-start)
	copy(out, all[start:end])
	return out
}
