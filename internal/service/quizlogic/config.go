package quizlogic

import "fmt"

// QuestionsPerPage — размер страницы списка вопросов по умолчанию
const QuestionsPerPage = 10

// Режимы выбора вопроса для раунда викторины
const (
	SelectionRandom = "random" // равномерно случайный кандидат
	SelectionFirst  = "first"  // первый кандидат по id (детерминированно)
	// SelectionProgressive — сложность растёт от вопроса к вопросу раунда
	SelectionProgressive = "progressive"
)

// Config содержит настройки логики выбора и пагинации
type Config struct {
	// PageSize — количество вопросов на странице
	PageSize int

	// Selection — стратегия выбора вопроса для викторины: "random", "first" или "progressive"
	Selection string
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() *Config {
	return &Config{
		PageSize:  QuestionsPerPage,
		Selection: SelectionRandom,
	}
}

// Validate проверяет корректность настроек
func (c *Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	switch c.Selection {
	case SelectionRandom, SelectionFirst, SelectionProgressive:
		return nil
	default:
		return fmt.Errorf("unsupported quiz selection mode: %q", c.Selection)
	}
}
