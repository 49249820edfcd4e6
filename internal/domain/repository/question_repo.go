package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все выборки упорядочены по id по возрастанию.
type QuestionRepository interface {
	List(ctx context.Context) ([]entity.Question, error)
	Create(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uint) error

	// ListByCategory — фильтр по равенству категории
	ListByCategory(ctx context.Context, categoryID entity.CategoryID) ([]entity.Question, error)
	// Search — регистронезависимый поиск подстроки в тексте вопроса
	Search(ctx context.Context, term string) ([]entity.Question, error)
	// ListExcluding возвращает вопросы, id которых нет в excludeIDs.
	// Нулевой categoryID означает "любая категория".
	ListExcluding(ctx context.Context, excludeIDs []uint, categoryID entity.CategoryID) ([]entity.Question, error)
}

// CategoryRepository определяет методы для чтения категорий
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error)
}
