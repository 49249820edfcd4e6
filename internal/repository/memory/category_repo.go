package memory

import (
	"context"
	"sort"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CategoryRepo — неизменяемый набор категорий в памяти
type CategoryRepo struct {
	categories []entity.Category
}

// NewCategoryRepo создаёт репозиторий категорий, упорядоченных по id
func NewCategoryRepo(categories []entity.Category) *CategoryRepo {
	sorted := make([]entity.Category, len(categories))
	copy(sorted, categories)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &CategoryRepo{categories: sorted}
}

// List возвращает все категории
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, apperrors.ErrUnknownCategory
}

// DefaultCategories — стандартный набор категорий игры (совпадает с миграцией 000001)
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}
