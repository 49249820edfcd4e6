package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CategoriesCacheKey — ключ кеша со списком всех категорий
const CategoriesCacheKey = "categories:all"

// DefaultCategoriesTTL — время жизни кеша категорий по умолчанию
const DefaultCategoriesTTL = 10 * time.Minute

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository // может быть nil, если Redis не настроен
	ttl          time.Duration
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil: тогда категории всегда читаются из хранилища.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	ttl time.Duration,
) *CategoryService {
	if ttl <= 0 {
		ttl = DefaultCategoriesTTL
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		ttl:          ttl,
	}
}

// ListCategories возвращает все категории, упорядоченные по id
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if s.cacheRepo != nil {
		var cached []entity.Category
		err := s.cacheRepo.GetJSON(ctx, CategoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(ctx, CategoriesCacheKey, categories, s.ttl); err != nil {
			log.Printf("[CategoryService] Ошибка записи кеша категорий: %v", err)
		}
	}
	return categories, nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(ctx context.Context, id entity.CategoryID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return category, nil
}

// CategoryNames возвращает отображение id -> название категории
func (s *CategoryService) CategoryNames(ctx context.Context) (map[entity.CategoryID]string, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[entity.CategoryID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Type
	}
	return names, nil
}
