package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// List возвращает все вопросы, упорядоченные по id
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Create создает новый вопрос. Нарушение ограничений БД возвращается как ErrValidation.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Create(question).Error
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return err
	}
	return nil
}

// Delete удаляет вопрос. Для отсутствующего вопроса возвращает ErrQuestionNotFound.
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// ListByCategory возвращает вопросы категории
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID entity.CategoryID) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", uint(categoryID)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search ищет подстроку в тексте вопроса без учёта регистра.
// LOWER(...) LIKE вместо ILIKE, чтобы запрос работал и на Postgres, и на SQLite.
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListExcluding возвращает вопросы вне excludeIDs, опционально только из категории
func (r *QuestionRepo) ListExcluding(ctx context.Context, excludeIDs []uint, categoryID entity.CategoryID) ([]entity.Question, error) {
	var questions []entity.Question

	query := r.db.WithContext(ctx).Model(&entity.Question{})
	if !categoryID.IsZero() {
		query = query.Where("category = ?", uint(categoryID))
	}
	// Исключаем уже заданные в раунде вопросы
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	err := query.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
