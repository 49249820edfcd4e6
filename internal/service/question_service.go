package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizlogic"
)

// QuestionPage — одна страница списка вопросов
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Categories []entity.Category
}

// QuestionService предоставляет методы для работы с вопросами и раундами викторины
type QuestionService struct {
	questionRepo    repository.QuestionRepository
	categoryService *CategoryService
	picker          quizlogic.Picker
	pageSize        int
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryService *CategoryService,
	config *quizlogic.Config,
) *QuestionService {
	if config == nil {
		config = quizlogic.DefaultConfig()
	}
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = quizlogic.QuestionsPerPage
	}
	return &QuestionService{
		questionRepo:    questionRepo,
		categoryService: categoryService,
		picker:          quizlogic.NewPicker(config),
		pageSize:        pageSize,
	}
}

// ListQuestions возвращает страницу вопросов, общее количество и все категории.
// Страница < 1 трактуется как первая; для пустой страницы ErrEmptyPage.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	window := quizlogic.Paginate(all, page, s.pageSize)
	if len(window) == 0 {
		return nil, apperrors.ErrEmptyPage
	}

	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:  window,
		Total:      len(all),
		Categories: categories,
	}, nil
}

// SearchQuestions ищет вопросы, текст которых содержит term (без учета регистра)
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]entity.Question, int, error) {
	matches, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search questions: %w", err)
	}
	return matches, len(matches), nil
}

// ListByCategory возвращает все вопросы категории.
// Ошибки: ErrUnknownCategory для неизвестной категории, ErrEmptyCategory для категории без вопросов.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID entity.CategoryID) ([]entity.Question, int, error) {
	if _, err := s.categoryService.GetCategory(ctx, categoryID); err != nil {
		return nil, 0, err
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, 0, apperrors.ErrEmptyCategory
	}
	return questions, len(questions), nil
}

// NextQuizQuestion выбирает следующий вопрос раунда, которого нет в previousIDs.
// categoryID = 0 означает все категории. nil без ошибки означает, что вопросы закончились.
func (s *QuestionService) NextQuizQuestion(ctx context.Context, previousIDs []uint, categoryID entity.CategoryID) (*entity.Question, error) {
	candidates, err := s.questionRepo.ListExcluding(ctx, previousIDs, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz candidates: %w", err)
	}
	// Хранилище уже отфильтровало кандидатов, но инвариант проверяется повторно в памяти
	return quizlogic.SelectQuizQuestion(candidates, previousIDs, categoryID, s.picker), nil
}

// CreateQuestion проверяет поля и сохраняет новый вопрос
func (s *QuestionService) CreateQuestion(ctx context.Context, fields quizlogic.NewQuestionFields) (*entity.Question, error) {
	question, err := quizlogic.ValidateNewQuestion(fields)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryService.GetCategory(ctx, question.Category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.Category)
		}
		return nil, err
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d (категория %d, сложность %d)",
		question.ID, question.Category, question.Difficulty)
	return question, nil
}

// DeleteQuestion удаляет вопрос по ID
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) (uint, error) {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	log.Printf("[QuestionService] Удалён вопрос ID=%d", id)
	return id, nil
}
