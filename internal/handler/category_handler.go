package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/response"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает все категории в виде {id: type}
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{"categories": dto.NewCategoryMap(categories)})
}

// ListCategoryQuestions возвращает все вопросы категории
// GET /categories/:id/questions
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := entity.CategoryID(c.MustGet("categoryID").(uint))

	questions, total, err := h.questionService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{
		"questions":       dto.NewQuestionResponses(questions),
		"total_questions": total,
		"category":        uint(categoryID),
	})
}
