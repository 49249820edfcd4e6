package handler

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/response"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizlogic"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами и раундами викторины
type QuestionHandler struct {
	questionService *service.QuestionService
	exportService   *service.ExportService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, exportService *service.ExportService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		exportService:   exportService,
	}
}

// ListQuestions возвращает страницу вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := quizlogic.ParsePage(c.Query("page"))

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{
		"questions":        dto.NewQuestionResponses(result.Questions),
		"total_questions":  result.Total,
		"current_category": "All",
		"categories":       dto.NewCategoryList(result.Categories),
	})
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	deleted, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{"deleted": deleted})
}

// CreateQuestion создает вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), req.ToFields())
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{"created": question.ID})
}

// SearchQuestions ищет вопросы по подстроке
// POST /search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SearchTerm == nil {
		response.Error(c, http.StatusUnprocessableEntity)
		return
	}

	questions, total, err := h.questionService.SearchQuestions(c.Request.Context(), *req.SearchTerm)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, gin.H{
		"questions":       dto.NewQuestionResponses(questions),
		"total_questions": total,
	})
}

// NextQuizQuestion возвращает следующий вопрос раунда или null, если вопросы закончились
// POST /quizzes
func (h *QuestionHandler) NextQuizQuestion(c *gin.Context) {
	var req dto.QuizRequest
	// Неполный или некорректный запрос раунда фронтенд ожидает как 404
	if err := c.ShouldBindJSON(&req); err != nil || !req.Complete() {
		response.Error(c, http.StatusNotFound)
		return
	}

	question, err := h.questionService.NextQuizQuestion(c.Request.Context(), *req.PreviousQuestions, req.CategoryID())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:   true,
		Questions: dto.NewQuestionResponse(question),
	})
}

// ExportQuestions выгружает все вопросы в CSV или XLSX
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)

	contentType, err := service.ContentType(format)
	if err != nil {
		handleError(c, err)
		return
	}

	// Файл собирается в буфер, чтобы при ошибке можно было вернуть конверт ошибки
	var buf bytes.Buffer
	if err := h.exportService.ExportQuestions(c.Request.Context(), &buf, format); err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s.%s", time.Now().Format("20060102_150405"), format)
	log.Printf("[QuestionHandler] Экспорт вопросов: %s (%d байт)", filename, buf.Len())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
