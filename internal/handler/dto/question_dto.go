package dto

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizlogic"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse — категория в виде списка {id, type}
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   uint(q.Category),
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses преобразует список вопросов; пустой список остаётся [] в JSON
func NewQuestionResponses(questions []entity.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, *NewQuestionResponse(&questions[i]))
	}
	return out
}

// NewCategoryList — категории в виде списка, как в GET /questions
func NewCategoryList(categories []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: uint(c.ID), Type: c.Type})
	}
	return out
}

// NewCategoryMap — категории в виде {id: type}, как в GET /categories
func NewCategoryMap(categories []entity.Category) map[uint]string {
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[uint(c.ID)] = c.Type
	}
	return out
}

// CreateQuestionRequest — тело POST /questions.
// Указатели отличают отсутствующее поле (или null) от нулевого значения.
type CreateQuestionRequest struct {
	Question   *string    `json:"question"`
	Answer     *string    `json:"answer"`
	Category   *LooseUint `json:"category"`
	Difficulty *LooseInt  `json:"difficulty"`
}

// ToFields преобразует запрос во входные данные валидации
func (r *CreateQuestionRequest) ToFields() quizlogic.NewQuestionFields {
	fields := quizlogic.NewQuestionFields{
		Question: r.Question,
		Answer:   r.Answer,
	}
	if r.Category != nil {
		id := entity.CategoryID(*r.Category)
		fields.Category = &id
	}
	if r.Difficulty != nil {
		difficulty := int(*r.Difficulty)
		fields.Difficulty = &difficulty
	}
	return fields
}

// SearchRequest — тело POST /search.
// Отсутствующее поле или null дают SearchTerm == nil, не-строка даёт ошибку декодирования.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// QuizCategory — выбранная категория раунда; id = 0 означает "все категории"
type QuizCategory struct {
	ID   LooseUint `json:"id"`
	Type string    `json:"type"`
}

// QuizRequest — тело POST /quizzes
type QuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Complete сообщает, что оба обязательных поля присутствуют
func (r *QuizRequest) Complete() bool {
	return r.PreviousQuestions != nil && r.QuizCategory != nil
}

// CategoryID возвращает категорию раунда (0 означает все категории)
func (r *QuizRequest) CategoryID() entity.CategoryID {
	if r.QuizCategory == nil {
		return 0
	}
	return entity.CategoryID(r.QuizCategory.ID)
}

// QuizResponse — ответ POST /quizzes; Questions == nil сериализуется как null
type QuizResponse struct {
	Success   bool              `json:"success"`
	Questions *QuestionResponse `json:"questions"`
}
