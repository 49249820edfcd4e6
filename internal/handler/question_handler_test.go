package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/repository/memory"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizlogic"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter собирает роутер поверх хранилища в памяти с детерминированным выбором вопроса
func newTestRouter(categories []entity.Category, questions []entity.Question) *gin.Engine {
	questionRepo := memory.NewQuestionRepo(questions)
	categoryService := service.NewCategoryService(memory.NewCategoryRepo(categories), nil, 0)
	questionService := service.NewQuestionService(questionRepo, categoryService, &quizlogic.Config{
		PageSize:  quizlogic.QuestionsPerPage,
		Selection: quizlogic.SelectionFirst,
	})
	exportService := service.NewExportService(questionRepo, categoryService)

	return NewRouter(RouterDeps{
		QuestionHandler: NewQuestionHandler(questionService, exportService),
		CategoryHandler: NewCategoryHandler(categoryService, questionService),
	})
}

// scenarioRouter — две категории и два вопроса
func scenarioRouter() *gin.Engine {
	return newTestRouter(
		[]entity.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
		[]entity.Question{
			{ID: 1, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1},
			{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 2},
		},
	)
}

// doRequest выполняет запрос; body сериализуется в JSON, строка отправляется как есть
func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// assertErrorEnvelope проверяет конверт ошибки
func assertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, float64(status), resp["error"])
	assert.Equal(t, message, resp["message"])
}

func questionIDsFrom(t *testing.T, resp map[string]interface{}) []float64 {
	t.Helper()
	raw, ok := resp["questions"].([]interface{})
	require.True(t, ok, "questions должен быть массивом")
	out := make([]float64, 0, len(raw))
	for _, q := range raw {
		out = append(out, q.(map[string]interface{})["id"].(float64))
	}
	return out
}

func TestScenario_EndToEnd(t *testing.T) {
	router := scenarioRouter()

	// Вопросы категории 2
	w := doRequest(router, http.MethodGet, "/categories/2/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, []float64{2}, questionIDsFrom(t, resp))
	assert.Equal(t, float64(1), resp["total_questions"])
	assert.Equal(t, float64(2), resp["category"])

	// Поиск "who"
	w = doRequest(router, http.MethodPost, "/search", map[string]string{"searchTerm": "who"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseJSONResponse(t, w)
	assert.Equal(t, []float64{2}, questionIDsFrom(t, resp))
	assert.Equal(t, float64(1), resp["total_questions"])

	// Удаление вопроса 1
	w = doRequest(router, http.MethodDelete, "/questions/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["deleted"])

	// Категория 1 теперь пуста
	w = doRequest(router, http.MethodGet, "/categories/1/questions", nil)
	assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")
}

func TestListCategories(t *testing.T) {
	router := scenarioRouter()

	w := doRequest(router, http.MethodGet, "/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"categories":{"1":"Science","2":"Art"}}`, w.Body.String())
}

func TestListQuestions_Pagination(t *testing.T) {
	questions := make([]entity.Question, 0, 12)
	for i := 1; i <= 12; i++ {
		questions = append(questions, entity.Question{
			ID: uint(i), Question: fmt.Sprintf("Q%d", i), Answer: "A", Category: 1, Difficulty: 1,
		})
	}
	router := newTestRouter(memory.DefaultCategories(), questions)

	testCases := []struct {
		name     string
		path     string
		expected []float64
	}{
		{"без параметра", "/questions", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"вторая страница", "/questions?page=2", []float64{11, 12}},
		{"некорректная страница", "/questions?page=abc", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"нулевая страница", "/questions?page=0", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, tc.expected, questionIDsFrom(t, resp))
			assert.Equal(t, float64(12), resp["total_questions"])
			assert.Equal(t, "All", resp["current_category"])
			categories := resp["categories"].([]interface{})
			assert.Len(t, categories, 6)
			assert.Equal(t, "Science", categories[0].(map[string]interface{})["type"])
		})
	}

	for _, page := range []string{"1000", "922337203685477581", "9223372036854775807"} {
		w := doRequest(router, http.MethodGet, "/questions?page="+page, nil)
		assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")
	}
}

func TestDeleteQuestion_Errors(t *testing.T) {
	router := scenarioRouter()

	w := doRequest(router, http.MethodDelete, "/questions/999999", nil)
	assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")

	w = doRequest(router, http.MethodDelete, "/questions/abc", nil)
	assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")
}

func TestCreateQuestion(t *testing.T) {
	router := scenarioRouter()

	w := doRequest(router, http.MethodPost, "/questions", map[string]interface{}{
		"question":   "Which planet is red?",
		"answer":     "Mars",
		"category":   "1",
		"difficulty": 2,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(3), resp["created"])

	// Форма SPA присылает значения select строками
	w = doRequest(router, http.MethodPost, "/questions", `{"question":"Q?","answer":"A","category":"1","difficulty":"3"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(4), parseJSONResponse(t, w)["created"])

	// Новые вопросы видны в категории 1
	w = doRequest(router, http.MethodGet, "/categories/1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseJSONResponse(t, w)
	assert.Equal(t, []float64{1, 3, 4}, questionIDsFrom(t, resp))
	created := resp["questions"].([]interface{})[2].(map[string]interface{})
	assert.Equal(t, float64(3), created["difficulty"], "Сложность хранится числом")
}

func TestCreateQuestion_Unprocessable(t *testing.T) {
	router := scenarioRouter()

	testCases := []struct {
		name string
		body interface{}
	}{
		{"нет сложности", map[string]interface{}{"question": "Q", "answer": "A", "category": 1}},
		{"null в поле", map[string]interface{}{"question": "Q", "answer": nil, "category": 1, "difficulty": 1}},
		{"сложность вне диапазона", map[string]interface{}{"question": "Q", "answer": "A", "category": 1, "difficulty": 9}},
		{"неизвестная категория", map[string]interface{}{"question": "Q", "answer": "A", "category": 42, "difficulty": 1}},
		{"категория не число", map[string]interface{}{"question": "Q", "answer": "A", "category": "science", "difficulty": 1}},
		{"сложность не число", map[string]interface{}{"question": "Q", "answer": "A", "category": 1, "difficulty": "hard"}},
		{"сложность строкой вне диапазона", map[string]interface{}{"question": "Q", "answer": "A", "category": 1, "difficulty": "0"}},
		{"не JSON", "not json"},
		{"пустое тело", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/questions", tc.body)
			assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "Unprocessable")
		})
	}
}

func TestSearchQuestions(t *testing.T) {
	router := scenarioRouter()

	lower := parseJSONResponse(t, doRequest(router, http.MethodPost, "/search", map[string]string{"searchTerm": "what"}))
	upper := parseJSONResponse(t, doRequest(router, http.MethodPost, "/search", map[string]string{"searchTerm": "WHAT"}))
	assert.Equal(t, questionIDsFrom(t, lower), questionIDsFrom(t, upper), "Поиск регистронезависимый")

	all := parseJSONResponse(t, doRequest(router, http.MethodPost, "/search", map[string]string{"searchTerm": ""}))
	assert.Equal(t, []float64{1, 2}, questionIDsFrom(t, all))
	assert.Equal(t, float64(2), all["total_questions"])

	none := parseJSONResponse(t, doRequest(router, http.MethodPost, "/search", map[string]string{"searchTerm": "zzz"}))
	assert.Empty(t, questionIDsFrom(t, none))
}

func TestSearchQuestions_Unprocessable(t *testing.T) {
	router := scenarioRouter()

	testCases := []struct {
		name string
		body interface{}
	}{
		{"нет поля", map[string]string{"term": "who"}},
		{"число", map[string]int{"searchTerm": 5}},
		{"null", `{"searchTerm": null}`},
		{"не JSON", "searchTerm=who"},
		{"пустое тело", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/search", tc.body)
			assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "Unprocessable")
		})
	}
}

func TestNextQuizQuestion(t *testing.T) {
	router := scenarioRouter()

	testCases := []struct {
		name     string
		body     string
		expected interface{}
	}{
		{"все категории", `{"previous_questions":[],"quiz_category":{"type":"click","id":0}}`, float64(1)},
		{"исключение предыдущих", `{"previous_questions":[1],"quiz_category":{"type":"click","id":0}}`, float64(2)},
		{"категория строкой", `{"previous_questions":[],"quiz_category":{"type":"Art","id":"2"}}`, float64(2)},
		{"категория исчерпана", `{"previous_questions":[2],"quiz_category":{"type":"Art","id":2}}`, nil},
		{"все вопросы заданы", `{"previous_questions":[1,2],"quiz_category":{"type":"click","id":0}}`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/quizzes", tc.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp := parseJSONResponse(t, w)
			assert.Equal(t, true, resp["success"])
			if tc.expected == nil {
				assert.Nil(t, resp["questions"], "Вопросы закончились — null")
				return
			}
			question := resp["questions"].(map[string]interface{})
			assert.Equal(t, tc.expected, question["id"])
		})
	}
}

func TestNextQuizQuestion_MissingFields(t *testing.T) {
	router := scenarioRouter()

	bodies := []string{
		`{"previous_questions":[]}`,
		`{"quiz_category":{"type":"click","id":0}}`,
		`{}`,
		`not json`,
	}
	for _, body := range bodies {
		w := doRequest(router, http.MethodPost, "/quizzes", body)
		assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")
	}
}

func TestListCategoryQuestions_Errors(t *testing.T) {
	router := scenarioRouter()

	for _, path := range []string{"/categories/1000/questions", "/categories/abc/questions"} {
		w := doRequest(router, http.MethodGet, path, nil)
		assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")
	}
}

func TestExportQuestions(t *testing.T) {
	router := scenarioRouter()

	w := doRequest(router, http.MethodGet, "/questions/export?format=csv", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(w.Body.String(), "\ufeff"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)

	w = doRequest(router, http.MethodGet, "/questions/export?format=xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "XLSX — zip-архив")

	w = doRequest(router, http.MethodGet, "/questions/export?format=pdf", nil)
	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity, "Unprocessable")
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	router := scenarioRouter()

	w := doRequest(router, http.MethodGet, "/nope", nil)
	assertErrorEnvelope(t, w, http.StatusNotFound, "Resource Not Found")

	w = doRequest(router, http.MethodPut, "/categories", nil)
	assertErrorEnvelope(t, w, http.StatusMethodNotAllowed, "Method Not Allowed")

	w = doRequest(router, http.MethodGet, "/healthz", nil)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
