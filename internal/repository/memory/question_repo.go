package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/service/quizlogic"
)

// QuestionRepo — хранилище вопросов в памяти процесса.
// Используется для локального запуска без Postgres (database.driver = "memory") и в тестах.
type QuestionRepo struct {
	mu        sync.RWMutex
	questions []entity.Question // всегда упорядочены по id
	nextID    uint
}

// NewQuestionRepo создаёт хранилище с начальными вопросами.
// ID начальных вопросов сохраняются; вопросы без id и новые получают id больше максимального.
func NewQuestionRepo(seed []entity.Question) *QuestionRepo {
	r := &QuestionRepo{nextID: 1}
	for _, q := range seed {
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
	}
	for _, q := range seed {
		if q.ID == 0 {
			q.ID = r.nextID
			r.nextID++
		}
		r.questions = append(r.questions, q)
	}
	sort.Slice(r.questions, func(i, j int) bool { return r.questions[i].ID < r.questions[j].ID })
	return r
}

// snapshot возвращает копию списка под read-lock
func (r *QuestionRepo) snapshot() []entity.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// List возвращает все вопросы
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	return r.snapshot(), nil
}

// Create сохраняет вопрос и назначает ему id
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return apperrors.ErrQuestionNotFound
	}
	r.questions = append(r.questions[:idx], r.questions[idx+1:]...)
	return nil
}

// ListByCategory возвращает вопросы категории
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID entity.CategoryID) ([]entity.Question, error) {
	return quizlogic.FilterByCategory(r.snapshot(), categoryID), nil
}

// Search ищет подстроку в тексте вопроса
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	matches, _ := quizlogic.Search(r.snapshot(), term)
	return matches, nil
}

// ListExcluding возвращает вопросы вне excludeIDs, опционально только из категории
func (r *QuestionRepo) ListExcluding(ctx context.Context, excludeIDs []uint, categoryID entity.CategoryID) ([]entity.Question, error) {
	out := quizlogic.ExcludeIDs(r.snapshot(), excludeIDs)
	if !categoryID.IsZero() {
		out = quizlogic.FilterByCategory(out, categoryID)
	}
	return out, nil
}

// indexOf ищет позицию вопроса; вызывается под блокировкой
func (r *QuestionRepo) indexOf(id uint) int {
	for i := range r.questions {
		if r.questions[i].ID == id {
			return i
		}
	}
	return -1
}
