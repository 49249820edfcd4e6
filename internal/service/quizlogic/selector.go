package quizlogic

import (
	"math/rand"
	"sync"
	"time"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// Picker выбирает один вопрос из непустого набора кандидатов
type Picker interface {
	Pick(candidates []entity.Question) *entity.Question
}

// FirstPicker всегда возвращает первого кандидата (минимальный id)
type FirstPicker struct{}

// Pick возвращает первого кандидата или nil для пустого набора
func (FirstPicker) Pick(candidates []entity.Question) *entity.Question {
	if len(candidates) == 0 {
		return nil
	}
	q := candidates[0]
	return &q
}

// RandomPicker выбирает кандидата равномерно случайно.
// Безопасен для конкурентного использования из разных запросов.
type RandomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomPicker создаёт RandomPicker с заданным seed (0: seed от текущего времени)
func NewRandomPicker(seed int64) *RandomPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomPicker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick возвращает случайного кандидата или nil для пустого набора
func (p *RandomPicker) Pick(candidates []entity.Question) *entity.Question {
	if len(candidates) == 0 {
		return nil
	}
	p.mu.Lock()
	idx := p.rnd.Intn(len(candidates))
	p.mu.Unlock()

	q := candidates[idx]
	return &q
}

// NewPicker создаёт стратегию выбора по названию режима из конфигурации
func NewPicker(cfg *Config) Picker {
	if cfg == nil {
		return NewRandomPicker(0)
	}
	switch cfg.Selection {
	case SelectionFirst:
		return FirstPicker{}
	case SelectionProgressive:
		return NewProgressivePicker(DefaultDifficultyConfig(), NewRandomPicker(0))
	default:
		return NewRandomPicker(0)
	}
}

// SelectQuizQuestion выбирает следующий вопрос раунда.
// Кандидаты: вопросы, которых нет в previousIDs, при ненулевом categoryID только из этой категории.
// nil означает "вопросы закончились" и ошибкой не является.
func SelectQuizQuestion(
	questions []entity.Question,
	previousIDs []uint,
	categoryID entity.CategoryID,
	picker Picker,
) *entity.Question {
	candidates := ExcludeIDs(questions, previousIDs)
	if !categoryID.IsZero() {
		candidates = FilterByCategory(candidates, categoryID)
	}
	if len(candidates) == 0 {
		return nil
	}
	if picker == nil {
		picker = FirstPicker{}
	}
	if rp, ok := picker.(RoundPicker); ok {
		return rp.PickForRound(candidates, len(previousIDs)+1)
	}
	return picker.Pick(candidates)
}
