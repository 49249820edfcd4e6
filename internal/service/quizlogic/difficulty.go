package quizlogic

import (
	"log"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// DifficultyConfig содержит настройки прогрессивной сложности раунда
type DifficultyConfig struct {
	// BaseDifficultyMap — целевой уровень сложности для каждого вопроса раунда (индекс 0 = вопрос 1)
	BaseDifficultyMap []int

	// MinDifficulty, MaxDifficulty — допустимый диапазон сложности
	MinDifficulty int
	MaxDifficulty int

	// FallbackToHigher — при отсутствии вопросов искать более сложные (true) или более лёгкие (false)
	FallbackToHigher bool
}

// DefaultDifficultyConfig возвращает настройки по умолчанию: раунд из 10 вопросов от лёгких к сложным
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		// 1=very_easy, 2=easy, 3=medium, 4=hard, 5=very_hard
		BaseDifficultyMap: []int{
			1, // Q1: Very Easy
			2, // Q2: Easy
			2, // Q3: Easy
			3, // Q4: Medium
			3, // Q5: Medium
			4, // Q6: Hard
			4, // Q7: Hard
			5, // Q8: Very Hard
			5, // Q9: Very Hard
			5, // Q10: Very Hard
		},
		MinDifficulty:    entity.MinDifficulty,
		MaxDifficulty:    entity.MaxDifficulty,
		FallbackToHigher: true, // Если нет 4 → берём 5 (на рост)
	}
}

// TargetDifficulty возвращает целевой уровень сложности для вопроса N (1-indexed).
// За пределами карты раунд продолжается на последнем уровне.
func (c *DifficultyConfig) TargetDifficulty(questionNumber int) int {
	if len(c.BaseDifficultyMap) == 0 {
		return c.MinDifficulty
	}
	idx := questionNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.BaseDifficultyMap) {
		idx = len(c.BaseDifficultyMap) - 1
	}
	return c.BaseDifficultyMap[idx]
}

// SearchOrder возвращает порядок перебора уровней сложности, начиная с целевого
func (c *DifficultyConfig) SearchOrder(target int) []int {
	var order []int
	if c.FallbackToHigher {
		// Сначала вверх (сложнее), потом вниз (легче)
		for diff := target; diff <= c.MaxDifficulty; diff++ {
			order = append(order, diff)
		}
		for diff := target - 1; diff >= c.MinDifficulty; diff-- {
			order = append(order, diff)
		}
	} else {
		// Сначала вниз (легче), потом вверх (сложнее)
		for diff := target; diff >= c.MinDifficulty; diff-- {
			order = append(order, diff)
		}
		for diff := target + 1; diff <= c.MaxDifficulty; diff++ {
			order = append(order, diff)
		}
	}
	return order
}

// RoundPicker — Picker, учитывающий номер вопроса в раунде
type RoundPicker interface {
	Picker
	PickForRound(candidates []entity.Question, questionNumber int) *entity.Question
}

// ProgressivePicker выбирает вопрос целевой сложности для номера вопроса в раунде,
// а при отсутствии таких берёт ближайший уровень по SearchOrder.
// Внутри уровня выбор делегируется inner.
type ProgressivePicker struct {
	config *DifficultyConfig
	inner  Picker
}

// NewProgressivePicker создаёт ProgressivePicker; nil-аргументы заменяются значениями по умолчанию
func NewProgressivePicker(config *DifficultyConfig, inner Picker) *ProgressivePicker {
	if config == nil {
		config = DefaultDifficultyConfig()
	}
	if inner == nil {
		inner = FirstPicker{}
	}
	return &ProgressivePicker{config: config, inner: inner}
}

// Pick выбирает вопрос как для первого вопроса раунда
func (p *ProgressivePicker) Pick(candidates []entity.Question) *entity.Question {
	return p.PickForRound(candidates, 1)
}

// PickForRound выбирает вопрос для вопроса questionNumber (1-indexed)
func (p *ProgressivePicker) PickForRound(candidates []entity.Question, questionNumber int) *entity.Question {
	if len(candidates) == 0 {
		return nil
	}

	byDifficulty := make(map[int][]entity.Question)
	for _, q := range candidates {
		byDifficulty[q.Difficulty] = append(byDifficulty[q.Difficulty], q)
	}

	target := p.config.TargetDifficulty(questionNumber)
	for _, diff := range p.config.SearchOrder(target) {
		if pool := byDifficulty[diff]; len(pool) > 0 {
			if diff != target {
				log.Printf("[ProgressivePicker] Fallback: вопрос сложности %d (цель %d) для Q%d", diff, target, questionNumber)
			}
			return p.inner.Pick(pool)
		}
	}

	// Сложность кандидатов вне диапазона конфигурации
	return p.inner.Pick(candidates)
}
