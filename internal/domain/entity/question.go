package entity

import (
	"time"
)

// Границы допустимой сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Question   string     `gorm:"not null" json:"question"`
	Answer     string     `gorm:"not null" json:"answer"`
	Category   CategoryID `gorm:"column:category;not null;index" json:"category"`
	Difficulty int        `gorm:"not null" json:"difficulty"`
	CreatedAt  time.Time  `json:"-"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// InCategory проверяет принадлежность вопроса категории
func (q *Question) InCategory(categoryID CategoryID) bool {
	return q.Category == categoryID
}

// IsValidDifficulty проверяет, что сложность в допустимом диапазоне
func IsValidDifficulty(difficulty int) bool {
	return difficulty >= MinDifficulty && difficulty <= MaxDifficulty
}
