package entity

import "strconv"

// CategoryID — каноничный тип идентификатора категории.
// Вопрос ссылается на категорию этим же типом, поэтому сравнение всегда uint == uint.
type CategoryID uint

// String возвращает десятичное представление идентификатора
func (id CategoryID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsZero сообщает, что категория не задана (0 означает "все категории")
func (id CategoryID) IsZero() bool {
	return id == 0
}

// Category представляет категорию вопросов
type Category struct {
	ID   CategoryID `gorm:"primaryKey" json:"id"`
	Type string     `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
