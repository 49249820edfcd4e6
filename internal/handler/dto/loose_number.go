package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// looseNumberText достаёт текст числа из JSON-числа или строки с числом.
// Формы SPA отправляют значения select как строки.
func looseNumberText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", fmt.Errorf("value must not be null")
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}

// LooseUint — неотрицательный целый идентификатор, который клиент может прислать
// как JSON-число (5) или как строку с числом ("5").
// Приведение к uint выполняется один раз, на границе HTTP.
type LooseUint uint

// UnmarshalJSON принимает число или строку с числом
func (u *LooseUint) UnmarshalJSON(data []byte) error {
	raw, err := looseNumberText(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid id %s: must be a non-negative integer", string(data))
	}
	*u = LooseUint(v)
	return nil
}

// MarshalJSON всегда пишет число
func (u LooseUint) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(u), 10)), nil
}

// LooseInt — целое число (например, сложность), принимаемое как 3 или "3".
// Диапазон проверяет валидация, здесь только разбор.
type LooseInt int

// UnmarshalJSON принимает число или строку с числом
func (i *LooseInt) UnmarshalJSON(data []byte) error {
	raw, err := looseNumberText(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer %s", string(data))
	}
	*i = LooseInt(v)
	return nil
}

// MarshalJSON всегда пишет число
func (i LooseInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(i), 10)), nil
}
