package types

import (
	"github.com/goccy/go-json"
)

// ID непрозрачный идентификатор записи, назначаемый внешним хранилищем
// Хранилище может выдавать как числовые (1), так и строковые ("a1b2") идентификаторы
type ID string

// UnmarshalJSON принимает число или строку
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(rawScalar(data))
	return nil
}

// MarshalJSON всегда отдает идентификатор строкой
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// IsZero возвращает true, если идентификатор не назначен
func (id ID) IsZero() bool {
	return id == ""
}
