package types

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var nullLiteral = []byte("null")

// FlexFloat число, которое хранилище может вернуть числом, строкой ("450.00") или null
// Нераспознанное значение превращается в 0, ошибка декодирования не возвращается
type FlexFloat float64

// UnmarshalJSON декодирует число или числовую строку
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(ParseFloatOrZero(rawScalar(data)))
	return nil
}

// Float64 возвращает значение как float64
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt целое, которое хранилище может вернуть числом, строкой ("20") или null
type FlexInt int

// UnmarshalJSON декодирует число или числовую строку, дробная часть отбрасывается
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt(ParseIntOrZero(rawScalar(data)))
	return nil
}

// Int возвращает значение как int
func (i FlexInt) Int() int {
	return int(i)
}

// FlexString текстовое поле, которое хранилище может вернуть строкой, числом или null
// Число сохраняется как текст, остальные значения дают пустую строку
type FlexString string

// UnmarshalJSON декодирует строку или число без ошибки
func (s *FlexString) UnmarshalJSON(data []byte) error {
	*s = FlexString(rawScalar(data))
	return nil
}

func (s FlexString) String() string {
	return string(s)
}

// ParseFloatOrZero разбирает денежное значение
// Допускается десятичная запятая ("450,00"); всё нераспознанное, NaN и Inf дают 0
func ParseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v, err = strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err != nil {
			return 0
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseIntOrZero разбирает целое значение, "12.7" даёт 12
func ParseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return int(ParseFloatOrZero(s))
}

// rawScalar извлекает текст скалярного JSON значения: строка без кавычек, число как есть
// Для null, bool, объектов и массивов возвращается пустая строка
func rawScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return ""
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(data)
	default:
		return ""
	}
}
