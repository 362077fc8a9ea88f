package domain

import (
	"strings"
	"time"
)

// Форматы, в которых хранилище и форма отдают поле data
var dateLayouts = []string{
	DateFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDate разбирает дату агендамента
// Месяц и день берутся как записаны, без перевода в локальную зону
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDisplayDate форматирует дату как dd/mm/yyyy
func FormatDisplayDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgDateMissing
	}

	t, ok := ParseDate(raw)
	if !ok {
		return MsgDateInvalid
	}

	return t.Format(DisplayDateFormat)
}
