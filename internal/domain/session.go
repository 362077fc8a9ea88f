package domain

import "github.com/luacris/studio-service/pkg/types"

// Session сессия портфолио (запись коллекции sessoes)
type Session struct {
	ID           types.ID
	Title        string
	Category     string
	Description  string
	Content      string
	Date         string
	Location     string
	Photographer string
	Client       string
	Duration     string
	Equipment    string
	Price        string // свободный текст: "A partir de R$ 450,00", "Sob consulta"
	Includes     string
	MainImage    string
	Featured     bool
	Photos       []byte // непрозрачный JSON массив fotos, сохраняется как есть
}
