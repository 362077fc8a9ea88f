package models

import (
	"github.com/goccy/go-json"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/types"
)

// emptyPhotos значение fotos для новой сессии без фотографий
var emptyPhotos = json.RawMessage("[]")

// SessionRequest данные формы сессии
type SessionRequest struct {
	Title        string          `json:"titulo" validate:"required"`
	Category     string          `json:"categoria"`
	Description  string          `json:"descricao"`
	Content      string          `json:"conteudo"`
	Date         string          `json:"data"`
	Location     string          `json:"local"`
	Photographer string          `json:"fotografo"`
	Client       string          `json:"cliente"`
	Duration     string          `json:"duracao"`
	Equipment    string          `json:"equipamento"`
	Price        string          `json:"preco"`
	Includes     string          `json:"inclui"`
	MainImage    string          `json:"imagem_principal"`
	Featured     bool            `json:"destaque"`
	Photos       json.RawMessage `json:"fotos,omitempty"` // без fotos при обновлении сохраняются прежние
}

// ToDomain конвертирует запрос в доменную модель
func (r *SessionRequest) ToDomain() *domain.Session {
	return &domain.Session{
		Title:        r.Title,
		Category:     r.Category,
		Description:  r.Description,
		Content:      r.Content,
		Date:         r.Date,
		Location:     r.Location,
		Photographer: r.Photographer,
		Client:       r.Client,
		Duration:     r.Duration,
		Equipment:    r.Equipment,
		Price:        r.Price,
		Includes:     r.Includes,
		MainImage:    r.MainImage,
		Featured:     r.Featured,
		Photos:       r.Photos,
	}
}

// HasPhotos сообщает, передан ли в запросе массив fotos
func (r *SessionRequest) HasPhotos() bool {
	return len(r.Photos) > 0 && string(r.Photos) != "null"
}

// SessionResponse сессия для ответа API
type SessionResponse struct {
	ID           types.ID        `json:"id"`
	Title        string          `json:"titulo"`
	Category     string          `json:"categoria"`
	Description  string          `json:"descricao"`
	Content      string          `json:"conteudo"`
	Date         string          `json:"data"`
	DisplayDate  string          `json:"dataFormatada"`
	Location     string          `json:"local"`
	Photographer string          `json:"fotografo"`
	Client       string          `json:"cliente"`
	Duration     string          `json:"duracao"`
	Equipment    string          `json:"equipamento"`
	Price        string          `json:"preco"`
	Includes     string          `json:"inclui"`
	MainImage    string          `json:"imagem_principal"`
	Featured     bool            `json:"destaque"`
	Photos       json.RawMessage `json:"fotos"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	photos := json.RawMessage(s.Photos)
	if len(photos) == 0 {
		photos = emptyPhotos
	}

	return &SessionResponse{
		ID:           s.ID,
		Title:        s.Title,
		Category:     s.Category,
		Description:  s.Description,
		Content:      s.Content,
		Date:         s.Date,
		DisplayDate:  domain.FormatDisplayDate(s.Date),
		Location:     s.Location,
		Photographer: s.Photographer,
		Client:       s.Client,
		Duration:     s.Duration,
		Equipment:    s.Equipment,
		Price:        s.Price,
		Includes:     s.Includes,
		MainImage:    s.MainImage,
		Featured:     s.Featured,
		Photos:       photos,
	}
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}

	for _, session := range sessions {
		if sessionResp := FromDomainSession(session); sessionResp != nil {
			resp.Sessions = append(resp.Sessions, *sessionResp)
		}
	}

	return resp
}

// EmptyPhotos возвращает пустой массив fotos
func EmptyPhotos() []byte {
	return append([]byte(nil), emptyPhotos...)
}
