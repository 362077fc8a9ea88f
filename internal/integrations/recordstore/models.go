package recordstore

import (
	"github.com/goccy/go-json"

	"github.com/luacris/studio-service/internal/domain"
	"github.com/luacris/studio-service/pkg/types"
)

// Collection коллекция внешнего хранилища
type Collection string

const (
	CollectionBookings Collection = "agendamentos"
	CollectionSessions Collection = "sessoes"
)

// BookingRecord агендамент в формате хранилища
// Текстовые поля лениво декодируются: число или bool в одной записи не ломают весь список
type BookingRecord struct {
	ID              types.ID          `json:"id,omitempty"`
	Cliente         types.FlexString  `json:"cliente"`
	Email           types.FlexString  `json:"email"`
	Telefone        types.FlexString  `json:"telefone"`
	Data            types.FlexString  `json:"data"`
	Horario         types.FlexString  `json:"horario"`
	TipoColecao     types.FlexString  `json:"tipo_colecao"`
	Duracao         types.FlexString  `json:"duracao"`
	Valor           types.FlexFloat   `json:"valor"`
	QuantidadeFotos types.FlexInt     `json:"quantidade_fotos"`
	Local           types.FlexString  `json:"local"`
	Observacoes     *types.FlexString `json:"observacoes,omitempty"`
	Status          types.FlexString  `json:"status"`
	DataCriacao     types.FlexString  `json:"data_criacao,omitempty"`
}

// SessionRecord сессия портфолио в формате хранилища
type SessionRecord struct {
	ID              types.ID        `json:"id,omitempty"`
	Titulo          string          `json:"titulo"`
	Categoria       string          `json:"categoria"`
	Descricao       string          `json:"descricao"`
	Conteudo        string          `json:"conteudo"`
	Data            string          `json:"data"`
	Local           string          `json:"local"`
	Fotografo       string          `json:"fotografo"`
	Cliente         string          `json:"cliente"`
	Duracao         string          `json:"duracao"`
	Equipamento     string          `json:"equipamento"`
	Preco           string          `json:"preco"`
	Inclui          string          `json:"inclui"`
	ImagemPrincipal string          `json:"imagem_principal"`
	Destaque        bool            `json:"destaque"`
	Fotos           json.RawMessage `json:"fotos,omitempty"`
}

// ToDomain конвертирует запись хранилища в доменную модель
func (r *BookingRecord) ToDomain() *domain.Booking {
	b := &domain.Booking{
		ID:             r.ID,
		Client:         r.Cliente.String(),
		Email:          r.Email.String(),
		Phone:          r.Telefone.String(),
		Date:           r.Data.String(),
		Time:           r.Horario.String(),
		CollectionType: r.TipoColecao.String(),
		Duration:       r.Duracao.String(),
		Value:          r.Valor.Float64(),
		PhotoCount:     r.QuantidadeFotos.Int(),
		Location:       r.Local.String(),
		Status:         domain.BookingStatus(r.Status),
		CreatedAt:      r.DataCriacao.String(),
	}
	if r.Observacoes != nil {
		notes := r.Observacoes.String()
		b.Notes = &notes
	}
	return b
}

// FromDomainBooking конвертирует доменную модель в запись хранилища
func FromDomainBooking(b *domain.Booking) *BookingRecord {
	r := &BookingRecord{
		ID:              b.ID,
		Cliente:         types.FlexString(b.Client),
		Email:           types.FlexString(b.Email),
		Telefone:        types.FlexString(b.Phone),
		Data:            types.FlexString(b.Date),
		Horario:         types.FlexString(b.Time),
		TipoColecao:     types.FlexString(b.CollectionType),
		Duracao:         types.FlexString(b.Duration),
		Valor:           types.FlexFloat(b.Value),
		QuantidadeFotos: types.FlexInt(b.PhotoCount),
		Local:           types.FlexString(b.Location),
		Status:          types.FlexString(b.Status),
		DataCriacao:     types.FlexString(b.CreatedAt),
	}
	if b.Notes != nil {
		notes := types.FlexString(*b.Notes)
		r.Observacoes = &notes
	}
	return r
}

// ToDomain конвертирует запись хранилища в доменную модель
func (r *SessionRecord) ToDomain() *domain.Session {
	return &domain.Session{
		ID:           r.ID,
		Title:        r.Titulo,
		Category:     r.Categoria,
		Description:  r.Descricao,
		Content:      r.Conteudo,
		Date:         r.Data,
		Location:     r.Local,
		Photographer: r.Fotografo,
		Client:       r.Cliente,
		Duration:     r.Duracao,
		Equipment:    r.Equipamento,
		Price:        r.Preco,
		Includes:     r.Inclui,
		MainImage:    r.ImagemPrincipal,
		Featured:     r.Destaque,
		Photos:       r.Fotos,
	}
}

// FromDomainSession конвертирует доменную модель в запись хранилища
func FromDomainSession(s *domain.Session) *SessionRecord {
	return &SessionRecord{
		ID:              s.ID,
		Titulo:          s.Title,
		Categoria:       s.Category,
		Descricao:       s.Description,
		Conteudo:        s.Content,
		Data:            s.Date,
		Local:           s.Location,
		Fotografo:       s.Photographer,
		Cliente:         s.Client,
		Duracao:         s.Duration,
		Equipamento:     s.Equipment,
		Preco:           s.Price,
		Inclui:          s.Includes,
		ImagemPrincipal: s.MainImage,
		Destaque:        s.Featured,
		Fotos:           s.Photos,
	}
}
