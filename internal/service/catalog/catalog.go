package catalog

import "strings"

// Photo фотография галереи услуги
type Photo struct {
	Image string `json:"imagem"`
	Title string `json:"titulo"`
}

// Service услуга студии (категория съемки)
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"titulo"`
	Category    string  `json:"categoria"`
	Description string  `json:"descricao"`
	MainImage   string  `json:"imagem_principal"`
	Summary     string  `json:"resumo"`
	Content     string  `json:"conteudo"`
	Duration    string  `json:"duracao"`
	Equipment   string  `json:"equipamento"`
	Price       string  `json:"preco"`
	Includes    string  `json:"inclui"`
	Gallery     []Photo `json:"galeria,omitempty"`
}

// Catalog неизменяемый каталог услуг
type Catalog struct {
	services  []Service
	galleries map[string][]Photo
}

// New создает каталог со стандартными услугами студии
func New() *Catalog {
	return &Catalog{
		services:  defaultServices,
		galleries: defaultGalleries,
	}
}

// List возвращает услуги в порядке id, без галерей
func (c *Catalog) List() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Get возвращает услугу по id вместе с галереей
func (c *Catalog) Get(id string) (*Service, error) {
	id = strings.TrimSpace(id)
	for _, s := range c.services {
		if s.ID == id {
			found := s
			found.Gallery = c.Gallery(s.Category)
			return &found, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Gallery возвращает фотографии категории; для неизвестной категории пустой список
func (c *Catalog) Gallery(category string) []Photo {
	photos := c.galleries[category]
	out := make([]Photo, len(photos))
	copy(out, photos)
	return out
}
