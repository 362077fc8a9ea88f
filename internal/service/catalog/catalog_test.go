package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_List(t *testing.T) {
	services := New().List()

	require.Len(t, services, 4)
	ids := make([]string, len(services))
	categories := make([]string, len(services))
	for i, s := range services {
		ids[i] = s.ID
		categories[i] = s.Category
		assert.Empty(t, s.Gallery)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	assert.Equal(t, []string{"Campanhas", "Gestantes", "Infantil", "Eventos"}, categories)
}

func TestCatalog_Get(t *testing.T) {
	c := New()

	s, err := c.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Ensaios Gestantes", s.Title)
	assert.Equal(t, "A partir de R$ 450,00", s.Price)
	assert.Equal(t, "2-3 horas", s.Duration)
	require.Len(t, s.Gallery, 3)
	assert.Equal(t, "Close-up Maternal", s.Gallery[0].Title)

	s, err = c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Sob consulta", s.Price)

	_, err = c.Get("5")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalog_GetDoesNotLeakGallery(t *testing.T) {
	c := New()

	s, err := c.Get("1")
	require.NoError(t, err)
	s.Gallery[0].Title = "alterado"
	s.Title = "alterado"

	again, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Produção Profissional", again.Gallery[0].Title)
	assert.Equal(t, "Campanhas Publicitárias", again.Title)
}

func TestCatalog_Gallery(t *testing.T) {
	c := New()

	assert.Len(t, c.Gallery("Eventos"), 3)
	assert.Empty(t, c.Gallery("Casamento"))
	assert.NotNil(t, c.Gallery("Casamento"))
}
