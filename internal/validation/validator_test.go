package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Client string `json:"cliente" validate:"required"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pendente confirmado"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(&form{Client: "Ana"}))
	assert.NoError(t, Struct(&form{Client: "Ana", Status: "pendente"}))

	err := Struct(&form{Status: "adiado"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "cliente", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Tag)
	assert.Equal(t, "status", verr.Fields[1].Field)
	assert.Equal(t, "cliente is required; status must be one of: pendente confirmado", err.Error())
}
