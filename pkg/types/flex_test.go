package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatOrZero(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"450.00", 450},
		{"500", 500},
		{" 300 ", 300},
		{"450,50", 450.5},
		{"", 0},
		{"R$ 450", 0},
		{"abc", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFloatOrZero(tt.in))
		})
	}
}

func TestParseIntOrZero(t *testing.T) {
	assert.Equal(t, 20, ParseIntOrZero("20"))
	assert.Equal(t, 12, ParseIntOrZero("12.7"))
	assert.Equal(t, 0, ParseIntOrZero("muitas"))
	assert.Equal(t, 0, ParseIntOrZero(""))
}

func TestFlexFields_Unmarshal(t *testing.T) {
	type record struct {
		ID     ID        `json:"id"`
		Valor  FlexFloat `json:"valor"`
		Fotos  FlexInt   `json:"quantidade_fotos"`
		Outro  FlexFloat `json:"outro"`
		Ausent FlexFloat `json:"ausente"`
	}

	var r record
	err := json.Unmarshal([]byte(`{"id": 7, "valor": "450.00", "quantidade_fotos": "20", "outro": null}`), &r)
	require.NoError(t, err)

	assert.Equal(t, ID("7"), r.ID)
	assert.Equal(t, 450.0, r.Valor.Float64())
	assert.Equal(t, 20, r.Fotos.Int())
	assert.Equal(t, 0.0, r.Outro.Float64())
	assert.Equal(t, 0.0, r.Ausent.Float64())

	err = json.Unmarshal([]byte(`{"id": "a1b2", "valor": 300.5, "quantidade_fotos": 15, "outro": true}`), &r)
	require.NoError(t, err)

	assert.Equal(t, ID("a1b2"), r.ID)
	assert.Equal(t, 300.5, r.Valor.Float64())
	assert.Equal(t, 15, r.Fotos.Int())
	assert.Equal(t, 0.0, r.Outro.Float64())
}

func TestFlexString_Unmarshal(t *testing.T) {
	var r struct {
		Data   FlexString `json:"data"`
		Tipo   FlexString `json:"tipo_colecao"`
		Status FlexString `json:"status"`
		Local  FlexString `json:"local"`
		Vazio  FlexString `json:"vazio"`
	}

	err := json.Unmarshal([]byte(`{"data": 20250310, "tipo_colecao": "Gestante", "status": false, "local": {"cidade": "BH"}, "vazio": null}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "20250310", r.Data.String())
	assert.Equal(t, "Gestante", r.Tipo.String())
	assert.Equal(t, "", r.Status.String())
	assert.Equal(t, "", r.Local.String())
	assert.Equal(t, "", r.Vazio.String())
}

func TestID_MarshalAsString(t *testing.T) {
	data, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ID: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42"}`, string(data))
	assert.True(t, ID("").IsZero())
}
