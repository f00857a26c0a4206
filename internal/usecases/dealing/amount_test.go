package dealing

import (
	"testing"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{raw: "R$ 1.200,50", expected: 1200.50},
		{raw: "1.234,56", expected: 1234.56},
		{raw: "1234,56", expected: 1234.56},
		{raw: "1500", expected: 1500},
		{raw: "R$1.500.000,00", expected: 1500000},
		{raw: "350.75", expected: 350.75},
		{raw: "  R$ 99,9 / mês", expected: 99.9},
		{raw: "-10,5", expected: -10.5},
		{raw: "", expected: 0},
		{raw: "a combinar", expected: 0},
		{raw: "R$ ,", expected: 0},
		{raw: "--", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseAmount(tt.raw), 0.0001)
		})
	}
}

func TestSelectValueField(t *testing.T) {
	fields := []pipefydomain.CustomField{
		{Name: "Nome do cliente", Value: "ACME"},
		{Name: "Valor estimado", Value: "R$ 100,00"},
		{Name: "Prêmio Líquido", Value: "R$ 250,00"},
		{Name: "Mensalidade", Value: ""},
	}

	t.Run("campo configurado com nome exato", func(t *testing.T) {
		field := SelectValueField(fields, "premio liquido")
		require.NotNil(t, field)
		assert.Equal(t, "R$ 250,00", field.Value)
	})

	t.Run("campo configurado contido no nome", func(t *testing.T) {
		field := SelectValueField(fields, "Prêmio")
		require.NotNil(t, field)
		assert.Equal(t, "Prêmio Líquido", field.Name)
	})

	t.Run("nome exato tem prioridade sobre nome contido", func(t *testing.T) {
		withExact := append([]pipefydomain.CustomField{{Name: "Valor total", Value: "1"}}, pipefydomain.CustomField{Name: "Valor", Value: "2"})
		field := SelectValueField(withExact, "valor")
		require.NotNil(t, field)
		assert.Equal(t, "2", field.Value)
	})

	t.Run("sem configuração usa as palavras-chave", func(t *testing.T) {
		field := SelectValueField(fields, "")
		require.NotNil(t, field)
		assert.Equal(t, "Valor estimado", field.Name)
	})

	t.Run("configuração sem campo correspondente usa as palavras-chave", func(t *testing.T) {
		field := SelectValueField(fields, "Receita anual")
		require.NotNil(t, field)
		assert.Equal(t, "Valor estimado", field.Name)
	})

	t.Run("campo configurado vazio não cai nas palavras-chave", func(t *testing.T) {
		withEmpty := []pipefydomain.CustomField{
			{Name: "Valor Mensal", Value: ""},
			{Name: "Valor da Adesão", Value: "R$ 999,00"},
		}

		field := SelectValueField(withEmpty, "Valor Mensal")
		require.NotNil(t, field)
		assert.Equal(t, "Valor Mensal", field.Name)
		assert.Zero(t, ParseAmount(field.Value))
	})

	t.Run("campos vazios são ignorados", func(t *testing.T) {
		assert.Nil(t, SelectValueField([]pipefydomain.CustomField{{Name: "Mensalidade", Value: " "}}, ""))
	})

	t.Run("sem campos", func(t *testing.T) {
		assert.Nil(t, SelectValueField(nil, "valor"))
	})
}
