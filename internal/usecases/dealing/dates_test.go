package dealing

import (
	"testing"
	"time"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestResolveDealDate_LostUsesCreationDate(t *testing.T) {
	card := &pipefydomain.Card{
		ID:         "1",
		CreatedAt:  "2024-01-10T09:00:00Z",
		UpdatedAt:  "2024-02-01T09:00:00Z",
		FinishedAt: "2024-02-02T09:00:00Z",
		Fields:     []pipefydomain.CustomField{{Name: "Data da venda", Value: "2024-02-03"}},
	}

	date := ResolveDealDate(card, domain.DealStatusLost)
	require.NotNil(t, date)
	assert.Equal(t, mustTime(t, "2024-01-10T09:00:00Z"), *date)

	// atualizações posteriores não mudam a data de um negócio perdido
	card.UpdatedAt = "2024-06-30T09:00:00Z"
	card.FinishedAt = "2024-06-30T09:00:00Z"
	again := ResolveDealDate(card, domain.DealStatusLost)
	assert.Equal(t, *date, *again)
}

func TestResolveDealDate_LostFallsBackToSnakeCaseCreation(t *testing.T) {
	card := &pipefydomain.Card{CreatedAtSnake: "2024-01-11T00:00:00Z", UpdatedAt: "2024-03-01T00:00:00Z"}

	date := ResolveDealDate(card, domain.DealStatusLost)
	require.NotNil(t, date)
	assert.Equal(t, mustTime(t, "2024-01-11T00:00:00Z"), *date)
}

func TestResolveDealDate_WonPrefersSaleDateField(t *testing.T) {
	card := &pipefydomain.Card{
		CreatedAt:  "2024-01-10T09:00:00Z",
		FinishedAt: "2024-03-20T18:00:00Z",
		Fields:     []pipefydomain.CustomField{{Name: "Data da Venda", Value: "2024-03-05T00:00:00-03:00"}},
	}

	date := ResolveDealDate(card, domain.DealStatusWon)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *date)
}

func TestResolveDealDate_WonAcceptsBrazilianDateFormat(t *testing.T) {
	card := &pipefydomain.Card{
		FinishedAt: "2024-03-20T18:00:00Z",
		Fields:     []pipefydomain.CustomField{{Name: "Data de fechamento", Value: "15/03/2024"}},
	}

	date := ResolveDealDate(card, domain.DealStatusWon)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)
}

func TestResolveDealDate_WonWithInvalidSaleDateFallsBack(t *testing.T) {
	card := &pipefydomain.Card{
		FinishedAt: "2024-03-20T18:00:00Z",
		Fields:     []pipefydomain.CustomField{{Name: "Data da venda", Value: "semana que vem"}},
	}

	date := ResolveDealDate(card, domain.DealStatusWon)
	require.NotNil(t, date)
	assert.Equal(t, mustTime(t, "2024-03-20T18:00:00Z"), *date)
}

func TestResolveDealDate_CompletionChain(t *testing.T) {
	tests := []struct {
		name     string
		card     pipefydomain.Card
		expected string
	}{
		{
			name:     "finished_at",
			card:     pipefydomain.Card{CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-05T00:00:00Z", FinishedAt: "2024-01-04T00:00:00Z"},
			expected: "2024-01-04T00:00:00Z",
		},
		{
			name:     "updated_at quando finished_at está vazio",
			card:     pipefydomain.Card{CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-05T00:00:00Z", FinishedAt: " "},
			expected: "2024-01-05T00:00:00Z",
		},
		{
			name:     "created_at quando não há atividade",
			card:     pipefydomain.Card{CreatedAtSnake: "2024-01-02T00:00:00Z"},
			expected: "2024-01-02T00:00:00Z",
		},
		{
			name:     "valor inválido é ignorado",
			card:     pipefydomain.Card{CreatedAt: "2024-01-01T00:00:00Z", FinishedAt: "0", UpdatedAt: "2024-01-07T00:00:00Z"},
			expected: "2024-01-07T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, status := range []domain.DealStatus{domain.DealStatusNew, domain.DealStatusQualified, domain.DealStatusWon} {
				date := ResolveDealDate(&tt.card, status)
				require.NotNil(t, date)
				assert.Equal(t, mustTime(t, tt.expected), *date, status)
			}
		})
	}
}

func TestResolveDealDate_NoDates(t *testing.T) {
	assert.Nil(t, ResolveDealDate(&pipefydomain.Card{}, domain.DealStatusNew))
	assert.Nil(t, ResolveDealDate(&pipefydomain.Card{}, domain.DealStatusLost))
}

func TestDaysToClose(t *testing.T) {
	created := mustTime(t, "2024-01-01T10:00:00Z")
	sameDayEarlier := mustTime(t, "2024-01-01T00:00:00Z")
	later := mustTime(t, "2024-01-11T09:00:00Z")
	before := mustTime(t, "2023-12-01T00:00:00Z")

	assert.Equal(t, 9, DaysToClose(&later, &created))
	assert.Equal(t, 0, DaysToClose(&sameDayEarlier, &created))
	assert.Equal(t, 0, DaysToClose(&before, &created))
	assert.Equal(t, 0, DaysToClose(nil, &created))
	assert.Equal(t, 0, DaysToClose(&later, nil))
}
