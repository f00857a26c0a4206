package dealing

import (
	"math"
	"strings"
	"time"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/sirupsen/logrus"
)

var saleDateKeywords = []string{"data da venda", "data de fechamento", "closing date", "data venda"}

var (
	timestampLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	saleDateLayouts = []string{
		"2006-01-02",
		"02/01/2006",
		"02/01/2006 15:04",
	}
)

// dateCandidate é uma fonte possível para a data do negócio
type dateCandidate struct {
	source  string
	value   string
	layouts []string
}

// firstPresent devolve a primeira candidata preenchida e válida. Texto vazio conta como ausente;
// texto preenchido que não é uma data é ignorado e registrado em debug.
func firstPresent(cardID string, candidates ...dateCandidate) *time.Time {
	for _, candidate := range candidates {
		value := strings.TrimSpace(candidate.value)
		if value == "" {
			continue
		}

		if parsed, ok := parseTime(value, candidate.layouts); ok {
			return &parsed
		}

		logrus.WithFields(logrus.Fields{
			"card_id": cardID,
			"source":  candidate.source,
			"value":   value,
		}).Debug("deals: ignoring unparseable date")
	}

	return nil
}

func parseTime(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func creationCandidates(card *pipefydomain.Card) []dateCandidate {
	return []dateCandidate{
		{source: "createdAt", value: card.CreatedAt, layouts: timestampLayouts},
		{source: "created_at", value: card.CreatedAtSnake, layouts: timestampLayouts},
	}
}

// completionCandidates é a cadeia finished_at, updated_at, created_at
func completionCandidates(card *pipefydomain.Card) []dateCandidate {
	return append([]dateCandidate{
		{source: "finished_at", value: card.FinishedAt, layouts: timestampLayouts},
		{source: "updated_at", value: card.UpdatedAt, layouts: timestampLayouts},
	}, creationCandidates(card)...)
}

// ResolveCreatedAt devolve createdAt ou created_at
func ResolveCreatedAt(card *pipefydomain.Card) *time.Time {
	return firstPresent(card.ID, creationCandidates(card)...)
}

// ResolveDealDate escolhe a data do negócio conforme o status:
// perdidos ficam na data de criação, ganhos usam a data da venda informada no card
// quando existir, e os demais seguem finished_at, updated_at e created_at.
func ResolveDealDate(card *pipefydomain.Card, status domain.DealStatus) *time.Time {
	switch status {
	case domain.DealStatusLost:
		return ResolveCreatedAt(card)
	case domain.DealStatusWon:
		candidates := completionCandidates(card)
		if field := findFieldByKeywords(card.Fields, saleDateKeywords); field != nil {
			datePart, _, _ := strings.Cut(strings.TrimSpace(field.Value), "T")
			candidates = append([]dateCandidate{
				{source: field.Name, value: datePart, layouts: saleDateLayouts},
			}, candidates...)
		}
		return firstPresent(card.ID, candidates...)
	default:
		return firstPresent(card.ID, completionCandidates(card)...)
	}
}

// DaysToClose é a quantidade de dias inteiros entre a criação e a data do negócio, nunca negativa
func DaysToClose(date, createdAt *time.Time) int {
	if date == nil || createdAt == nil {
		return 0
	}

	days := math.Floor(date.Sub(*createdAt).Hours() / 24)
	if days < 0 {
		return 0
	}

	return int(days)
}
