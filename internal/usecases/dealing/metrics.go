package dealing

import (
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/pkg/utils"
)

const unknownSource = "Desconhecido"

// Summarize agrega os negócios para os cards do dashboard.
// ConversionRate é o percentual de ganhos sobre o total; AvgDaysToClose considera só os ganhos.
func Summarize(deals []*domain.Deal) *domain.DealMetrics {
	metrics := &domain.DealMetrics{
		Total: len(deals),
		ByStatus: map[domain.DealStatus]int{
			domain.DealStatusNew:       0,
			domain.DealStatusQualified: 0,
			domain.DealStatusWon:       0,
			domain.DealStatusLost:      0,
		},
		RevenueByChannel: make(map[string]float64),
		LossReasons:      make(map[string]int),
		DealsBySource:    make(map[string]int),
	}

	wonDays := 0

	for _, deal := range deals {
		metrics.ByStatus[deal.Status]++

		source := unknownSource
		if deal.UTMSource != nil && *deal.UTMSource != "" {
			source = *deal.UTMSource
		}
		metrics.DealsBySource[source]++

		switch deal.Status {
		case domain.DealStatusWon:
			metrics.WonRevenue += deal.Amount
			metrics.RevenueByChannel[deal.Channel] += deal.Amount
			wonDays += deal.DaysToClose
		case domain.DealStatusLost:
			reason := domain.DefaultLossReason
			if deal.LossReason != nil {
				reason = *deal.LossReason
			}
			metrics.LossReasons[reason]++
		}
	}

	won := metrics.ByStatus[domain.DealStatusWon]
	metrics.AverageTicket = utils.Average(metrics.WonRevenue, won)
	metrics.AvgDaysToClose = utils.Average(float64(wonDays), won)
	metrics.ConversionRate = utils.Percentage(won, metrics.Total)

	metrics.WonRevenue = utils.RoundWithTwoDecimalPlace(metrics.WonRevenue)
	for channel, revenue := range metrics.RevenueByChannel {
		metrics.RevenueByChannel[channel] = utils.RoundWithTwoDecimalPlace(revenue)
	}

	return metrics
}
