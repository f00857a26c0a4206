package domain

// DealMetrics agrega os negócios de uma empresa para o dashboard
type DealMetrics struct {
	Total            int                `json:"total"`
	ByStatus         map[DealStatus]int `json:"by_status"`
	WonRevenue       float64            `json:"won_revenue"`
	AverageTicket    float64            `json:"average_ticket"`
	ConversionRate   float64            `json:"conversion_rate"`
	AvgDaysToClose   float64            `json:"avg_days_to_close"`
	RevenueByChannel map[string]float64 `json:"revenue_by_channel"`
	LossReasons      map[string]int     `json:"loss_reasons"`
	DealsBySource    map[string]int     `json:"deals_by_source"`
}
