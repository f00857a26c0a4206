package domain

import (
	"time"
)

type DealStatus string

const (
	DealStatusNew       DealStatus = "new"
	DealStatusQualified DealStatus = "qualified"
	DealStatusWon       DealStatus = "won"
	DealStatusLost      DealStatus = "lost"
)

// DefaultLossReason é usado quando um negócio perdido não possui motivo preenchido
const DefaultLossReason = "Outros"

// Deal é a representação normalizada de um card do Pipefy.
// É construído a cada busca e não é alterado depois de criado.
type Deal struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"companyId"`
	Title         string     `json:"title"`
	Date          *time.Time `json:"date"`
	CreatedAt     *time.Time `json:"createdAt"`
	DaysToClose   int        `json:"daysToClose"`
	Amount        float64    `json:"amount"`
	Channel       string     `json:"channel"`
	Labels        []string   `json:"labels"`
	Seller        string     `json:"seller"`
	Client        string     `json:"client"`
	Status        DealStatus `json:"status"`
	LossReason    *string    `json:"lossReason"`
	WonDate       *string    `json:"wonDate"`
	PhaseID       string     `json:"phaseId"`
	PhaseName     string     `json:"phaseName"`
	UTMCampaign   *string    `json:"utmCampaign"`
	UTMContent    *string    `json:"utmContent"`
	UTMTerm       *string    `json:"utmTerm"`
	UTMSource     *string    `json:"utmSource"`
	UTMMedium     *string    `json:"utmMedium"`
	InsuranceType *string    `json:"insuranceType"`
}

// DealsDebug traz contadores para diagnosticar configurações de fase incorretas
type DealsDebug struct {
	PhasesFound     int      `json:"phasesFound"`
	TotalRaw        int      `json:"totalRaw"`
	FilteredCount   int      `json:"filteredCount"`
	TruncatedPhases []string `json:"truncatedPhases,omitempty"`
	FailedPhases    []string `json:"failedPhases,omitempty"`
}

type DealsResult struct {
	Deals []*Deal    `json:"deals"`
	Debug DealsDebug `json:"debug"`
}

type DealFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
