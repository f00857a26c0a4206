package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rodrigohacking/plinhub/infrastructure/database/postgres"
	"github.com/rodrigohacking/plinhub/internal/domain"
)

const (
	dealsTable = "deals"

	// 500 linhas x 23 colunas fica abaixo do limite de 65535 parâmetros do Postgres
	dealsInsertBatchSize = 500
)

var dealColumns = []string{
	"id", "company_id", "title", "deal_date", "card_created_at", "days_to_close", "amount",
	"channel", "labels", "seller", "client", "status", "loss_reason", "won_date",
	"phase_id", "phase_name", "utm_campaign", "utm_content", "utm_term", "utm_source",
	"utm_medium", "insurance_type", "synced_at",
}

type DealRepository interface {
	ReplaceCompanyDeals(ctx context.Context, companyID string, deals []*domain.Deal) error
	ListByCompany(companyID string, filters domain.DealFilters) ([]*domain.Deal, error)
}

type dealRepository struct {
	conn postgres.Conn
}

func NewDealRepository(conn postgres.Conn) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

// ReplaceCompanyDeals substitui o snapshot de negócios da empresa em uma única transação
func (r *dealRepository) ReplaceCompanyDeals(ctx context.Context, companyID string, deals []*domain.Deal) error {
	syncedAt := time.Now().UTC()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(dealsTable).
			Where(squirrel.Eq{"company_id": companyID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover negócios da empresa %s: %w", companyID, err)
		}

		for start := 0; start < len(deals); start += dealsInsertBatchSize {
			batch := deals[start:min(start+dealsInsertBatchSize, len(deals))]

			query := squirrel.
				Insert(dealsTable).
				Columns(dealColumns...).
				PlaceholderFormat(squirrel.Dollar)

			for _, deal := range batch {
				query = query.Values(
					deal.ID,
					companyID,
					deal.Title,
					deal.Date,
					deal.CreatedAt,
					deal.DaysToClose,
					deal.Amount,
					deal.Channel,
					pq.Array(deal.Labels),
					deal.Seller,
					deal.Client,
					string(deal.Status),
					deal.LossReason,
					deal.WonDate,
					deal.PhaseID,
					deal.PhaseName,
					deal.UTMCampaign,
					deal.UTMContent,
					deal.UTMTerm,
					deal.UTMSource,
					deal.UTMMedium,
					deal.InsuranceType,
					syncedAt,
				)
			}

			insertSQL, insertArgs, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir negócios da empresa %s: %w", companyID, err)
			}
		}

		return nil
	})
}

// ListByCompany devolve os negócios salvos, filtrando pela data do negócio quando informada
func (r *dealRepository) ListByCompany(companyID string, filters domain.DealFilters) ([]*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("deal_date DESC NULLS LAST", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"deal_date": *filters.StartDate})
	}
	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"deal_date": filters.EndDate.AddDate(0, 0, 1)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar negócios: %w", err)
	}

	return deals, nil
}

func scanDeal(row rowScanner) (*domain.Deal, error) {
	var (
		deal          domain.Deal
		status        string
		dealDate      sql.NullTime
		createdAt     sql.NullTime
		lossReason    sql.NullString
		wonDate       sql.NullString
		utmCampaign   sql.NullString
		utmContent    sql.NullString
		utmTerm       sql.NullString
		utmSource     sql.NullString
		utmMedium     sql.NullString
		insuranceType sql.NullString
		syncedAt      time.Time
	)

	if err := row.Scan(
		&deal.ID,
		&deal.CompanyID,
		&deal.Title,
		&dealDate,
		&createdAt,
		&deal.DaysToClose,
		&deal.Amount,
		&deal.Channel,
		pq.Array(&deal.Labels),
		&deal.Seller,
		&deal.Client,
		&status,
		&lossReason,
		&wonDate,
		&deal.PhaseID,
		&deal.PhaseName,
		&utmCampaign,
		&utmContent,
		&utmTerm,
		&utmSource,
		&utmMedium,
		&insuranceType,
		&syncedAt,
	); err != nil {
		return nil, err
	}

	deal.Status = domain.DealStatus(status)
	deal.Date = nullTimePtr(dealDate)
	deal.CreatedAt = nullTimePtr(createdAt)
	deal.LossReason = nullStringPtr(lossReason)
	deal.WonDate = nullStringPtr(wonDate)
	deal.UTMCampaign = nullStringPtr(utmCampaign)
	deal.UTMContent = nullStringPtr(utmContent)
	deal.UTMTerm = nullStringPtr(utmTerm)
	deal.UTMSource = nullStringPtr(utmSource)
	deal.UTMMedium = nullStringPtr(utmMedium)
	deal.InsuranceType = nullStringPtr(insuranceType)

	return &deal, nil
}

func nullStringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}
