package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/rodrigohacking/plinhub/infrastructure/database/postgres"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/sirupsen/logrus"
)

const companiesTable = "companies c"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CompanyRepository é somente leitura: o cadastro de empresas pertence ao dashboard
type CompanyRepository interface {
	GetCompanyByID(companyID string) (*domain.Company, error)
	ListPipefyCompanies() ([]*domain.Company, error)
}

type companyRepository struct {
	conn postgres.Conn
}

func NewCompanyRepository(conn postgres.Conn) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func companySelect() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id, c.name, c.pipefy_pipe_id, c.pipefy_token, c.phase_config, c.updated_at").
		From(companiesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *companyRepository) GetCompanyByID(companyID string) (*domain.Company, error) {
	query, args, err := companySelect().
		Where(squirrel.Eq{"c.id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	company, err := r.scanCompany(r.conn.QueryRowContext(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar empresa %s: %w", companyID, err)
	}

	return company, nil
}

// ListPipefyCompanies lista as empresas com pipe e token configurados
func (r *companyRepository) ListPipefyCompanies() ([]*domain.Company, error) {
	query, args, err := companySelect().
		Where(squirrel.NotEq{"c.pipefy_pipe_id": nil}).
		Where(squirrel.NotEq{"c.pipefy_pipe_id": ""}).
		Where(squirrel.NotEq{"c.pipefy_token": nil}).
		Where(squirrel.NotEq{"c.pipefy_token": ""}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := r.scanCompany(rows)
		if err != nil {
			logrus.WithError(err).Warn("Empresa ignorada: erro ao ler registro")
			continue
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar empresas: %w", err)
	}

	return companies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *companyRepository) scanCompany(row rowScanner) (*domain.Company, error) {
	var (
		company     domain.Company
		pipeID      sql.NullString
		token       sql.NullString
		phaseConfig []byte
	)

	if err := row.Scan(
		&company.ID,
		&company.Name,
		&pipeID,
		&token,
		&phaseConfig,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}

	company.PipeID = pipeID.String
	company.PipefyToken = token.String

	if len(phaseConfig) > 0 {
		if err := json.Unmarshal(phaseConfig, &company.PhaseConfig); err != nil {
			return nil, fmt.Errorf("phase_config inválido para a empresa %s: %w", company.ID, err)
		}
	}

	return &company, nil
}
