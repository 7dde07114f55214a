package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/internal/logging"
	pgtx "github.com/xw1nchester/countries-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type repository struct {
	client pgtx.Executor
	logger *zap.Logger
}

func New(client pgtx.Executor, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetAll(ctx context.Context) ([]country.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY short_name`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]country.Country, 0)
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		countries = append(countries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %w", err)
	}

	return countries, nil
}

func (r *repository) GetByAlpha2(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_alpha2", code)
}

func (r *repository) GetByAlpha3(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_alpha3", code)
}

func (r *repository) GetByNumeric(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_numeric", code)
}

func (r *repository) GetByShortName(ctx context.Context, name string) (*country.Country, error) {
	return r.getBy(ctx, "short_name", name)
}

func (r *repository) GetByFullName(ctx context.Context, name string) (*country.Country, error) {
	return r.getBy(ctx, "full_name", name)
}

// column is never user input.
func (r *repository) getBy(ctx context.Context, column, value string) (*country.Country, error) {
	query := `
		SELECT ` + countryColumns + `
		FROM countries
		WHERE ` + column + `=$1
	`

	logging.LogSQLQuery(r.logger, query, value)

	c, err := scanCountry(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, data country.Country) error {
	query := `
		INSERT INTO countries (` + countryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ShortName,
		data.FullName,
		data.IsoAlpha2,
		data.IsoAlpha3,
		data.IsoNumeric,
		data.Population,
		data.Square,
	)

	return pgConstraintError(err)
}

func (r *repository) Update(ctx context.Context, alpha2 string, data country.Country) error {
	query := `
		UPDATE countries
		SET short_name=$1, full_name=$2, population=$3, square=$4
		WHERE iso_alpha2=$5
	`

	logging.LogSQLQuery(r.logger, query)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(
		ctx,
		query,
		data.ShortName,
		data.FullName,
		data.Population,
		data.Square,
		alpha2,
	)
	if err != nil {
		return pgConstraintError(err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCountryNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, alpha2 string) error {
	query := `DELETE FROM countries WHERE iso_alpha2=$1`

	logging.LogSQLQuery(r.logger, query, alpha2)

	tag, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, alpha2)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrCountryNotFound
	}

	return nil
}

func pgConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	for suffix, field := range constraintFields {
		if strings.HasSuffix(pgErr.ConstraintName, suffix) {
			return &ConstraintError{Field: field, Err: err}
		}
	}

	return err
}
