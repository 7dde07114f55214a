package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/internal/logging"
	mysqltx "github.com/xw1nchester/countries-backend/pkg/transactor/mysql"
	"go.uber.org/zap"
)

const mysqlDuplicateEntry = 1062

type mysqlRepository struct {
	client mysqltx.Executor
	logger *zap.Logger
}

func NewMySQL(client mysqltx.Executor, logger *zap.Logger) *mysqlRepository {
	return &mysqlRepository{
		client: client,
		logger: logger,
	}
}

func (r *mysqlRepository) GetAll(ctx context.Context) ([]country.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries ORDER BY short_name`

	logging.LogSQLQuery(r.logger, query)

	rows, err := mysqltx.GetExecutor(ctx, r.client).QueryContext(ctx, query)
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

func (r *mysqlRepository) GetByAlpha2(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_alpha2", code)
}

func (r *mysqlRepository) GetByAlpha3(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_alpha3", code)
}

func (r *mysqlRepository) GetByNumeric(ctx context.Context, code string) (*country.Country, error) {
	return r.getBy(ctx, "iso_numeric", code)
}

func (r *mysqlRepository) GetByShortName(ctx context.Context, name string) (*country.Country, error) {
	return r.getBy(ctx, "short_name", name)
}

func (r *mysqlRepository) GetByFullName(ctx context.Context, name string) (*country.Country, error) {
	return r.getBy(ctx, "full_name", name)
}

func (r *mysqlRepository) getBy(ctx context.Context, column, value string) (*country.Country, error) {
	query := `SELECT ` + countryColumns + ` FROM countries WHERE ` + column + ` = ?`

	logging.LogSQLQuery(r.logger, query, value)

	c, err := scanCountry(mysqltx.GetExecutor(ctx, r.client).QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *mysqlRepository) Create(ctx context.Context, data country.Country) error {
	query := `INSERT INTO countries (` + countryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	logging.LogSQLQuery(r.logger, query)

	_, err := mysqltx.GetExecutor(ctx, r.client).ExecContext(
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

	return mysqlConstraintError(err)
}

func (r *mysqlRepository) Update(ctx context.Context, alpha2 string, data country.Country) error {
	query := `
		UPDATE countries
		SET short_name = ?, full_name = ?, population = ?, square = ?
		WHERE iso_alpha2 = ?
	`

	logging.LogSQLQuery(r.logger, query)

	res, err := mysqltx.GetExecutor(ctx, r.client).ExecContext(
		ctx,
		query,
		data.ShortName,
		data.FullName,
		data.Population,
		data.Square,
		alpha2,
	)
	if err != nil {
		return mysqlConstraintError(err)
	}

	return checkAffected(res)
}

func (r *mysqlRepository) Delete(ctx context.Context, alpha2 string) error {
	query := `DELETE FROM countries WHERE iso_alpha2 = ?`

	logging.LogSQLQuery(r.logger, query, alpha2)

	res, err := mysqltx.GetExecutor(ctx, r.client).ExecContext(ctx, query, alpha2)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

// MySQL reports matched-but-unchanged rows as unaffected unless the
// connection sets clientFoundRows, which pkg/client/mysql does.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrCountryNotFound
	}

	return nil
}

func mysqlConstraintError(err error) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != mysqlDuplicateEntry {
		return err
	}

	for suffix, field := range constraintFields {
		if strings.Contains(myErr.Message, suffix+"'") {
			return &ConstraintError{Field: field, Err: err}
		}
	}

	return err
}
