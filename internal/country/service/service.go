package service

import (
	"context"
	"errors"

	"github.com/xw1nchester/countries-backend/internal/apperror"
	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/internal/country/db"
	"github.com/xw1nchester/countries-backend/pkg/transactor"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockcountryrepo . Repository
type Repository interface {
	GetAll(ctx context.Context) ([]country.Country, error)
	GetByAlpha2(ctx context.Context, code string) (*country.Country, error)
	GetByAlpha3(ctx context.Context, code string) (*country.Country, error)
	GetByNumeric(ctx context.Context, code string) (*country.Country, error)
	GetByShortName(ctx context.Context, name string) (*country.Country, error)
	GetByFullName(ctx context.Context, name string) (*country.Country, error)
	Create(ctx context.Context, data country.Country) error
	Update(ctx context.Context, alpha2 string, data country.Country) error
	Delete(ctx context.Context, alpha2 string) error
}

type service struct {
	repository Repository
	txManager  transactor.Manager
	logger     *zap.Logger
}

func New(repository Repository, txManager transactor.Manager, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		txManager:  txManager,
		logger:     logger,
	}
}

type lookupFunc func(ctx context.Context, value string) (*country.Country, error)

// uniqueField is one uniqueness check: the value of field must not belong to
// any country other than the one being edited.
type uniqueField struct {
	field  string
	value  string
	lookup lookupFunc
}

func (s *service) GetAll(ctx context.Context) ([]country.Country, error) {
	countries, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching countries", zap.Error(err))
		return nil, err
	}

	return countries, nil
}

func (s *service) Get(ctx context.Context, code string) (*country.Country, error) {
	code = country.NormalizeCode(code)

	lookup, err := s.lookupByCode(code)
	if err != nil {
		return nil, err
	}

	return s.getByCode(ctx, code, lookup)
}

func (s *service) Add(ctx context.Context, input country.Input) (*country.Country, error) {
	c, errs := country.ValidateForCreate(input)
	if len(errs) > 0 {
		return nil, apperror.NewInvalidCountry("invalid country data", errs)
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkCodesAvailable(ctx, c); err != nil {
			return err
		}

		if err := s.checkNamesAvailable(ctx, c, nil); err != nil {
			return err
		}

		if err := s.repository.Create(ctx, c); err != nil {
			return s.mapWriteError(err, c.IsoAlpha2, c, "creating country")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *service) Edit(ctx context.Context, code string, input country.Input) (*country.Country, error) {
	code = country.NormalizeCode(code)

	lookup, err := s.lookupByCode(code)
	if err != nil {
		return nil, err
	}

	var updated country.Country

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.getByCode(ctx, code, lookup)
		if err != nil {
			return err
		}

		var errs []apperror.FieldError
		updated, errs = country.ValidateForEdit(*existing, input)
		if len(errs) > 0 {
			return apperror.NewInvalidCountry("invalid country data", errs)
		}

		if err := s.checkNamesAvailable(ctx, updated, existing); err != nil {
			return err
		}

		if err := s.repository.Update(ctx, existing.IsoAlpha2, updated); err != nil {
			return s.mapWriteError(err, code, updated, "updating country")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	code = country.NormalizeCode(code)

	lookup, err := s.lookupByCode(code)
	if err != nil {
		return err
	}

	existing, err := s.getByCode(ctx, code, lookup)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, existing.IsoAlpha2); err != nil {
		return s.mapWriteError(err, code, *existing, "deleting country")
	}

	return nil
}

func (s *service) lookupByCode(code string) (lookupFunc, error) {
	switch country.Classify(code) {
	case country.CodeAlpha2:
		return s.repository.GetByAlpha2, nil
	case country.CodeAlpha3:
		return s.repository.GetByAlpha3, nil
	case country.CodeNumeric:
		return s.repository.GetByNumeric, nil
	default:
		return nil, apperror.NewInvalidCode(code)
	}
}

func (s *service) getByCode(ctx context.Context, code string, lookup lookupFunc) (*country.Country, error) {
	c, err := lookup(ctx, code)
	if err != nil {
		if errors.Is(err, db.ErrCountryNotFound) {
			return nil, apperror.NewNotFound(code)
		}

		s.logger.Error(
			"unexpected error when fetching country by code",
			zap.String("code", code),
			zap.Stringer("code_type", country.Classify(code)),
			zap.Error(err),
		)
		return nil, err
	}

	return c, nil
}

func (s *service) checkCodesAvailable(ctx context.Context, c country.Country) error {
	fields := []uniqueField{
		{field: country.FieldIsoAlpha2, value: c.IsoAlpha2, lookup: s.repository.GetByAlpha2},
		{field: country.FieldIsoAlpha3, value: c.IsoAlpha3, lookup: s.repository.GetByAlpha3},
		{field: country.FieldIsoNumeric, value: c.IsoNumeric, lookup: s.repository.GetByNumeric},
	}

	for _, f := range fields {
		taken, err := s.isTaken(ctx, f, "")
		if err != nil {
			return err
		}

		if taken {
			return apperror.NewDuplicatedCode(f.value, f.field)
		}
	}

	return nil
}

// checkNamesAvailable skips names equal to the ones existing already has.
// existing is nil on create.
func (s *service) checkNamesAvailable(ctx context.Context, c country.Country, existing *country.Country) error {
	fields := []uniqueField{
		{field: country.FieldShortName, value: c.ShortName, lookup: s.repository.GetByShortName},
		{field: country.FieldFullName, value: c.FullName, lookup: s.repository.GetByFullName},
	}

	self := ""
	if existing != nil {
		self = existing.IsoAlpha2
	}

	for _, f := range fields {
		if existing != nil && f.value == fieldValue(*existing, f.field) {
			continue
		}

		taken, err := s.isTaken(ctx, f, self)
		if err != nil {
			return err
		}

		if taken {
			return apperror.NewDuplicatedCountry(f.value, f.field)
		}
	}

	return nil
}

func (s *service) isTaken(ctx context.Context, f uniqueField, selfAlpha2 string) (bool, error) {
	found, err := f.lookup(ctx, f.value)
	if err != nil {
		if errors.Is(err, db.ErrCountryNotFound) {
			return false, nil
		}

		s.logger.Error(
			"unexpected error when checking uniqueness",
			zap.String("field", f.field),
			zap.Error(err),
		)
		return false, err
	}

	return found.IsoAlpha2 != selfAlpha2, nil
}

// mapWriteError turns storage signals raised by a concurrent writer into the
// same errors the pre-write checks produce.
func (s *service) mapWriteError(err error, code string, c country.Country, op string) error {
	var constraintErr *db.ConstraintError
	if errors.As(err, &constraintErr) {
		value := fieldValue(c, constraintErr.Field)

		switch constraintErr.Field {
		case country.FieldShortName, country.FieldFullName:
			return apperror.NewDuplicatedCountry(value, constraintErr.Field)
		default:
			return apperror.NewDuplicatedCode(value, constraintErr.Field)
		}
	}

	if errors.Is(err, db.ErrCountryNotFound) {
		return apperror.NewNotFound(code)
	}

	s.logger.Error("unexpected error when "+op, zap.Error(err))

	return err
}

func fieldValue(c country.Country, field string) string {
	switch field {
	case country.FieldIsoAlpha2:
		return c.IsoAlpha2
	case country.FieldIsoAlpha3:
		return c.IsoAlpha3
	case country.FieldIsoNumeric:
		return c.IsoNumeric
	case country.FieldShortName:
		return c.ShortName
	case country.FieldFullName:
		return c.FullName
	default:
		return ""
	}
}
