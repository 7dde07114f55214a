package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/pkg/transactor"
	"go.uber.org/zap"
)

const (
	keyPrefix = "country:"

	aliasAlpha3  = "alpha3"
	aliasNumeric = "numeric"

	defaultOpTimeout = 50 * time.Millisecond
)

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

type Options struct {
	TTL       time.Duration
	OpTimeout time.Duration
}

// repository caches code lookups in redis. A country is stored once under
// its alpha2 key; alpha3 and numeric keys hold the alpha2 it maps to.
// Redis failures are logged and the call falls through to next.
//
// Reads inside a transaction always go to storage and are not cached. Writes
// drop the cached country at once and again after the transaction commits.
type repository struct {
	Repository
	client    *redis.Client
	ttl       time.Duration
	opTimeout time.Duration
	logger    *zap.Logger
}

func New(next Repository, client *redis.Client, opts Options, logger *zap.Logger) *repository {
	if opts.OpTimeout == 0 {
		opts.OpTimeout = defaultOpTimeout
	}

	return &repository{
		Repository: next,
		client:     client,
		ttl:        opts.TTL,
		opTimeout:  opts.OpTimeout,
		logger:     logger,
	}
}

func countryKey(alpha2 string) string {
	return keyPrefix + alpha2
}

func aliasKey(alias, code string) string {
	return keyPrefix + alias + ":" + code
}

func (r *repository) GetByAlpha2(ctx context.Context, code string) (*country.Country, error) {
	if transactor.InTransaction(ctx) {
		return r.Repository.GetByAlpha2(ctx, code)
	}

	if c, ok := r.load(ctx, code); ok {
		return c, nil
	}

	c, err := r.Repository.GetByAlpha2(ctx, code)
	if err != nil {
		return nil, err
	}

	r.store(ctx, *c)

	return c, nil
}

func (r *repository) GetByAlpha3(ctx context.Context, code string) (*country.Country, error) {
	return r.getByAlias(ctx, aliasAlpha3, code, r.Repository.GetByAlpha3)
}

func (r *repository) GetByNumeric(ctx context.Context, code string) (*country.Country, error) {
	return r.getByAlias(ctx, aliasNumeric, code, r.Repository.GetByNumeric)
}

func (r *repository) Update(ctx context.Context, alpha2 string, data country.Country) error {
	if err := r.Repository.Update(ctx, alpha2, data); err != nil {
		return err
	}

	r.invalidateWrite(ctx, alpha2)

	return nil
}

func (r *repository) Delete(ctx context.Context, alpha2 string) error {
	if err := r.Repository.Delete(ctx, alpha2); err != nil {
		return err
	}

	r.invalidateWrite(ctx, alpha2)

	return nil
}

func (r *repository) getByAlias(
	ctx context.Context,
	alias, code string,
	lookup func(ctx context.Context, code string) (*country.Country, error),
) (*country.Country, error) {
	if transactor.InTransaction(ctx) {
		return lookup(ctx, code)
	}

	if alpha2, ok := r.resolveAlias(ctx, alias, code); ok {
		// an alias may outlive a delete and re-create, so check it still points home
		if c, ok := r.load(ctx, alpha2); ok && aliasValue(*c, alias) == code {
			return c, nil
		}
	}

	c, err := lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	r.store(ctx, *c)

	return c, nil
}

func (r *repository) resolveAlias(ctx context.Context, alias, code string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	alpha2, err := r.client.Get(ctx, aliasKey(alias, code)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("failed to read country alias from cache", zap.String("code", code), zap.Error(err))
		}
		return "", false
	}

	return alpha2, true
}

func (r *repository) load(ctx context.Context, alpha2 string) (*country.Country, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, countryKey(alpha2)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("failed to read country from cache", zap.String("alpha2", alpha2), zap.Error(err))
		}
		return nil, false
	}

	var c country.Country
	if err := json.Unmarshal(data, &c); err != nil {
		r.logger.Warn("failed to decode cached country", zap.String("alpha2", alpha2), zap.Error(err))
		return nil, false
	}

	return &c, true
}

func (r *repository) store(ctx context.Context, c country.Country) {
	data, err := json.Marshal(c)
	if err != nil {
		r.logger.Warn("failed to encode country for cache", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	pipe := r.client.Pipeline()
	pipe.Set(ctx, countryKey(c.IsoAlpha2), data, r.ttl)
	pipe.Set(ctx, aliasKey(aliasAlpha3, c.IsoAlpha3), c.IsoAlpha2, r.ttl)
	pipe.Set(ctx, aliasKey(aliasNumeric, c.IsoNumeric), c.IsoAlpha2, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("failed to cache country", zap.String("alpha2", c.IsoAlpha2), zap.Error(err))
	}
}

func (r *repository) invalidate(ctx context.Context, alpha2 string) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if err := r.client.Del(ctx, countryKey(alpha2)).Err(); err != nil {
		r.logger.Warn("failed to invalidate cached country", zap.String("alpha2", alpha2), zap.Error(err))
	}
}

// invalidateWrite repeats the invalidation after commit, since a reader
// outside the transaction may re-cache the old row before it commits.
func (r *repository) invalidateWrite(ctx context.Context, alpha2 string) {
	r.invalidate(ctx, alpha2)

	if transactor.InTransaction(ctx) {
		transactor.AfterCommit(ctx, func(ctx context.Context) {
			r.invalidate(ctx, alpha2)
		})
	}
}

func aliasValue(c country.Country, alias string) string {
	switch alias {
	case aliasAlpha3:
		return c.IsoAlpha3
	case aliasNumeric:
		return c.IsoNumeric
	default:
		return ""
	}
}
