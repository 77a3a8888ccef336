package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/usecase"
)

const (
	companyListKey = "breakroom:companies"
	companyListTTL = 300 // seconds
)

// CachedCompanyRepository keeps the full company directory in memcached.
// The directory is small and read on every search, so one key holding
// the whole list is enough. Cache failures fall through to the inner
// repository.
type CachedCompanyRepository struct {
	inner usecase.CompanyRepository
	mc    *memcache.Client
}

func NewCachedCompanyRepository(inner usecase.CompanyRepository, mc *memcache.Client) *CachedCompanyRepository {
	return &CachedCompanyRepository{
		inner: inner,
		mc:    mc,
	}
}

func (r *CachedCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	item, err := r.mc.Get(companyListKey)
	if err == nil {
		var companies []domain.Company
		if err := json.Unmarshal(item.Value, &companies); err == nil {
			return companies, nil
		}
	} else if err != memcache.ErrCacheMiss {
		slog.WarnContext(ctx, "memcached get failed", slog.String("error", err.Error()))
	}

	companies, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(companies); err == nil {
		err = r.mc.Set(&memcache.Item{
			Key:        companyListKey,
			Value:      raw,
			Expiration: companyListTTL,
		})
		if err != nil {
			slog.WarnContext(ctx, "memcached set failed", slog.String("error", err.Error()))
		}
	}
	return companies, nil
}

func (r *CachedCompanyRepository) Get(ctx context.Context, id string) (domain.Company, error) {
	return r.inner.Get(ctx, id)
}

func (r *CachedCompanyRepository) Create(ctx context.Context, company domain.Company) error {
	if err := r.inner.Create(ctx, company); err != nil {
		return err
	}
	if err := r.mc.Delete(companyListKey); err != nil && err != memcache.ErrCacheMiss {
		slog.WarnContext(ctx, "memcached delete failed", slog.String("error", err.Error()))
	}
	return nil
}
