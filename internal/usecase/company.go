package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/breakroom-app/breakroom/internal/domain"
)

type CompanyUsecase struct {
	repo        CompanyRepository
	searchCache *cache.Cache
}

func NewCompanyUsecase(repo CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{
		repo:        repo,
		searchCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Search returns companies whose name contains q, case-insensitive.
// Empty q returns the whole dataset. Results are cached per query
// because the dataset is immutable during a session except for ad-hoc
// additions, which invalidate the cache.
func (uc *CompanyUsecase) Search(ctx context.Context, q string) ([]domain.Company, error) {
	needle := strings.ToLower(strings.TrimSpace(q))

	if cached, found := uc.searchCache.Get(needle); found {
		return cached.([]domain.Company), nil
	}

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "CompanyUsecase.Search: list failed")
	}

	result := all
	if needle != "" {
		result = make([]domain.Company, 0)
		for _, c := range all {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				result = append(result, c)
			}
		}
	}

	uc.searchCache.Set(needle, result, cache.DefaultExpiration)
	return result, nil
}

func (uc *CompanyUsecase) Get(ctx context.Context, id string) (domain.Company, error) {
	return uc.repo.Get(ctx, id)
}

type CreateCompanyInput struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Industry string `json:"industry"`
}

// Create adds an ad-hoc company with a slug id derived from the name.
// Collision policy: reject. A slug that already exists (which also covers
// case-insensitive name matches) fails with domain.ErrCompanyExists.
func (uc *CompanyUsecase) Create(ctx context.Context, input CreateCompanyInput) (domain.Company, error) {
	slug := domain.Slugify(input.Name)
	if slug == "" {
		return domain.Company{}, domain.ErrEmptyName
	}

	company := domain.Company{
		ID:       slug,
		Name:     strings.TrimSpace(input.Name),
		Country:  strings.TrimSpace(input.Country),
		Industry: strings.TrimSpace(input.Industry),
	}

	if err := uc.repo.Create(ctx, company); err != nil {
		return domain.Company{}, err
	}

	uc.searchCache.Flush()
	return company, nil
}
