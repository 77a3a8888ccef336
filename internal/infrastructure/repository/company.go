package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/infrastructure/database/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Seed upserts the embedded dataset. Existing rows keep their values so
// ad-hoc edits survive restarts.
func (r *CompanyRepository) Seed(ctx context.Context, companies []domain.Company) error {
	if len(companies) == 0 {
		return nil
	}
	rows := make([]models.Company, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, companyToModel(c))
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&rows).Error
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var rows []models.Company
	err := r.db.WithContext(ctx).Order("rank_by_employees asc, name asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Company, 0, len(rows))
	for _, row := range rows {
		out = append(out, companyFromModel(row))
	}
	return out, nil
}

func (r *CompanyRepository) Get(ctx context.Context, id string) (domain.Company, error) {
	var row models.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Company{}, domain.ErrCompanyNotFound
		}
		return domain.Company{}, err
	}
	return companyFromModel(row), nil
}

func (r *CompanyRepository) Create(ctx context.Context, company domain.Company) error {
	row := companyToModel(company)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrCompanyExists
	}
	return err
}

func companyToModel(c domain.Company) models.Company {
	return models.Company{
		ID:              c.ID,
		Name:            c.Name,
		Country:         c.Country,
		Industry:        c.Industry,
		EmployeeCount:   c.EmployeeCount,
		RankByEmployees: c.RankByEmployees,
	}
}

func companyFromModel(row models.Company) domain.Company {
	return domain.Company{
		ID:              row.ID,
		Name:            row.Name,
		Country:         row.Country,
		Industry:        row.Industry,
		EmployeeCount:   row.EmployeeCount,
		RankByEmployees: row.RankByEmployees,
	}
}
