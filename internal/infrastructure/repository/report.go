package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/infrastructure/database/models"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report domain.Report) error {
	row := models.Report{
		ID:          report.ID,
		PostID:      report.PostID,
		Reason:      report.Reason,
		CreatedDate: report.CreatedDate,
		Status:      string(report.Status),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *ReportRepository) Get(ctx context.Context, id string) (domain.Report, error) {
	var row models.Report
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Report{}, domain.NotFoundError{Resource: "report"}
		}
		return domain.Report{}, err
	}
	return reportFromModel(row), nil
}

func (r *ReportRepository) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	q := r.db.WithContext(ctx).Model(&models.Report{}).Order("c_date desc")
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var rows []models.Report
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, reportFromModel(row))
	}
	return out, nil
}

// SetResolved only touches open reports, so resolving twice or resolving
// an unknown id updates nothing.
func (r *ReportRepository) SetResolved(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Report{}).
		Where("id = ? AND status = ?", id, string(domain.ReportOpen)).
		Update("status", string(domain.ReportResolved)).Error
}

func reportFromModel(row models.Report) domain.Report {
	return domain.Report{
		ID:          row.ID,
		PostID:      row.PostID,
		Reason:      row.Reason,
		CreatedDate: row.CreatedDate,
		Status:      domain.ReportStatus(row.Status),
	}
}
