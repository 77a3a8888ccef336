package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/breakroom-app/breakroom/internal/domain"
)

type ReportUsecase struct {
	reports ReportRepository
	signal  EventPublisher
	now     func() time.Time
}

func NewReportUsecase(reports ReportRepository, signal EventPublisher) *ReportUsecase {
	return &ReportUsecase{
		reports: reports,
		signal:  signal,
		now:     time.Now,
	}
}

// Submit always records an open report, even when postID no longer
// resolves to a live post. Reports on removed posts stay meaningful as
// audit trail.
func (uc *ReportUsecase) Submit(ctx context.Context, postID, reason string) (domain.Report, error) {
	if !domain.IsReportReason(reason) {
		return domain.Report{}, domain.ErrInvalidReason
	}

	now := uc.now()
	report := domain.Report{
		ID:          domain.NewID("r", postID+reason, now),
		PostID:      postID,
		Reason:      reason,
		CreatedDate: domain.DateOnly(now),
		Status:      domain.ReportOpen,
	}

	if err := uc.reports.Create(ctx, report); err != nil {
		return domain.Report{}, errors.Wrap(err, "ReportUsecase.Submit: create failed")
	}

	if uc.signal != nil {
		if err := uc.signal.Publish(ctx, domain.Event{
			Type:     domain.EventReportOpen,
			ReportID: report.ID,
			PostID:   postID,
			Reason:   reason,
			Date:     report.CreatedDate,
		}); err != nil {
			slog.WarnContext(ctx, "failed to publish event",
				slog.String("type", domain.EventReportOpen),
				slog.String("error", err.Error()),
			)
		}
	}

	return report, nil
}

func (uc *ReportUsecase) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	return uc.reports.List(ctx, status)
}

// Resolve transitions open->resolved. Resolving an unknown or already
// resolved report is a no-op; the transition is one-way.
func (uc *ReportUsecase) Resolve(ctx context.Context, reportID string) error {
	return uc.reports.SetResolved(ctx, reportID)
}
