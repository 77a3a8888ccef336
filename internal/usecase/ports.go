package usecase

import (
	"context"

	"github.com/breakroom-app/breakroom/internal/domain"
)

// CompanyRepository defines lookup/persistence for companies.
type CompanyRepository interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, id string) (domain.Company, error)
	// Create fails with domain.ErrCompanyExists on a duplicate id.
	Create(ctx context.Context, company domain.Company) error
}

// PostRepository defines persistence for posts. Mutations are explicit
// per-field updates; callers never write a whole record back.
type PostRepository interface {
	Create(ctx context.Context, post domain.Post) error
	Get(ctx context.Context, id string) (domain.Post, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Post, error)
	ListByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error)
	// SetStatus transitions a post and stamps the admin reason.
	// Unknown ids are a no-op.
	SetStatus(ctx context.Context, id string, status domain.PostStatus, adminReason string) error
	// StampLock annotates all posts matching the pair. Does not hide them.
	StampLock(ctx context.Context, companyID, category, reason string) error
	// StampBan annotates all posts by the author. Does not hide them.
	StampBan(ctx context.Context, authorKey, reason string) error
}

// ModerationStateRepository holds the lock and ban sets.
type ModerationStateRepository interface {
	Lock(ctx context.Context, key domain.LockKey, reason string) error
	IsLocked(ctx context.Context, key domain.LockKey) (bool, error)
	Ban(ctx context.Context, authorKey string, reason string) error
	IsBanned(ctx context.Context, authorKey string) (bool, error)
}

// ReportRepository persists user reports.
type ReportRepository interface {
	Create(ctx context.Context, report domain.Report) error
	Get(ctx context.Context, id string) (domain.Report, error)
	List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	// SetResolved is a no-op on unknown or already-resolved ids.
	SetResolved(ctx context.Context, id string) error
}

// EventPublisher broadcasts moderation events for admin clients.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
