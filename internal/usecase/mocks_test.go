package usecase

import (
	"context"

	"github.com/breakroom-app/breakroom/internal/domain"
)

// --- mocks shared by the usecase tests ---

type mockCompanyRepo struct {
	companies []domain.Company
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]domain.Company, error) {
	return m.companies, nil
}

func (m *mockCompanyRepo) Get(ctx context.Context, id string) (domain.Company, error) {
	for _, c := range m.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrCompanyNotFound
}

func (m *mockCompanyRepo) Create(ctx context.Context, company domain.Company) error {
	for _, c := range m.companies {
		if c.ID == company.ID {
			return domain.ErrCompanyExists
		}
	}
	m.companies = append(m.companies, company)
	return nil
}

type mockPostRepo struct {
	posts []domain.Post
}

func (m *mockPostRepo) Create(ctx context.Context, post domain.Post) error {
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepo) Get(ctx context.Context, id string) (domain.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrPostNotFound
}

func (m *mockPostRepo) ListByCompany(ctx context.Context, companyID string) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range m.posts {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostRepo) ListByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range m.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostRepo) SetStatus(ctx context.Context, id string, status domain.PostStatus, adminReason string) error {
	for i, p := range m.posts {
		if p.ID == id {
			m.posts[i].Status = status
			m.posts[i].AdminReason = adminReason
		}
	}
	return nil
}

func (m *mockPostRepo) StampLock(ctx context.Context, companyID, category, reason string) error {
	for i, p := range m.posts {
		if p.CompanyID == companyID && p.Category == category {
			m.posts[i].LockReason = reason
		}
	}
	return nil
}

func (m *mockPostRepo) StampBan(ctx context.Context, authorKey, reason string) error {
	for i, p := range m.posts {
		if p.AuthorKey == authorKey {
			m.posts[i].BanReason = reason
		}
	}
	return nil
}

type mockStateRepo struct {
	locks map[domain.LockKey]string
	bans  map[string]string
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{
		locks: map[domain.LockKey]string{},
		bans:  map[string]string{},
	}
}

func (m *mockStateRepo) Lock(ctx context.Context, key domain.LockKey, reason string) error {
	m.locks[key] = reason
	return nil
}

func (m *mockStateRepo) IsLocked(ctx context.Context, key domain.LockKey) (bool, error) {
	_, ok := m.locks[key]
	return ok, nil
}

func (m *mockStateRepo) Ban(ctx context.Context, authorKey string, reason string) error {
	m.bans[authorKey] = reason
	return nil
}

func (m *mockStateRepo) IsBanned(ctx context.Context, authorKey string) (bool, error) {
	_, ok := m.bans[authorKey]
	return ok, nil
}

type mockReportRepo struct {
	reports []domain.Report
}

func (m *mockReportRepo) Create(ctx context.Context, report domain.Report) error {
	m.reports = append(m.reports, report)
	return nil
}

func (m *mockReportRepo) Get(ctx context.Context, id string) (domain.Report, error) {
	for _, r := range m.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Report{}, domain.NotFoundError{Resource: "report"}
}

func (m *mockReportRepo) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	var out []domain.Report
	for _, r := range m.reports {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReportRepo) SetResolved(ctx context.Context, id string) error {
	for i, r := range m.reports {
		if r.ID == id && r.Status == domain.ReportOpen {
			m.reports[i].Status = domain.ReportResolved
		}
	}
	return nil
}

type mockPublisher struct {
	events []domain.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}
