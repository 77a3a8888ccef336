package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/breakroom-app/breakroom/internal/domain"
)

// MemoryStore is the default storage backend: everything lives in the
// server process. All collections are replaced wholesale on write (copy
// the slice, apply the change, swap the pointer) behind one mutex, so a
// reader never observes a partial update. The per-entity repositories
// are thin views over the shared store.
type MemoryStore struct {
	mu        sync.RWMutex
	companies []domain.Company
	posts     []domain.Post
	reports   []domain.Report
	locks     map[domain.LockKey]string
	bans      map[string]string
}

func NewMemoryStore(companies []domain.Company, posts []domain.Post) *MemoryStore {
	return &MemoryStore{
		companies: companies,
		posts:     posts,
		locks:     map[domain.LockKey]string{},
		bans:      map[string]string{},
	}
}

func (s *MemoryStore) Companies() *MemoryCompanyRepository {
	return &MemoryCompanyRepository{s}
}

func (s *MemoryStore) Posts() *MemoryPostRepository {
	return &MemoryPostRepository{s}
}

func (s *MemoryStore) State() *MemoryStateRepository {
	return &MemoryStateRepository{s}
}

func (s *MemoryStore) Reports() *MemoryReportRepository {
	return &MemoryReportRepository{s}
}

// updatePosts rebuilds the post slice with fn applied to each element.
func (s *MemoryStore) updatePosts(fn func(domain.Post) domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Post, len(s.posts))
	for i, p := range s.posts {
		next[i] = fn(p)
	}
	s.posts = next
}

type MemoryCompanyRepository struct {
	store *MemoryStore
}

func (r *MemoryCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.companies, nil
}

func (r *MemoryCompanyRepository) Get(ctx context.Context, id string) (domain.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrCompanyNotFound
}

func (r *MemoryCompanyRepository) Create(ctx context.Context, company domain.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.companies {
		if c.ID == company.ID || strings.EqualFold(c.Name, company.Name) {
			return domain.ErrCompanyExists
		}
	}
	next := make([]domain.Company, 0, len(r.store.companies)+1)
	next = append(next, r.store.companies...)
	next = append(next, company)
	r.store.companies = next
	return nil
}

type MemoryPostRepository struct {
	store *MemoryStore
}

func (r *MemoryPostRepository) Create(ctx context.Context, post domain.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]domain.Post, 0, len(r.store.posts)+1)
	next = append(next, r.store.posts...)
	next = append(next, post)
	r.store.posts = next
	return nil
}

func (r *MemoryPostRepository) Get(ctx context.Context, id string) (domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Post{}, domain.ErrPostNotFound
}

func (r *MemoryPostRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Post
	for _, p := range r.store.posts {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryPostRepository) ListByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Post
	for _, p := range r.store.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryPostRepository) SetStatus(ctx context.Context, id string, status domain.PostStatus, adminReason string) error {
	r.store.updatePosts(func(p domain.Post) domain.Post {
		if p.ID == id {
			p.Status = status
			p.AdminReason = adminReason
		}
		return p
	})
	return nil
}

func (r *MemoryPostRepository) StampLock(ctx context.Context, companyID, category, reason string) error {
	r.store.updatePosts(func(p domain.Post) domain.Post {
		if p.CompanyID == companyID && p.Category == category {
			p.LockReason = reason
		}
		return p
	})
	return nil
}

func (r *MemoryPostRepository) StampBan(ctx context.Context, authorKey, reason string) error {
	r.store.updatePosts(func(p domain.Post) domain.Post {
		if p.AuthorKey == authorKey {
			p.BanReason = reason
		}
		return p
	})
	return nil
}

type MemoryStateRepository struct {
	store *MemoryStore
}

func (r *MemoryStateRepository) Lock(ctx context.Context, key domain.LockKey, reason string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.locks[key] = reason
	return nil
}

func (r *MemoryStateRepository) IsLocked(ctx context.Context, key domain.LockKey) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.locks[key]
	return ok, nil
}

func (r *MemoryStateRepository) Ban(ctx context.Context, authorKey string, reason string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.bans[authorKey] = reason
	return nil
}

func (r *MemoryStateRepository) IsBanned(ctx context.Context, authorKey string) (bool, error) {
	if authorKey == "" {
		return false, nil
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.bans[authorKey]
	return ok, nil
}

type MemoryReportRepository struct {
	store *MemoryStore
}

func (r *MemoryReportRepository) Create(ctx context.Context, report domain.Report) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]domain.Report, 0, len(r.store.reports)+1)
	next = append(next, r.store.reports...)
	next = append(next, report)
	r.store.reports = next
	return nil
}

func (r *MemoryReportRepository) Get(ctx context.Context, id string) (domain.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, rep := range r.store.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return domain.Report{}, domain.NotFoundError{Resource: "report"}
}

func (r *MemoryReportRepository) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Report
	for _, rep := range r.store.reports {
		if status == "" || rep.Status == status {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *MemoryReportRepository) SetResolved(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	next := make([]domain.Report, len(r.store.reports))
	for i, rep := range r.store.reports {
		if rep.ID == id && rep.Status == domain.ReportOpen {
			rep.Status = domain.ReportResolved
		}
		next[i] = rep
	}
	r.store.reports = next
	return nil
}
