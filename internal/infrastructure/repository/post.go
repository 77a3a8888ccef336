package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/infrastructure/database/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post domain.Post) error {
	row := postToModel(post)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *PostRepository) Get(ctx context.Context, id string) (domain.Post, error) {
	var row models.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Post{}, domain.ErrPostNotFound
		}
		return domain.Post{}, err
	}
	return postFromModel(row), nil
}

func (r *PostRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("c_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return postsFromModels(rows), nil
}

func (r *PostRepository) ListByStatus(ctx context.Context, status domain.PostStatus) ([]domain.Post, error) {
	var rows []models.Post
	err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("c_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return postsFromModels(rows), nil
}

func (r *PostRepository) SetStatus(ctx context.Context, id string, status domain.PostStatus, adminReason string) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       string(status),
			"admin_reason": adminReason,
		}).Error
}

func (r *PostRepository) StampLock(ctx context.Context, companyID, category, reason string) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Where("company_id = ? AND category = ?", companyID, category).
		Update("lock_reason", reason).Error
}

func (r *PostRepository) StampBan(ctx context.Context, authorKey, reason string) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Where("author_key = ?", authorKey).
		Update("ban_reason", reason).Error
}

func postToModel(p domain.Post) models.Post {
	return models.Post{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		Category:          p.Category,
		Title:             p.Title,
		Body:              p.Body,
		AuthorLabel:       p.AuthorLabel,
		AuthorKey:         p.AuthorKey,
		Status:            string(p.Status),
		ModerationReasons: p.ModerationReasons,
		CreatedDate:       p.CreatedDate,
		Score:             p.Score,
		LockReason:        p.LockReason,
		BanReason:         p.BanReason,
		AdminReason:       p.AdminReason,
	}
}

func postFromModel(row models.Post) domain.Post {
	return domain.Post{
		ID:                row.ID,
		CompanyID:         row.CompanyID,
		Category:          row.Category,
		Title:             row.Title,
		Body:              row.Body,
		AuthorLabel:       row.AuthorLabel,
		AuthorKey:         row.AuthorKey,
		Status:            domain.PostStatus(row.Status),
		ModerationReasons: row.ModerationReasons,
		CreatedDate:       row.CreatedDate,
		Score:             row.Score,
		LockReason:        row.LockReason,
		BanReason:         row.BanReason,
		AdminReason:       row.AdminReason,
	}
}

func postsFromModels(rows []models.Post) []domain.Post {
	out := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, postFromModel(row))
	}
	return out
}
