package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/internal/infrastructure/database/models"
)

// ModerationStateRepository persists the lock and ban sets.
type ModerationStateRepository struct {
	db *gorm.DB
}

func NewModerationStateRepository(db *gorm.DB) *ModerationStateRepository {
	return &ModerationStateRepository{db: db}
}

func (r *ModerationStateRepository) Lock(ctx context.Context, key domain.LockKey, reason string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&models.CategoryLock{
		CompanyID: key.CompanyID,
		Category:  key.Category,
		Reason:    reason,
	}).Error
}

func (r *ModerationStateRepository) IsLocked(ctx context.Context, key domain.LockKey) (bool, error) {
	var row models.CategoryLock
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND category = ?", key.CompanyID, key.Category).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ModerationStateRepository) Ban(ctx context.Context, authorKey string, reason string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&models.AuthorBan{
		AuthorKey: authorKey,
		Reason:    reason,
	}).Error
}

func (r *ModerationStateRepository) IsBanned(ctx context.Context, authorKey string) (bool, error) {
	if authorKey == "" {
		return false, nil
	}
	var row models.AuthorBan
	err := r.db.WithContext(ctx).Where("author_key = ?", authorKey).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
