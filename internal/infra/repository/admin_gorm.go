package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/models"
)

type AdminGormRepository struct {
	db *gorm.DB
}

func NewAdminGormRepository(db *gorm.DB) *AdminGormRepository {
	return &AdminGormRepository{db: db}
}

func (r *AdminGormRepository) Create(ctx context.Context, a *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AdminUser{}, id).Error
}

func (r *AdminGormRepository) GetByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminGormRepository) GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var a models.AdminUser
	if err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = TRUE", username).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminGormRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminGormRepository) List(ctx context.Context) ([]models.AdminUser, error) {
	var admins []models.AdminUser
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

func (r *AdminGormRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("is_active = TRUE").
		Count(&count).Error
	return count, err
}

func (r *AdminGormRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// Compile-time check
var _ domain.Repository = (*AdminGormRepository)(nil)
