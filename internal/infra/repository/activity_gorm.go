package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	"github.com/docterbee/membership-system/internal/models"
)

// ActivityGormRepository persists the append-only audit trail. Rows are
// never updated; the only deletions are the two bulk-clear operations.
type ActivityGormRepository struct {
	db *gorm.DB
}

func NewActivityGormRepository(db *gorm.DB) *ActivityGormRepository {
	return &ActivityGormRepository{db: db}
}

func (r *ActivityGormRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ActivityGormRepository) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var entries []models.ActivityLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ActivityGormRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ActivityLog{}).Error
}

// ClearMalformed purges rows matching audit.Malformed: entries left behind
// by a historical bug where the acting admin could not be resolved.
func (r *ActivityGormRepository) ClearMalformed(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where(
			"admin_name = ? OR title LIKE ?",
			audit.UnknownAdminName,
			"%"+audit.UnknownAdminName+"%",
		).
		Delete(&models.ActivityLog{}).Error
}

// Compile-time check
var _ audit.Store = (*ActivityGormRepository)(nil)
