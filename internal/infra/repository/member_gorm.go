package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/models"
)

type MemberGormRepository struct {
	db *gorm.DB
}

func NewMemberGormRepository(db *gorm.DB) *MemberGormRepository {
	return &MemberGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *MemberGormRepository) Create(ctx context.Context, m *models.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberGormRepository) Update(ctx context.Context, m *models.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, id).Error
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *MemberGormRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberGormRepository) GetByCode(ctx context.Context, code string) (*models.Member, error) {
	var m models.Member
	err := r.db.WithContext(ctx).
		Where("unique_code = ?", code).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberGormRepository) FindByExactPhone(ctx context.Context, phone string) (*models.Member, error) {
	var m models.Member
	err := r.db.WithContext(ctx).
		Where("whatsapp = ?", phone).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberGormRepository) FindByFuzzyPhone(ctx context.Context, digits string) (*models.Member, error) {
	if digits == "" {
		return nil, nil
	}

	// Compare digits against digits, tolerating a stored "62" country
	// prefix. Best-effort first match, newest registration first.
	var m models.Member
	err := r.db.WithContext(ctx).
		Where(
			"regexp_replace(whatsapp, '[^0-9]', '', 'g') LIKE ? OR regexp_replace(whatsapp, '[^0-9]', '', 'g') LIKE ?",
			"%"+digits+"%",
			"%62"+digits+"%",
		).
		Order("created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberGormRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("unique_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *MemberGormRepository) List(ctx context.Context, limit, offset int) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberGormRepository) SearchByPhone(ctx context.Context, fragment string) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).
		Where("whatsapp LIKE ?", "%"+fragment+"%").
		Order("purchase_count DESC, created_at DESC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberGormRepository) ListAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *MemberGormRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{ByCardType: make(map[domain.CardType]int64)}

	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("created_at >= ?", midnight).
		Count(&stats.TodayRegistrations).Error; err != nil {
		return nil, err
	}

	rows := []struct {
		CardType string
		Total    int64
	}{}
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Select("card_type, COUNT(*) as total").
		Group("card_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// Every tier shows up in the stats, even at zero.
	for _, t := range domain.AllCardTypes() {
		stats.ByCardType[t] = 0
	}
	for _, row := range rows {
		stats.ByCardType[domain.CardType(row.CardType)] = row.Total
	}

	return stats, nil
}

func (r *MemberGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*MemberGormRepository)(nil)
