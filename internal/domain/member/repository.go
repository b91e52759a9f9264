package member

import (
	"context"

	"github.com/docterbee/membership-system/internal/models"
)

// Stats aggregates the dashboard counters.
type Stats struct {
	TotalMembers       int64              `json:"total_members"`
	TodayRegistrations int64              `json:"today_registrations"`
	ByCardType         map[CardType]int64 `json:"by_card_type"`
}

type Repository interface {
	// -------- Write --------
	Create(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id uint) error

	// -------- Lookup --------
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByCode(ctx context.Context, code string) (*models.Member, error)

	// FindByExactPhone matches the stored number verbatim.
	FindByExactPhone(ctx context.Context, phone string) (*models.Member, error)

	// FindByFuzzyPhone matches on digits only, tolerating a "62" country
	// prefix on the stored value. Best-effort: first match or nil.
	FindByFuzzyPhone(ctx context.Context, digits string) (*models.Member, error)

	CodeExists(ctx context.Context, code string) (bool, error)

	// -------- Listing --------
	List(ctx context.Context, limit, offset int) ([]models.Member, error)
	SearchByPhone(ctx context.Context, fragment string) ([]models.Member, error)
	ListAll(ctx context.Context) ([]models.Member, error)

	// -------- Aggregates --------
	Stats(ctx context.Context) (*Stats, error)
	Count(ctx context.Context) (int64, error)
}
