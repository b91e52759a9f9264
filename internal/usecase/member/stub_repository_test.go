package member

import (
	"context"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/models"
)

// stubMemberRepo is an in-memory domain.Repository for usecase tests.
type stubMemberRepo struct {
	mu      sync.Mutex
	nextID  uint
	members map[uint]*models.Member
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{nextID: 1, members: make(map[uint]*models.Member)}
}

func cloneMember(m *models.Member) *models.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) Create(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.members[m.ID] = cloneMember(m)
	return nil
}

func (r *stubMemberRepo) Update(_ context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.UpdatedAt = time.Now()
	r.members[m.ID] = cloneMember(m)
	return nil
}

func (r *stubMemberRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, id)
	return nil
}

func (r *stubMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneMember(m), nil
}

func (r *stubMemberRepo) GetByCode(_ context.Context, code string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.UniqueCode == code {
			return cloneMember(m), nil
		}
	}
	return nil, nil
}

func (r *stubMemberRepo) FindByExactPhone(_ context.Context, phone string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.WhatsApp == phone {
			return cloneMember(m), nil
		}
	}
	return nil, nil
}

func (r *stubMemberRepo) FindByFuzzyPhone(_ context.Context, digits string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if digits == "" {
		return nil, nil
	}
	for _, m := range r.members {
		stored := domain.DigitsOnly(m.WhatsApp)
		if strings.Contains(stored, digits) || strings.Contains("62"+stored, digits) {
			return cloneMember(m), nil
		}
	}
	return nil, nil
}

func (r *stubMemberRepo) CodeExists(_ context.Context, code string) (bool, error) {
	m, _ := r.GetByCode(context.Background(), code)
	return m != nil, nil
}

func (r *stubMemberRepo) List(_ context.Context, limit, offset int) ([]models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Member
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMemberRepo) SearchByPhone(_ context.Context, fragment string) ([]models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Member
	for _, m := range r.members {
		if strings.Contains(m.WhatsApp, fragment) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMemberRepo) ListAll(_ context.Context) ([]models.Member, error) {
	return r.List(context.Background(), 0, 0)
}

func (r *stubMemberRepo) Stats(_ context.Context) (*domain.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &domain.Stats{ByCardType: make(map[domain.CardType]int64)}
	for _, m := range r.members {
		stats.TotalMembers++
		stats.ByCardType[domain.CardType(m.CardType)]++
	}
	return stats, nil
}

func (r *stubMemberRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.members)), nil
}

var _ domain.Repository = (*stubMemberRepo)(nil)

// discardAuditStore swallows audit rows; the audit path has its own tests.
type discardAuditStore struct{}

func (discardAuditStore) Insert(context.Context, *models.ActivityLog) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(discardAuditStore{}))
}
