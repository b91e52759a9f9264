package admin

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/models"
)

// stubAdminRepo is an in-memory domain.Repository for usecase tests.
type stubAdminRepo struct {
	mu     sync.Mutex
	nextID uint
	admins map[uint]*models.AdminUser
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{nextID: 1, admins: make(map[uint]*models.AdminUser)}
}

func cloneAdmin(a *models.AdminUser) *models.AdminUser {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, a *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	a.CreatedAt = time.Now()
	r.admins[a.ID] = cloneAdmin(a)
	return nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, id)
	return nil
}

func (r *stubAdminRepo) GetByID(_ context.Context, id uint) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) GetActiveByUsername(_ context.Context, username string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.Username == username && a.IsActive {
			return cloneAdmin(a), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.admins {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAdminRepo) List(_ context.Context) ([]models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.AdminUser
	for _, a := range r.admins {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), nil
}

func (r *stubAdminRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, a := range r.admins {
		if a.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubAdminRepo) UpdateLastLogin(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.LastLogin = &at
	return nil
}

var _ domain.Repository = (*stubAdminRepo)(nil)

type discardAuditStore struct{}

func (discardAuditStore) Insert(context.Context, *models.ActivityLog) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(discardAuditStore{}))
}
