package admin

import (
	"context"
	"time"

	"github.com/docterbee/membership-system/internal/models"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// Summary is the credential-free view of an admin returned by login.
type Summary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Repository interface {
	Create(ctx context.Context, a *models.AdminUser) error
	Delete(ctx context.Context, id uint) error

	GetByID(ctx context.Context, id uint) (*models.AdminUser, error)

	// GetActiveByUsername only matches active accounts; inactive admins
	// cannot log in.
	GetActiveByUsername(ctx context.Context, username string) (*models.AdminUser, error)

	UsernameExists(ctx context.Context, username string) (bool, error)

	List(ctx context.Context) ([]models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)

	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}
