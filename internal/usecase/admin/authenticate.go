package admin

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/logger"
)

// Authenticate checks admin credentials. Passwords are never returned or
// logged; only the bcrypt comparison sees them.
type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

func (uc *Authenticate) Execute(ctx context.Context, username, password string) (*domain.Summary, error) {

	if username == "" || password == "" {
		return nil, httperr.Validation("credentials_required", "Username and password are required")
	}

	a, err := uc.repo.GetActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("admin_not_found", "Username not found or inactive")
		}
		return nil, httperr.Store("admin_lookup_failed", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.Auth("wrong_password", "Wrong password")
	}

	if err := uc.repo.UpdateLastLogin(ctx, a.ID, time.Now()); err != nil {
		// A stale last_login is not worth failing the login over.
		log := logger.Get()
		log.Warn().Err(err).Uint("admin_id", a.ID).Msg("last_login update failed")
	}

	return &domain.Summary{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
	}, nil
}
