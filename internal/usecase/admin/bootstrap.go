package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/logger"
	"github.com/docterbee/membership-system/internal/models"
)

// Bootstrap provisions the first admin account when the table is empty.
// The credential comes from the operator via configuration; without one, a
// random password is generated and printed to the server log exactly once.
// There is no fixed fallback password.
type Bootstrap struct {
	repo domain.Repository
}

func NewBootstrap(repo domain.Repository) *Bootstrap {
	return &Bootstrap{repo: repo}
}

func (uc *Bootstrap) Execute(ctx context.Context, configuredPassword string) error {

	count, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := configuredPassword
	generated := false
	if password == "" {
		password, err = randomPassword()
		if err != nil {
			return err
		}
		generated = true
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a := &models.AdminUser{
		Username:     "admin",
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return err
	}

	log := logger.Get()
	if generated {
		log.Warn().
			Str("username", a.Username).
			Str("password", password).
			Msg("default admin created with one-time password; change it after first login")
	} else {
		log.Info().Str("username", a.Username).Msg("default admin created")
	}

	return nil
}

func randomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
