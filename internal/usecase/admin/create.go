package admin

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/models"
)

type CreateInput struct {
	Username string
	Password string
	Email    string
	Role     string
}

// Actor mirrors the member usecases: the validated session identity plus
// request metadata for the audit trail.
type Actor struct {
	ID   uint
	Name string

	IPAddress string
	UserAgent string
}

type CreateAdmin struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAdmin(repo domain.Repository, dispatcher *audit.Dispatcher) *CreateAdmin {
	return &CreateAdmin{repo: repo, audit: dispatcher}
}

func (uc *CreateAdmin) Execute(ctx context.Context, in CreateInput, actor Actor) (uint, error) {

	if in.Username == "" || in.Password == "" {
		return 0, httperr.Validation("credentials_required", "Username and password are required")
	}
	if len(in.Password) < 6 {
		return 0, httperr.Validation("password_too_short", "Password must be at least 6 characters")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleModerator
	}
	if role != domain.RoleAdmin && role != domain.RoleModerator {
		return 0, httperr.Validation("invalid_role", "Invalid role")
	}

	taken, err := uc.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return 0, httperr.Store("admin_lookup_failed", err)
	}
	if taken {
		return 0, httperr.Validation("username_taken", "Username is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, httperr.Store("password_hash_failed", err)
	}

	a := &models.AdminUser{
		Username:     in.Username,
		PasswordHash: string(hashed),
		Email:        in.Email,
		Role:         role,
		IsActive:     true,
	}

	if err := uc.repo.Create(ctx, a); err != nil {
		return 0, httperr.Store("admin_save_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeAdminCreate,
		Title:     "Admin Created",
		Details: map[string]any{
			"new_admin_id":       a.ID,
			"new_admin_username": a.Username,
			"new_admin_role":     a.Role,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	return a.ID, nil
}
