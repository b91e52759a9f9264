package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/admin"
	"github.com/docterbee/membership-system/internal/httperr"
)

// DeleteAdmin removes an admin account. Two invariants hold no matter what:
// an admin never deletes their own account, and the last active admin can
// never be deleted. The self check runs first, so deleting yourself as the
// sole admin reports the self-delete error.
type DeleteAdmin struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAdmin(repo domain.Repository, dispatcher *audit.Dispatcher) *DeleteAdmin {
	return &DeleteAdmin{repo: repo, audit: dispatcher}
}

func (uc *DeleteAdmin) Execute(ctx context.Context, targetID uint, actor Actor) error {

	if targetID == actor.ID {
		return httperr.Auth("self_delete", "Cannot delete own account")
	}

	target, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("admin_not_found", "Admin not found")
		}
		return httperr.Store("admin_lookup_failed", err)
	}

	active, err := uc.repo.CountActive(ctx)
	if err != nil {
		return httperr.Store("admin_count_failed", err)
	}
	if active <= 1 {
		return httperr.Auth("last_admin", "Cannot delete last admin")
	}

	if err := uc.repo.Delete(ctx, target.ID); err != nil {
		return httperr.Store("admin_delete_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeAdminDelete,
		Title:     "Admin Deleted",
		Details: map[string]any{
			"deleted_admin_id":       target.ID,
			"deleted_admin_username": target.Username,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	return nil
}
