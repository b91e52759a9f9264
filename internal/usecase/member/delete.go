package member

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
)

// DeleteMember hard-deletes a member. Irreversible.
type DeleteMember struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMember(repo domain.Repository, dispatcher *audit.Dispatcher) *DeleteMember {
	return &DeleteMember{repo: repo, audit: dispatcher}
}

func (uc *DeleteMember) Execute(ctx context.Context, memberID uint, actor Actor) error {

	m, err := uc.repo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("member_not_found", "Member not found")
		}
		return httperr.Store("member_lookup_failed", err)
	}

	if err := uc.repo.Delete(ctx, m.ID); err != nil {
		return httperr.Store("member_delete_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeMemberDelete,
		Title:     "Member Deleted",
		Details: map[string]any{
			"member_id":   m.ID,
			"member_name": m.Name,
			"whatsapp":    m.WhatsApp,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	return nil
}
