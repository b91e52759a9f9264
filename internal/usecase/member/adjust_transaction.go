package member

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
)

// AdjustTransaction moves a member's purchase counter by a signed delta.
// The counter never goes below zero: adjust(current=0, delta=-5) == 0.
type AdjustTransaction struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdjustTransaction(repo domain.Repository, dispatcher *audit.Dispatcher) *AdjustTransaction {
	return &AdjustTransaction{repo: repo, audit: dispatcher}
}

func (uc *AdjustTransaction) Execute(ctx context.Context, memberID uint, delta int, actor Actor) (int, error) {

	m, err := uc.repo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.NotFound("member_not_found", "Member not found")
		}
		return 0, httperr.Store("member_lookup_failed", err)
	}

	previous := m.PurchaseCount
	next := previous + delta
	if next < 0 {
		next = 0
	}

	m.PurchaseCount = next
	if err := uc.repo.Update(ctx, m); err != nil {
		return 0, httperr.Store("transaction_update_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeTransaction,
		Title:     "Transaction Updated",
		Details: map[string]any{
			"member_id":      m.ID,
			"member_name":    m.Name,
			"previous_count": previous,
			"new_count":      next,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	return next, nil
}
