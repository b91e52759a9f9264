package member

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docterbee/membership-system/internal/audit"
	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/models"
)

type UpdateProfileInput struct {
	Name     string
	WhatsApp string
	Email    string
	Address  string
	Age      *int
	Activity string
}

// UpdateProfile edits the mutable member fields. Card type and unique code
// are fixed at registration and stay untouched.
type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo domain.Repository, dispatcher *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: dispatcher}
}

func (uc *UpdateProfile) Execute(ctx context.Context, memberID uint, in UpdateProfileInput, actor Actor) (*models.Member, error) {

	if in.Name == "" {
		return nil, httperr.Validation("name_required", "Name is required")
	}
	if in.WhatsApp == "" {
		return nil, httperr.Validation("whatsapp_required", "WhatsApp number is required")
	}
	if in.Activity == "" {
		return nil, httperr.Validation("activity_required", "Activity is required")
	}
	if in.Age != nil && (*in.Age < 1 || *in.Age > 120) {
		return nil, httperr.Validation("invalid_age", "Age must be between 1 and 120 years")
	}

	phone := domain.NormalizePhone(in.WhatsApp)
	if err := domain.ValidateLocalPhone(phone); err != nil {
		return nil, err
	}

	m, err := uc.repo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("member_not_found", "Member not found")
		}
		return nil, httperr.Store("member_lookup_failed", err)
	}

	m.Name = in.Name
	m.WhatsApp = phone
	m.Email = in.Email
	m.Address = in.Address
	m.Age = in.Age
	m.Activity = in.Activity

	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, httperr.Store("member_update_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:   actor.ID,
		AdminName: actor.Name,
		Type:      audit.TypeMemberEdit,
		Title:     "Member Updated",
		Details: map[string]any{
			"member_id":   m.ID,
			"member_name": m.Name,
		},
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	})

	return m, nil
}
