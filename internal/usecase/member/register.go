package member

import (
	"context"
	"fmt"
	"time"

	domain "github.com/docterbee/membership-system/internal/domain/member"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	WhatsApp string
	Email    string
	Address  string
	Age      *int
	Activity string
	CardType string

	// UniqueCode and ValidityLabel come from the card generator on the
	// client. When absent the server derives them itself.
	UniqueCode    string
	ValidityLabel string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo domain.Repository
}

func NewRegister(repo domain.Repository) *Register {
	return &Register{repo: repo}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.Member, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if in.Name == "" {
		return nil, httperr.Validation("name_required", "Name is required")
	}
	if in.WhatsApp == "" {
		return nil, httperr.Validation("whatsapp_required", "WhatsApp number is required")
	}
	if in.Activity == "" {
		return nil, httperr.Validation("activity_required", "Activity is required")
	}

	cardType := domain.CardType(in.CardType)
	if !cardType.Valid() {
		return nil, httperr.Validation("invalid_card_type", "Invalid card type")
	}

	if in.Age != nil && (*in.Age < 1 || *in.Age > 120) {
		return nil, httperr.Validation("invalid_age", "Age must be between 1 and 120 years")
	}

	// --------------------------------------------------
	// Phone format: local "0..." form only
	// --------------------------------------------------
	phone := domain.NormalizePhone(in.WhatsApp)
	if err := domain.ValidateLocalPhone(phone); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Duplicate phone: name the existing owner
	// --------------------------------------------------
	existing, err := uc.repo.FindByExactPhone(ctx, phone)
	if err != nil {
		return nil, httperr.Store("member_lookup_failed", err)
	}
	if existing != nil {
		return nil, httperr.Validation("whatsapp_taken", fmt.Sprintf(
			"Sorry, this number is already registered to %s. Please use another number.",
			existing.Name,
		))
	}

	// --------------------------------------------------
	// Unique code (generate when the client did not)
	// --------------------------------------------------
	code := in.UniqueCode
	if code == "" {
		code = domain.GenerateUniqueCode(phone)
	}

	taken, err := uc.repo.CodeExists(ctx, code)
	if err != nil {
		return nil, httperr.Store("code_lookup_failed", err)
	}
	if taken {
		return nil, httperr.Validation("code_taken", "Code already exists")
	}

	validity := in.ValidityLabel
	if validity == "" {
		validity = domain.ValidityLabel(cardType, time.Now())
	}

	// --------------------------------------------------
	// Insert. The pre-checks above are a UX fast path; the unique indexes
	// on whatsapp and unique_code decide concurrent races.
	// --------------------------------------------------
	m := &models.Member{
		Name:          in.Name,
		WhatsApp:      phone,
		Email:         in.Email,
		Address:       in.Address,
		Age:           in.Age,
		Activity:      in.Activity,
		CardType:      string(cardType),
		UniqueCode:    code,
		ValidityLabel: validity,
		PurchaseCount: 0,
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, httperr.Store("member_save_failed", err)
	}

	return m, nil
}
