package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docterbee/membership-system/internal/models"
)

type Event struct {
	AdminID   uint
	AdminName string

	Type        ActivityType
	Title       string
	Description string
	Details     map[string]any

	IPAddress string
	UserAgent string
}

// Store persists activity rows. Satisfied by the GORM activity repository.
type Store interface {
	Insert(ctx context.Context, entry *models.ActivityLog) error
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

// Log appends one activity row. Unknown activity types are rejected so the
// enum stays closed at the store boundary.
func (l *Logger) Log(ctx context.Context, ev Event) error {
	if !ev.Type.Valid() {
		return fmt.Errorf("audit: unknown activity type %q", ev.Type)
	}

	var details string
	if ev.Details != nil {
		if b, err := json.Marshal(ev.Details); err == nil {
			details = string(b)
		}
	}

	adminName := ev.AdminName
	if adminName == "" {
		adminName = "Admin"
	}

	entry := models.ActivityLog{
		AdminID:      ev.AdminID,
		AdminName:    adminName,
		ActivityType: string(ev.Type),
		Title:        ev.Title,
		Description:  ev.Description,
		Details:      details,
		IPAddress:    ev.IPAddress,
		UserAgent:    ev.UserAgent,
	}

	return l.store.Insert(ctx, &entry)
}
