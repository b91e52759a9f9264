package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docterbee/membership-system/internal/models"
)

func TestFilter(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 0, 0, 0, time.UTC)

	entries := []models.ActivityLog{
		{ID: 1, AdminName: "Siti", ActivityType: "login", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 2, AdminName: "Budi", ActivityType: "member_add", CreatedAt: now.Add(-20 * time.Hour)},
		{ID: 3, AdminName: "Siti", ActivityType: "member_delete", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: 4, AdminName: "Budi", ActivityType: "login", CreatedAt: now.AddDate(0, 0, -20)},
	}

	t.Run("no constraints returns everything", func(t *testing.T) {
		got := Filter(entries, FilterOptions{}, now)
		assert.Len(t, got, 4)
	})

	t.Run("by type", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Type: "login"}, now)
		assert.Len(t, got, 2)
	})

	t.Run("by admin name is case-insensitive", func(t *testing.T) {
		got := Filter(entries, FilterOptions{AdminName: "siti"}, now)
		assert.Len(t, got, 2)
	})

	t.Run("today keeps entries since midnight", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Period: "today"}, now)
		assert.Len(t, got, 1)
		assert.EqualValues(t, 1, got[0].ID)
	})

	t.Run("week", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Period: "week"}, now)
		assert.Len(t, got, 3)
	})

	t.Run("month", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Period: "month"}, now)
		assert.Len(t, got, 4)
	})

	t.Run("unknown period means no cutoff", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Period: "all"}, now)
		assert.Len(t, got, 4)
	})

	t.Run("combined", func(t *testing.T) {
		got := Filter(entries, FilterOptions{Type: "login", AdminName: "Budi", Period: "week"}, now)
		assert.Empty(t, got)
	})
}

func TestMalformed(t *testing.T) {
	unknownName := models.ActivityLog{ID: 1, AdminName: "Unknown", Title: "Admin Login"}
	unknownTitle := models.ActivityLog{ID: 2, AdminName: "Siti", Title: "Unknown action"}
	clean := models.ActivityLog{ID: 3, AdminName: "Siti", Title: "Member Updated"}

	assert.True(t, Malformed(unknownName))
	assert.True(t, Malformed(unknownTitle))
	assert.False(t, Malformed(clean))

	// Purging a log with one "Unknown" entry and one "Siti" entry keeps
	// only the Siti entry.
	var kept []models.ActivityLog
	for _, e := range []models.ActivityLog{unknownName, clean} {
		if !Malformed(e) {
			kept = append(kept, e)
		}
	}
	require.Len(t, kept, 1)
	assert.Equal(t, "Siti", kept[0].AdminName)
}
