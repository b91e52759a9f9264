package audit

import (
	"strings"
	"time"

	"github.com/docterbee/membership-system/internal/models"
)

// FilterOptions narrows an already-fetched activity list. Zero values mean
// "no constraint"; Period accepts today, week, month or all.
type FilterOptions struct {
	Type      string
	AdminName string
	Period    string
}

func Filter(entries []models.ActivityLog, opts FilterOptions, now time.Time) []models.ActivityLog {
	cutoff, hasCutoff := periodCutoff(opts.Period, now)

	out := make([]models.ActivityLog, 0, len(entries))
	for _, e := range entries {
		if opts.Type != "" && e.ActivityType != opts.Type {
			continue
		}
		if opts.AdminName != "" && !strings.EqualFold(e.AdminName, opts.AdminName) {
			continue
		}
		if hasCutoff && e.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// UnknownAdminName is the placeholder actor recorded by a historical bug
// when the acting admin could not be resolved.
const UnknownAdminName = "Unknown"

// Malformed reports whether an entry carries the placeholder actor, either
// as the denormalized admin name or embedded in the title. ClearMalformed
// purges exactly these rows.
func Malformed(e models.ActivityLog) bool {
	return e.AdminName == UnknownAdminName || strings.Contains(e.Title, UnknownAdminName)
}

// periodCutoff resolves a period name to a creation-time lower bound.
func periodCutoff(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}
