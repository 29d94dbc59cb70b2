package tripstore

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mialiew/futaritabi/internal/models"
)

const defaultTime = "09:00"

// NewDraft builds a fresh activity ready for the edit form. The id is
// assigned here and never changes afterwards.
func NewDraft(t models.ActivityType) models.Activity {
	if !models.IsValidActivityType(t) || t == "" {
		t = models.TypeSightseeing
	}
	return models.Activity{
		ID:   uuid.NewString(),
		Time: defaultTime,
		Type: t,
	}
}

// Normalize defaults every optional field of an existing activity so edits
// always start from defined values. The id is preserved; cost is sanitized
// and the category decoded with the usual other-fallback.
func Normalize(a models.Activity) models.Activity {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Time == "" {
		a.Time = defaultTime
	}
	a.Type = models.ParseActivityType(string(a.Type))
	a.Cost = models.SanitizeCost(a.Cost)
	if a.MYRCost != nil {
		v := models.SanitizeCost(*a.MYRCost)
		a.MYRCost = &v
	}
	return a
}

// ValidForSave reports whether an activity may be persisted. A non-blank
// title is the only hard rule; every other field accepts any value.
func ValidForSave(a models.Activity) bool {
	return strings.TrimSpace(a.Title) != ""
}
