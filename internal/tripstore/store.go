// Package tripstore holds the pure mutation operations over the Trip
// aggregate. Every operation takes the current Trip and returns a new value;
// nothing here mutates a Trip, DailyPlan, or Activity in place. The debounced
// persistence layer relies on that total-replacement discipline.
package tripstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/mialiew/futaritabi/internal/models"
)

// DefaultTheme labels a freshly added day.
const DefaultTheme = "New Adventure"

// TripField names a top-level trip field editable through SetField.
type TripField string

const (
	FieldDestination TripField = "destination"
	FieldTitle       TripField = "title"
	FieldStartDate   TripField = "startDate"
	FieldNotes       TripField = "notes"
)

// IsValidTripField checks if a field name is editable.
func IsValidTripField(f TripField) bool {
	switch f {
	case FieldDestination, FieldTitle, FieldStartDate, FieldNotes:
		return true
	default:
		return false
	}
}

// UpsertActivity replaces the activity with a matching id in the targeted day
// when isEditing is set, otherwise appends. Sibling days are carried over
// untouched. The activity is normalized on the way in.
func UpsertActivity(trip models.Trip, dayNumber int, activity models.Activity, isEditing bool) models.Trip {
	activity = Normalize(activity)
	plans := make([]models.DailyPlan, len(trip.DailyPlans))
	for i, plan := range trip.DailyPlans {
		if plan.DayNumber != dayNumber {
			plans[i] = plan
			continue
		}
		activities := make([]models.Activity, 0, len(plan.Activities)+1)
		replaced := false
		for _, a := range plan.Activities {
			if isEditing && a.ID == activity.ID {
				activities = append(activities, activity)
				replaced = true
				continue
			}
			activities = append(activities, a)
		}
		if !replaced {
			activities = append(activities, activity)
		}
		plan.Activities = activities
		plans[i] = plan
	}
	trip.DailyPlans = plans
	return trip
}

// DeleteActivity removes the matching activity from the targeted day. A
// missing day or id is a no-op.
func DeleteActivity(trip models.Trip, dayNumber int, activityID string) models.Trip {
	plans := make([]models.DailyPlan, len(trip.DailyPlans))
	for i, plan := range trip.DailyPlans {
		if plan.DayNumber != dayNumber {
			plans[i] = plan
			continue
		}
		activities := make([]models.Activity, 0, len(plan.Activities))
		for _, a := range plan.Activities {
			if a.ID != activityID {
				activities = append(activities, a)
			}
		}
		plan.Activities = activities
		plans[i] = plan
	}
	trip.DailyPlans = plans
	return trip
}

// AddDay appends a new empty day. Day numbers stay contiguous from 1 and
// the trip duration is kept in sync with the day count. Always succeeds.
func AddDay(trip models.Trip, theme string) models.Trip {
	if theme == "" {
		theme = DefaultTheme
	}
	day := models.DailyPlan{
		ID:         uuid.NewString(),
		DayNumber:  len(trip.DailyPlans) + 1,
		Theme:      theme,
		Activities: []models.Activity{},
	}
	plans := make([]models.DailyPlan, 0, len(trip.DailyPlans)+1)
	plans = append(plans, trip.DailyPlans...)
	plans = append(plans, day)
	trip.DailyPlans = plans
	trip.Duration = len(plans)
	return trip
}

// SetField replaces one top-level trip field. Unknown fields are a no-op;
// values are accepted as-is.
func SetField(trip models.Trip, field TripField, value string) models.Trip {
	switch field {
	case FieldDestination:
		trip.Destination = value
	case FieldTitle:
		trip.Title = value
	case FieldStartDate:
		trip.StartDate = value
	case FieldNotes:
		trip.Notes = value
	}
	return trip
}

// SetDayTheme updates the theme of the targeted day.
func SetDayTheme(trip models.Trip, dayNumber int, theme string) models.Trip {
	plans := make([]models.DailyPlan, len(trip.DailyPlans))
	for i, plan := range trip.DailyPlans {
		if plan.DayNumber == dayNumber {
			plan.Theme = theme
		}
		plans[i] = plan
	}
	trip.DailyPlans = plans
	return trip
}

// Reconcile repairs a whole trip document from an untrusted source: the id is
// forced to the fixed key, day numbers are renumbered contiguously from 1 in
// slice order, the duration is synced to the day count, every activity is
// normalized, and a duplicate activity id anywhere in the trip gets a fresh
// one (first occurrence keeps its id). The targeted operations preserve these
// invariants on their own; only whole-document replacement needs this.
func Reconcile(trip models.Trip) models.Trip {
	trip.ID = models.TripKey
	seen := make(map[string]bool)
	plans := make([]models.DailyPlan, len(trip.DailyPlans))
	for i, plan := range trip.DailyPlans {
		plan.DayNumber = i + 1
		if plan.ID == "" {
			plan.ID = uuid.NewString()
		}
		activities := make([]models.Activity, len(plan.Activities))
		for j, a := range plan.Activities {
			a = Normalize(a)
			if seen[a.ID] {
				a.ID = uuid.NewString()
			}
			seen[a.ID] = true
			activities[j] = a
		}
		plan.Activities = activities
		plans[i] = plan
	}
	trip.DailyPlans = plans
	trip.Duration = len(plans)
	return trip
}

// Blank returns a fresh single-day trip with no activities. This is the
// destructive reset target; callers must confirm with the user before
// invoking it, the store itself asks nothing.
func Blank() models.Trip {
	return models.Trip{
		ID:          models.TripKey,
		Title:       "Our New Adventure",
		Destination: "Somewhere Wonderful",
		Duration:    1,
		Vibe:        models.VibeRomantic,
		CreatedAt:   time.Now(),
		DailyPlans: []models.DailyPlan{{
			ID:         uuid.NewString(),
			DayNumber:  1,
			Theme:      "Arrival Day",
			Activities: []models.Activity{},
		}},
	}
}
