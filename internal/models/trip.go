package models

import "time"

// TripKey is the fixed persistence key for the single trip document. This is
// a one-trip-per-deployment system, not a multi-trip store.
const TripKey = "our-trip-id"

// TripVibe is the overall mood of the trip.
type TripVibe string

const (
	VibeRomantic  TripVibe = "Romantic"
	VibeAdventure TripVibe = "Adventure"
	VibeRelaxed   TripVibe = "Relaxed"
	VibeFoodie    TripVibe = "Foodie"
	VibeCultural  TripVibe = "Cultural"
)

// DailyPlan holds one calendar day of the trip. DayNumber is the lookup key
// used by all day-scoped operations; activity order inside Activities is not
// meaningful, presentation order is derived by sorting on time.
type DailyPlan struct {
	ID         string     `json:"id" bson:"id"`
	DayNumber  int        `json:"dayNumber" bson:"day_number"`
	Date       string     `json:"date,omitempty" bson:"date,omitempty"` // explicit ISO date override
	Theme      string     `json:"theme" bson:"theme"`
	Activities []Activity `json:"activities" bson:"activities"`
}

// Trip is the root aggregate. Every edit replaces the whole value; nothing
// mutates a Trip in place.
type Trip struct {
	ID          string      `json:"id" bson:"_id"`
	Title       string      `json:"title" bson:"title"`
	Destination string      `json:"destination" bson:"destination"`
	StartDate   string      `json:"startDate,omitempty" bson:"start_date,omitempty"` // YYYY-MM-DD
	Duration    int         `json:"duration" bson:"duration"`
	Vibe        TripVibe    `json:"vibe" bson:"vibe"`
	Notes       string      `json:"notes" bson:"notes"`
	DailyPlans  []DailyPlan `json:"dailyPlans" bson:"daily_plans"`
	CreatedAt   time.Time   `json:"createdAt" bson:"created_at"`
}

// FindDay looks up a day by its dayNumber. Returns nil when absent.
func (t Trip) FindDay(dayNumber int) *DailyPlan {
	for i := range t.DailyPlans {
		if t.DailyPlans[i].DayNumber == dayNumber {
			return &t.DailyPlans[i]
		}
	}
	return nil
}
