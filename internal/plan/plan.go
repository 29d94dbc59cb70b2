// Package plan derives presentation views and cost rollups from a trip.
// Everything here is a pure function of (trip, dayNumber, exchangeRate, now).
package plan

import (
	"sort"

	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/money"
)

// SortedActivities orders a day's activities ascending by time. The "HH:MM"
// zero-padded format makes lexicographic comparison correct, and the sort is
// stable: activities sharing a time keep their original relative order.
func SortedActivities(plan models.DailyPlan) []models.Activity {
	out := make([]models.Activity, len(plan.Activities))
	copy(out, plan.Activities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// DayTotalPrimary sums activity costs for one day in the primary currency.
func DayTotalPrimary(plan models.DailyPlan) float64 {
	var total float64
	for _, a := range plan.Activities {
		total += models.SanitizeCost(a.Cost)
	}
	return total
}

// DayTotalSecondary sums a day's costs in the secondary currency. An
// activity carrying an explicit MYR override contributes that amount
// verbatim; only activities without one are converted at the current rate.
// This is deliberately not DayTotalPrimary*rate.
func DayTotalSecondary(plan models.DailyPlan, rate float64) float64 {
	var total float64
	for _, a := range plan.Activities {
		if a.MYRCost != nil {
			total += models.SanitizeCost(*a.MYRCost)
			continue
		}
		total += money.ToSecondary(models.SanitizeCost(a.Cost), rate)
	}
	return total
}

// TripTotalPrimary sums every day's total in the primary currency.
func TripTotalPrimary(trip models.Trip) float64 {
	var total float64
	for _, plan := range trip.DailyPlans {
		total += DayTotalPrimary(plan)
	}
	return total
}

// CategoryTotals rolls trip costs up by category. Every category of the
// closed enumeration appears in the result, zero or not; activities with an
// unrecognized type fold into the other bucket.
func CategoryTotals(trip models.Trip) map[models.ActivityType]float64 {
	totals := make(map[models.ActivityType]float64, len(models.ActivityTypes))
	for _, t := range models.ActivityTypes {
		totals[t] = 0
	}
	for _, plan := range trip.DailyPlans {
		for _, a := range plan.Activities {
			t := a.Type
			if !models.IsValidActivityType(t) {
				t = models.TypeOther
			}
			totals[t] += models.SanitizeCost(a.Cost)
		}
	}
	return totals
}

// CategoryPercent is a category's share of the total budget. The divisor is
// clamped at 1 so an empty budget yields 0 rather than dividing by zero.
func CategoryPercent(categoryCost, totalCost float64) float64 {
	if totalCost < 1 {
		totalCost = 1
	}
	return categoryCost / totalCost * 100
}
