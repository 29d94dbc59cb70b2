package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/money"
	"github.com/mialiew/futaritabi/internal/plan"
	"github.com/mialiew/futaritabi/internal/schedule"
	"github.com/mialiew/futaritabi/internal/session"
	"github.com/mialiew/futaritabi/internal/tripstore"
)

// TripHandler exposes the trip aggregate and its derived views.
type TripHandler struct {
	session *session.Session
	now     func() time.Time
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(s *session.Session) *TripHandler {
	return &TripHandler{session: s, now: time.Now}
}

// GetTrip returns the current trip document.
// GET /api/trip
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.session.Current())
}

// ReplaceTrip swaps in a whole new trip value, the same total-replacement
// semantics the edit operations use. This is the one entry point where a
// client controls the whole document, so it is reconciled on the way in:
// costs sanitized, day numbers and duration repaired, duplicate activity ids
// reassigned.
// PUT /api/trip
func (h *TripHandler) ReplaceTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	trip = tripstore.Reconcile(trip)
	updated := h.session.Apply(func(models.Trip) models.Trip { return trip })
	writeJSON(w, http.StatusOK, updated)
}

// ResetTrip discards everything for a fresh blank trip. The client asks the
// user to confirm before calling; the operation itself is unconditional.
// POST /api/trip/reset
func (h *TripHandler) ResetTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, h.session.Reset())
}

// AddDay appends a new day to the trip.
// POST /api/trip/days
func (h *TripHandler) AddDay(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Theme string `json:"theme"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // empty body is fine
	}
	updated := h.session.Apply(func(t models.Trip) models.Trip {
		return tripstore.AddDay(t, req.Theme)
	})
	writeJSON(w, http.StatusCreated, updated)
}

// SetDayTheme renames the theme of one day.
// PUT /api/trip/days/:day/theme
func (h *TripHandler) SetDayTheme(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayParam(w, ps)
	if !ok {
		return
	}
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated := h.session.Apply(func(t models.Trip) models.Trip {
		return tripstore.SetDayTheme(t, day, req.Theme)
	})
	writeJSON(w, http.StatusOK, updated)
}

// SetField replaces one top-level trip field (destination, title, startDate,
// notes).
// PUT /api/trip/fields/:field
func (h *TripHandler) SetField(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	field := tripstore.TripField(ps.ByName("field"))
	if !tripstore.IsValidTripField(field) {
		writeError(w, http.StatusBadRequest, "Unknown field")
		return
	}
	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated := h.session.Apply(func(t models.Trip) models.Trip {
		return tripstore.SetField(t, field, req.Value)
	})
	writeJSON(w, http.StatusOK, updated)
}

// UpsertActivity adds or edits one activity on a day. A blank title is the
// one validation failure: the save is rejected and the edit form stays open
// on the client.
// POST /api/trip/days/:day/activities
func (h *TripHandler) UpsertActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayParam(w, ps)
	if !ok {
		return
	}
	var req struct {
		Activity  models.Activity `json:"activity"`
		IsEditing bool            `json:"isEditing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !tripstore.ValidForSave(req.Activity) {
		writeError(w, http.StatusBadRequest, "Activity title is required")
		return
	}
	updated := h.session.Apply(func(t models.Trip) models.Trip {
		return tripstore.UpsertActivity(t, day, req.Activity, req.IsEditing)
	})
	writeJSON(w, http.StatusOK, updated)
}

// DeleteActivity removes one activity from a day; deleting something already
// gone is a no-op, not an error.
// DELETE /api/trip/days/:day/activities/:id
func (h *TripHandler) DeleteActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayParam(w, ps)
	if !ok {
		return
	}
	id := ps.ByName("id")
	updated := h.session.Apply(func(t models.Trip) models.Trip {
		return tripstore.DeleteActivity(t, day, id)
	})
	writeJSON(w, http.StatusOK, updated)
}

// activityView is an activity plus its derived presentation fields.
type activityView struct {
	models.Activity
	MYREquivalent float64 `json:"myrEquivalent"`
	MapLink       string  `json:"mapLink,omitempty"`
	NavLink       string  `json:"navLink,omitempty"`
	IsOngoing     bool    `json:"isOngoing"`
}

// dayViewResponse is the presentation-ready view of one day.
type dayViewResponse struct {
	DayNumber  int            `json:"dayNumber"`
	Label      string         `json:"label"`
	Theme      string         `json:"theme"`
	IsToday    bool           `json:"isToday"`
	TotalJPY   float64        `json:"totalJpy"`
	TotalMYR   float64        `json:"totalMyr"`
	Activities []activityView `json:"activities"`
}

// DayView returns one day with activities sorted by time, cost totals in
// both currencies, the calendar label, and the happening-now flags. All of
// it is recomputed from the current trip and wall clock on every request.
// GET /api/trip/days/:day?rate=0.03
func (h *TripHandler) DayView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	day, ok := dayParam(w, ps)
	if !ok {
		return
	}
	trip := h.session.Current()
	dp := trip.FindDay(day)
	if dp == nil {
		writeError(w, http.StatusNotFound, "Day not found")
		return
	}
	rate := rateParam(r)
	now := h.now()

	sorted := plan.SortedActivities(*dp)
	resp := dayViewResponse{
		DayNumber:  dp.DayNumber,
		Label:      schedule.DayLabel(trip.StartDate, dp.DayNumber-1),
		Theme:      dp.Theme,
		IsToday:    schedule.IsTripDayToday(trip.StartDate, dp.DayNumber, now),
		TotalJPY:   plan.DayTotalPrimary(*dp),
		TotalMYR:   plan.DayTotalSecondary(*dp, rate),
		Activities: []activityView{},
	}
	for i, a := range sorted {
		next := ""
		if i+1 < len(sorted) {
			next = sorted[i+1].Time
		}
		view := activityView{
			Activity:      a,
			MYREquivalent: money.ToSecondary(a.Cost, rate),
			MapLink:       a.MapLink(),
			NavLink:       a.NavLink(),
			IsOngoing:     resp.IsToday && schedule.IsOngoing(a.Time, next, now),
		}
		if a.MYRCost != nil {
			view.MYREquivalent = *a.MYRCost
		}
		resp.Activities = append(resp.Activities, view)
	}
	writeJSON(w, http.StatusOK, resp)
}

type categoryBreakdown struct {
	Type    models.ActivityType `json:"type"`
	Cost    float64             `json:"cost"`
	CostMYR float64             `json:"costMyr"`
	Percent float64             `json:"percent"`
}

// Budget returns the trip-wide cost rollup: the grand total plus one entry
// per category, zero categories included.
// GET /api/trip/budget?rate=0.03
func (h *TripHandler) Budget(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	trip := h.session.Current()
	rate := rateParam(r)
	total := plan.TripTotalPrimary(trip)
	totals := plan.CategoryTotals(trip)

	breakdown := make([]categoryBreakdown, 0, len(models.ActivityTypes))
	for _, t := range models.ActivityTypes {
		breakdown = append(breakdown, categoryBreakdown{
			Type:    t,
			Cost:    totals[t],
			CostMYR: money.ToSecondary(totals[t], rate),
			Percent: plan.CategoryPercent(totals[t], total),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalJpy":   total,
		"totalMyr":   money.ToSecondary(total, rate),
		"categories": breakdown,
	})
}

// Countdown returns the days-until-departure counter, or started=false when
// no start date is set.
// GET /api/trip/countdown
func (h *TripHandler) Countdown(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	trip := h.session.Current()
	days, ok := schedule.DaysUntil(trip.StartDate, h.now())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hasStartDate": ok,
		"daysUntil":    days,
	})
}

func dayParam(w http.ResponseWriter, ps httprouter.Params) (int, bool) {
	day, err := strconv.Atoi(ps.ByName("day"))
	if err != nil || day < 1 {
		writeError(w, http.StatusBadRequest, "Invalid day number")
		return 0, false
	}
	return day, true
}

// rateParam reads the exchange rate from the query, falling back to the
// default when absent or malformed. Rate errors are never surfaced.
func rateParam(r *http.Request) float64 {
	if rate := money.ParseRate(r.URL.Query().Get("rate")); rate > 0 {
		return rate
	}
	return money.DefaultRate
}
