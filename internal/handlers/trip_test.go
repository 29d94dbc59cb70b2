package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mialiew/futaritabi/internal/db"
	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/session"
)

// fakeStore is an in-memory stand-in for the Mongo collection.
type fakeStore struct{}

func (f *fakeStore) LoadTrip(ctx context.Context, key string) (*models.Trip, error) {
	return nil, db.ErrNotFound
}

func (f *fakeStore) SaveTrip(ctx context.Context, key string, trip models.Trip) error {
	return nil
}

func seedTrip() models.Trip {
	myr := 50.0
	return models.Trip{
		ID:          models.TripKey,
		Title:       "Sakura Week",
		Destination: "Tokyo",
		StartDate:   "2025-04-25",
		Duration:    2,
		Vibe:        models.VibeRomantic,
		DailyPlans: []models.DailyPlan{
			{
				ID:        "day-1",
				DayNumber: 1,
				Theme:     "Arrival Day",
				Activities: []models.Activity{
					{ID: "a2", Time: "12:00", Title: "Ramen lunch", Location: "Shinjuku", Type: models.TypeFood, Cost: 3000},
					{ID: "a1", Time: "09:00", Title: "Airport express", Type: models.TypeTravel, Cost: 1000, MYRCost: &myr},
				},
			},
			{
				ID:        "day-2",
				DayNumber: 2,
				Theme:     "Shibuya",
			},
		},
	}
}

func newTestHandler(t *testing.T) *TripHandler {
	t.Helper()
	sess := session.New(context.Background(), &fakeStore{}, nil, seedTrip)
	h := NewTripHandler(sess)
	h.now = func() time.Time {
		return time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func doJSON(t *testing.T, handle httprouter.Handle, method, target string, body interface{}, params httprouter.Params) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	handle(w, req, params)
	return w
}

func decodeTrip(t *testing.T, w *httptest.ResponseRecorder) models.Trip {
	t.Helper()
	var trip models.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	return trip
}

func dayParams(day int) httprouter.Params {
	return httprouter.Params{{Key: "day", Value: fmt.Sprintf("%d", day)}}
}

func TestGetTrip(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.GetTrip, http.MethodGet, "/api/trip", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Equal(t, "Sakura Week", trip.Title)
	assert.Len(t, trip.DailyPlans, 2)
}

func TestReplaceTrip_ForcesKeyAndSanitizes(t *testing.T) {
	h := newTestHandler(t)

	incoming := seedTrip()
	incoming.ID = "someone-elses-id"
	incoming.DailyPlans[0].Activities[0].Cost = -500

	w := doJSON(t, h.ReplaceTrip, http.MethodPut, "/api/trip", incoming, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Equal(t, models.TripKey, trip.ID)
	assert.Zero(t, trip.DailyPlans[0].Activities[0].Cost)
}

func TestReplaceTrip_RepairsMalformedDocument(t *testing.T) {
	h := newTestHandler(t)

	incoming := seedTrip()
	incoming.Duration = 99
	incoming.DailyPlans[0].DayNumber = 7
	incoming.DailyPlans[1].DayNumber = 7
	incoming.DailyPlans[1].Activities = []models.Activity{
		{ID: "a2", Time: "18:00", Title: "Izakaya dinner"},
	}

	w := doJSON(t, h.ReplaceTrip, http.MethodPut, "/api/trip", incoming, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	require.Len(t, trip.DailyPlans, 2)
	assert.Equal(t, 1, trip.DailyPlans[0].DayNumber)
	assert.Equal(t, 2, trip.DailyPlans[1].DayNumber)
	assert.Equal(t, 2, trip.Duration)

	// the duplicated id stays on its first occurrence only
	assert.Equal(t, "a2", trip.DailyPlans[0].Activities[0].ID)
	dinner := trip.DailyPlans[1].Activities[0]
	assert.NotEqual(t, "a2", dinner.ID)
	assert.NotEmpty(t, dinner.ID)
}

func TestUpsertActivity_Append(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]interface{}{
		"activity": models.Activity{Title: "Evening stroll", Time: "19:00"},
	}
	w := doJSON(t, h.UpsertActivity, http.MethodPost, "/api/trip/days/2/activities", body, dayParams(2))

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	require.Len(t, trip.DailyPlans[1].Activities, 1)
	added := trip.DailyPlans[1].Activities[0]
	assert.Equal(t, "Evening stroll", added.Title)
	assert.NotEmpty(t, added.ID)
}

func TestUpsertActivity_EditInPlace(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]interface{}{
		"activity":  models.Activity{ID: "a2", Time: "12:30", Title: "Sushi lunch", Type: models.TypeFood, Cost: 4500},
		"isEditing": true,
	}
	w := doJSON(t, h.UpsertActivity, http.MethodPost, "/api/trip/days/1/activities", body, dayParams(1))

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	require.Len(t, trip.DailyPlans[0].Activities, 2)
	var edited models.Activity
	for _, a := range trip.DailyPlans[0].Activities {
		if a.ID == "a2" {
			edited = a
		}
	}
	assert.Equal(t, "Sushi lunch", edited.Title)
	assert.Equal(t, 4500.0, edited.Cost)
}

func TestUpsertActivity_BlankTitleRejected(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]interface{}{
		"activity": models.Activity{Title: "   "},
	}
	w := doJSON(t, h.UpsertActivity, http.MethodPost, "/api/trip/days/1/activities", body, dayParams(1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Activity title is required")

	// the trip must be untouched
	assert.Len(t, h.session.Current().DailyPlans[0].Activities, 2)
}

func TestDeleteActivity(t *testing.T) {
	h := newTestHandler(t)

	params := append(dayParams(1), httprouter.Param{Key: "id", Value: "a1"})
	w := doJSON(t, h.DeleteActivity, http.MethodDelete, "/api/trip/days/1/activities/a1", nil, params)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	require.Len(t, trip.DailyPlans[0].Activities, 1)
	assert.Equal(t, "a2", trip.DailyPlans[0].Activities[0].ID)
}

func TestDeleteActivity_MissingIsNoop(t *testing.T) {
	h := newTestHandler(t)

	params := append(dayParams(1), httprouter.Param{Key: "id", Value: "no-such-id"})
	w := doJSON(t, h.DeleteActivity, http.MethodDelete, "/api/trip/days/1/activities/no-such-id", nil, params)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Len(t, trip.DailyPlans[0].Activities, 2)
}

func TestAddDay(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.AddDay, http.MethodPost, "/api/trip/days", map[string]string{"theme": "Onsen Day"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	trip := decodeTrip(t, w)
	require.Len(t, trip.DailyPlans, 3)
	assert.Equal(t, 3, trip.DailyPlans[2].DayNumber)
	assert.Equal(t, "Onsen Day", trip.DailyPlans[2].Theme)
	assert.Equal(t, 3, trip.Duration)
}

func TestSetDayTheme(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.SetDayTheme, http.MethodPut, "/api/trip/days/2/theme", map[string]string{"theme": "Harajuku"}, dayParams(2))

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Equal(t, "Harajuku", trip.DailyPlans[1].Theme)
}

func TestSetField(t *testing.T) {
	h := newTestHandler(t)

	params := httprouter.Params{{Key: "field", Value: "destination"}}
	w := doJSON(t, h.SetField, http.MethodPut, "/api/trip/fields/destination", map[string]string{"value": "Kyoto"}, params)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Equal(t, "Kyoto", trip.Destination)
}

func TestSetField_Unknown(t *testing.T) {
	h := newTestHandler(t)

	params := httprouter.Params{{Key: "field", Value: "vibe"}}
	w := doJSON(t, h.SetField, http.MethodPut, "/api/trip/fields/vibe", map[string]string{"value": "foodie"}, params)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetTrip(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.ResetTrip, http.MethodPost, "/api/trip/reset", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	trip := decodeTrip(t, w)
	assert.Len(t, trip.DailyPlans, 1)
	assert.Empty(t, trip.DailyPlans[0].Activities)
}

func TestDayView(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.DayView, http.MethodGet, "/api/trip/days/1?rate=0.03", nil, dayParams(1))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dayViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.DayNumber)
	assert.Equal(t, "FRI, APR 25", resp.Label)
	assert.False(t, resp.IsToday)
	assert.Equal(t, 4000.0, resp.TotalJPY)
	// 3000 converted plus the 50 MYR override on the train ticket
	assert.Equal(t, 140.0, resp.TotalMYR)

	require.Len(t, resp.Activities, 2)
	assert.Equal(t, "a1", resp.Activities[0].ID)
	assert.Equal(t, "a2", resp.Activities[1].ID)
	assert.Equal(t, 50.0, resp.Activities[0].MYREquivalent)
	assert.Equal(t, 90.0, resp.Activities[1].MYREquivalent)
	assert.Contains(t, resp.Activities[1].MapLink, "google.com/maps/search")
	assert.Contains(t, resp.Activities[1].MapLink, "Shinjuku")
	// no location and no custom link means no map link at all
	assert.Empty(t, resp.Activities[0].MapLink)
	assert.False(t, resp.Activities[0].IsOngoing)
}

func TestDayView_NotFound(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.DayView, http.MethodGet, "/api/trip/days/9", nil, dayParams(9))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDayView_InvalidDayParam(t *testing.T) {
	h := newTestHandler(t)

	params := httprouter.Params{{Key: "day", Value: "zero"}}
	w := doJSON(t, h.DayView, http.MethodGet, "/api/trip/days/zero", nil, params)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBudget(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.Budget, http.MethodGet, "/api/trip/budget?rate=0.03", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		TotalJPY   float64             `json:"totalJpy"`
		TotalMYR   float64             `json:"totalMyr"`
		Categories []categoryBreakdown `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 4000.0, resp.TotalJPY)
	assert.Equal(t, 120.0, resp.TotalMYR)
	assert.Len(t, resp.Categories, len(models.ActivityTypes))

	byType := map[models.ActivityType]categoryBreakdown{}
	for _, c := range resp.Categories {
		byType[c.Type] = c
	}
	assert.Equal(t, 3000.0, byType[models.TypeFood].Cost)
	assert.Equal(t, 75.0, byType[models.TypeFood].Percent)
	assert.Equal(t, 1000.0, byType[models.TypeTravel].Cost)
	assert.Zero(t, byType[models.TypeShopping].Cost)
}

func TestCountdown(t *testing.T) {
	h := newTestHandler(t)

	w := doJSON(t, h.Countdown, http.MethodGet, "/api/trip/countdown", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		HasStartDate bool `json:"hasStartDate"`
		DaysUntil    int  `json:"daysUntil"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasStartDate)
	assert.Equal(t, 114, resp.DaysUntil)
}
