package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mialiew/futaritabi/internal/refdata"
)

// ReferenceHandler serves the static lookup tables.
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference data handler.
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// MetroLines returns every metro line, or just one with ?line=G. A station
// substring filter is available via ?station=.
// GET /api/reference/metro
func (h *ReferenceHandler) MetroLines(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if id := r.URL.Query().Get("line"); id != "" {
		line := refdata.FindLine(id)
		if line == nil {
			writeError(w, http.StatusNotFound, "Line not found")
			return
		}
		writeJSON(w, http.StatusOK, line)
		return
	}
	if q := r.URL.Query().Get("station"); q != "" {
		stations := refdata.FindStations(q)
		if stations == nil {
			stations = []refdata.MetroStation{}
		}
		writeJSON(w, http.StatusOK, stations)
		return
	}
	writeJSON(w, http.StatusOK, refdata.MetroLines)
}

// Flights returns the boarding-pass table, optionally filtered by ?date=.
// GET /api/reference/flights
func (h *ReferenceHandler) Flights(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if date := r.URL.Query().Get("date"); date != "" {
		flights := refdata.FlightsOn(date)
		if flights == nil {
			flights = []refdata.Flight{}
		}
		writeJSON(w, http.StatusOK, flights)
		return
	}
	writeJSON(w, http.StatusOK, refdata.Flights)
}
