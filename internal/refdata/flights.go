package refdata

// Flight is one leg of the trip's fixed flight table, as printed on the
// boarding passes.
type Flight struct {
	Date      string `json:"date"` // YYYY-MM-DD
	FlightNo  string `json:"flightNo"`
	From      string `json:"from"` // IATA code
	To        string `json:"to"`
	Departure string `json:"departure"` // "HH:MM" local
	Terminal  string `json:"terminal,omitempty"`
}

// Flights is the boarding-pass table for the trip.
var Flights = []Flight{
	{Date: "2025-04-25", FlightNo: "MH88", From: "KUL", To: "HND", Departure: "22:15", Terminal: "T1"},
	{Date: "2025-05-01", FlightNo: "JL501", From: "HND", To: "CTS", Departure: "07:50", Terminal: "T1"},
	{Date: "2025-05-07", FlightNo: "MH65", From: "CTS", To: "KUL", Departure: "20:30"},
}

// FlightsOn returns the legs departing on the given ISO date.
func FlightsOn(date string) []Flight {
	var out []Flight
	for _, f := range Flights {
		if f.Date == date {
			out = append(out, f)
		}
	}
	return out
}
