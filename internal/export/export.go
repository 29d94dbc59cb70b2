// Package export renders the trip into a self-contained HTML document that
// works with no network or backend: every day, every activity, the cost
// rollups and the trip notes. One-way only; there is no importer.
package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/money"
	"github.com/mialiew/futaritabi/internal/plan"
	"github.com/mialiew/futaritabi/internal/schedule"
)

type activityView struct {
	Time     string
	Title    string
	Desc     string
	Location string
	Type     string
	CostJPY  string
	CostMYR  string
	Notes    string
	Booked   bool
	MapLink  string
}

type dayView struct {
	Number     int
	Label      string
	Theme      string
	TotalJPY   string
	TotalMYR   string
	Activities []activityView
}

type docView struct {
	Title       string
	Destination string
	Duration    int
	Notes       string
	TotalJPY    string
	TotalMYR    string
	Days        []dayView
}

// RenderOffline serializes the whole trip into one standalone HTML page.
// Pure function of (trip, rate); safe to call from any goroutine.
func RenderOffline(trip models.Trip, rate float64) (string, error) {
	doc := docView{
		Title:       trip.Title,
		Destination: trip.Destination,
		Duration:    trip.Duration,
		Notes:       trip.Notes,
		TotalJPY:    jpy(plan.TripTotalPrimary(trip)),
	}
	var totalMYR float64
	for _, p := range trip.DailyPlans {
		totalMYR += plan.DayTotalSecondary(p, rate)
		day := dayView{
			Number:   p.DayNumber,
			Label:    schedule.DayLabel(trip.StartDate, p.DayNumber-1),
			Theme:    p.Theme,
			TotalJPY: jpy(plan.DayTotalPrimary(p)),
			TotalMYR: myr(plan.DayTotalSecondary(p, rate)),
		}
		for _, a := range plan.SortedActivities(p) {
			view := activityView{
				Time:     a.Time,
				Title:    a.Title,
				Desc:     a.Description,
				Location: a.Location,
				Type:     string(a.Type),
				Notes:    a.Notes,
				Booked:   a.IsBooked,
				MapLink:  a.MapLink(),
			}
			if a.Cost > 0 || a.MYRCost != nil {
				view.CostJPY = jpy(a.Cost)
				if a.MYRCost != nil {
					view.CostMYR = myr(*a.MYRCost)
				} else {
					view.CostMYR = myr(money.ToSecondary(a.Cost, rate))
				}
			}
			day.Activities = append(day.Activities, view)
		}
		doc.Days = append(doc.Days, day)
	}
	doc.TotalMYR = myr(totalMYR)

	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("render offline document: %w", err)
	}
	return sb.String(), nil
}

func jpy(v float64) string {
	return fmt.Sprintf("¥%.0f", v)
}

func myr(v float64) string {
	return fmt.Sprintf("RM %.2f", v)
}

var pageTemplate = template.Must(template.New("offline").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 720px; margin: 0 auto; padding: 1.5rem; color: #3f2030; }
h1 { color: #be123c; margin-bottom: 0; }
.sub { color: #9f5f74; font-size: .9rem; margin-top: .25rem; }
.day { margin-top: 2rem; border-top: 2px solid #fecdd3; padding-top: 1rem; }
.day h2 { margin: 0; font-size: 1.2rem; }
.label { font-size: .75rem; letter-spacing: .2em; color: #e11d48; }
.total { float: right; font-weight: bold; }
.act { margin: .75rem 0; padding: .75rem; background: #fff1f2; border-radius: .75rem; }
.act .time { font-weight: bold; color: #e11d48; margin-right: .5rem; }
.act .cost { float: right; color: #be123c; font-weight: bold; }
.act .meta { font-size: .75rem; color: #9f5f74; text-transform: uppercase; }
.act p { margin: .25rem 0 0; font-size: .9rem; color: #5b3a49; }
.booked { border-left: 4px solid #22c55e; }
.notes { white-space: pre-wrap; background: #fff1f2; padding: 1rem; border-radius: .75rem; margin-top: 2rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="sub">{{.Destination}} · {{.Duration}} days · Total {{.TotalJPY}} ≈ {{.TotalMYR}}</div>
{{range .Days}}
<div class="day">
  <div class="label">{{.Label}}</div>
  <h2>Day {{.Number}}: {{.Theme}} <span class="total">{{.TotalJPY}} ≈ {{.TotalMYR}}</span></h2>
  {{if not .Activities}}<p><em>No plans for this day yet.</em></p>{{end}}
  {{range .Activities}}
  <div class="act{{if .Booked}} booked{{end}}">
    {{if .CostJPY}}<span class="cost">{{.CostJPY}} ≈ {{.CostMYR}}</span>{{end}}
    <span class="time">{{.Time}}</span><strong>{{.Title}}</strong>
    <div class="meta">{{.Type}}{{if .Location}} · {{.Location}}{{end}}</div>
    {{if .Desc}}<p>{{.Desc}}</p>{{end}}
    {{if .Notes}}<p><em>{{.Notes}}</em></p>{{end}}
    {{if .MapLink}}<p><a href="{{.MapLink}}">Map</a></p>{{end}}
  </div>
  {{end}}
</div>
{{end}}
{{if .Notes}}<div class="notes">{{.Notes}}</div>{{end}}
</body>
</html>
`))
