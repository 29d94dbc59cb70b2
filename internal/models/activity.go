package models

import (
	"math"
	"net/url"
	"strings"
)

// ActivityType categorizes a scheduled item.
type ActivityType string

const (
	TypeFood        ActivityType = "food"
	TypeSightseeing ActivityType = "sightseeing"
	TypeShopping    ActivityType = "shopping"
	TypeRelaxation  ActivityType = "relaxation"
	TypeTravel      ActivityType = "travel"
	TypeStay        ActivityType = "stay"
	TypeDrive       ActivityType = "drive"
	TypeOther       ActivityType = "other"
)

// ActivityTypes lists every category in presentation order.
var ActivityTypes = []ActivityType{
	TypeFood,
	TypeSightseeing,
	TypeShopping,
	TypeRelaxation,
	TypeTravel,
	TypeStay,
	TypeDrive,
	TypeOther,
}

// IsValidActivityType checks if a category is part of the closed enumeration.
func IsValidActivityType(t ActivityType) bool {
	switch t {
	case TypeFood, TypeSightseeing, TypeShopping, TypeRelaxation,
		TypeTravel, TypeStay, TypeDrive, TypeOther:
		return true
	default:
		return false
	}
}

// ParseActivityType decodes a category string. Unrecognized or legacy values
// fold into TypeOther; this never fails.
func ParseActivityType(s string) ActivityType {
	t := ActivityType(strings.ToLower(strings.TrimSpace(s)))
	if IsValidActivityType(t) {
		return t
	}
	return TypeOther
}

// Activity represents one scheduled item within a day.
type Activity struct {
	ID            string       `json:"id" bson:"id"`
	Time          string       `json:"time" bson:"time"` // "HH:MM", 24-hour, same-day ordering only
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description" bson:"description"`
	Location      string       `json:"location" bson:"location"`
	Type          ActivityType `json:"type" bson:"type"`
	Cost          float64      `json:"cost" bson:"cost"` // primary currency (JPY)
	MYRCost       *float64     `json:"myrCost,omitempty" bson:"myr_cost,omitempty"`
	CustomMapLink string       `json:"customMapLink,omitempty" bson:"custom_map_link,omitempty"`
	WazeLink      string       `json:"wazeLink,omitempty" bson:"waze_link,omitempty"`
	Notes         string       `json:"notes,omitempty" bson:"notes,omitempty"`
	IsBooked      bool         `json:"isBooked" bson:"is_booked"`
	FlightNo      string       `json:"flightNo,omitempty" bson:"flight_no,omitempty"`
	Terminal      string       `json:"terminal,omitempty" bson:"terminal,omitempty"`
}

// SanitizeCost collapses non-finite or negative amounts to 0.
func SanitizeCost(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// MapLink returns the user-supplied map URL when present, otherwise a Google
// Maps search URL synthesized from the location. Empty when there is nothing
// to link to.
func (a Activity) MapLink() string {
	if link := strings.TrimSpace(a.CustomMapLink); link != "" {
		if strings.HasPrefix(link, "http") {
			return link
		}
		return "https://" + link
	}
	if a.Location == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(a.Location)
}

// NavLink returns a navigation URL for drive activities, synthesizing a Waze
// link from the location when none was supplied.
func (a Activity) NavLink() string {
	if a.WazeLink != "" {
		return a.WazeLink
	}
	if a.Type != TypeDrive || a.Location == "" {
		return ""
	}
	return "https://waze.com/ul?q=" + url.QueryEscape(a.Location) + "&navigate=yes"
}
