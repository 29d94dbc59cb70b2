package tripstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/mialiew/futaritabi/internal/models"
)

var presetThemes = []string{
	"Arrival in Tokyo",
	"Cultural Tokyo (Asakusa Focus)",
	"Tokyo Disneyland Magic",
	"Modern Vibes (Shibuya & Shinjuku)",
	"Art & Bay Views (teamLab)",
	"Free Day / Souvenir Hunting",
	"Fly to Hokkaido & Drive",
	"Hakodate & Sakura",
	"Drive to Lake Toya",
	"Noboribetsu & Sapporo",
	"Otaru Day Trip",
	"Sapporo City Explorer",
	"Departure",
}

const presetNotes = "Home Base: Airbnb in Asakusa.\n\n" +
	"Flight Details:\n" +
	"25 Apr: KUL -> HND (22:15)\n" +
	"01 May: HND -> CTS (07:50)\n" +
	"07 May: CTS -> KUL (20:30)\n\n" +
	"Notes: Focus on local food and Sakura viewing."

// Preset returns the fully populated sample itinerary used when no document
// has ever been saved: the 13-day Tokyo and Hokkaido sakura road trip, with
// the Disneyland day already planned out.
func Preset() models.Trip {
	trip := models.Trip{
		ID:          models.TripKey,
		Title:       "Sakura Road Trip: Tokyo & Hokkaido",
		Destination: "Japan",
		StartDate:   "2025-04-25",
		Duration:    len(presetThemes),
		Vibe:        models.VibeRomantic,
		Notes:       presetNotes,
		CreatedAt:   time.Now(),
	}
	for i, theme := range presetThemes {
		trip.DailyPlans = append(trip.DailyPlans, models.DailyPlan{
			ID:         uuid.NewString(),
			DayNumber:  i + 1,
			Theme:      theme,
			Activities: []models.Activity{},
		})
	}
	trip.DailyPlans[2].Activities = disneylandDay()
	return trip
}

func disneylandDay() []models.Activity {
	return []models.Activity{
		{
			ID:          uuid.NewString(),
			Time:        "07:00",
			Title:       "Early Breakfast & Coffee",
			Description: "Quick breakfast at the Airbnb or grab something from the nearby FamilyMart in Asakusa.",
			Location:    "Asakusa Airbnb",
			Type:        models.TypeFood,
			Cost:        1500,
		},
		{
			ID:          uuid.NewString(),
			Time:        "07:45",
			Title:       "Travel to Disneyland",
			Description: "Take the Ginza Line to Ueno, transfer to Hibiya Line to Hatchobori, then JR Keiyo Line to Maihama. Takes approx 45-50 mins.",
			Location:    "Maihama Station",
			Type:        models.TypeTravel,
			Cost:        800,
		},
		{
			ID:          uuid.NewString(),
			Time:        "08:30",
			Title:       "Queue at Main Gate",
			Description: "Arrive early to queue. The park often opens slightly earlier than official time (usually 8:45 or 9:00).",
			Location:    "Tokyo Disneyland",
			Type:        models.TypeSightseeing,
			Cost:        18000,
			IsBooked:    true,
		},
		{
			ID:          uuid.NewString(),
			Time:        "12:30",
			Title:       "Lunch at Queen of Hearts",
			Description: "Alice in Wonderland themed banquet hall. Great for photos and decent food portions.",
			Location:    "Fantasyland",
			Type:        models.TypeFood,
			Cost:        5000,
		},
		{
			ID:          uuid.NewString(),
			Time:        "19:00",
			Title:       "Dinner at Blue Bayou",
			Description: "Fine dining inside the Pirates of the Caribbean ride. Atmosphere is incredible.",
			Location:    "Adventureland",
			Type:        models.TypeFood,
			Cost:        12000,
			Notes:       "Requires advance reservation!",
		},
		{
			ID:          uuid.NewString(),
			Time:        "20:00",
			Title:       "Electrical Parade Dreamlights",
			Description: "The iconic night parade. Find a spot near the hub or Westernland 30 mins early.",
			Location:    "Park Wide",
			Type:        models.TypeSightseeing,
			Cost:        0,
		},
		{
			ID:          uuid.NewString(),
			Time:        "21:30",
			Title:       "Return to Asakusa",
			Description: "Reverse route back to the Airbnb. Be prepared for crowds at Maihama station.",
			Location:    "Asakusa",
			Type:        models.TypeTravel,
			Cost:        800,
		},
	}
}
