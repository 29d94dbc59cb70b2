package chat

import (
	"encoding/json"
	"testing"

	"github.com/liushuangls/go-anthropic/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mialiew/futaritabi/internal/models"
)

func summaryTrip() models.Trip {
	return models.Trip{
		Destination: "Tokyo",
		Notes:       "Bring the JR passes",
		DailyPlans: []models.DailyPlan{
			{
				DayNumber: 1,
				Theme:     "Arrival Day",
				Activities: []models.Activity{
					{Time: "12:00", Title: "Ramen lunch", Location: "Shinjuku", Cost: 3000},
				},
			},
			{DayNumber: 2, Theme: "Shibuya"},
		},
	}
}

func TestContextSummary(t *testing.T) {
	out := ContextSummary(summaryTrip())

	var decoded struct {
		Destination string `json:"destination"`
		Days        []struct {
			Day        int      `json:"day"`
			Theme      string   `json:"theme"`
			Activities []string `json:"activities"`
		} `json:"days"`
		Notes string `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Tokyo", decoded.Destination)
	assert.Equal(t, "Bring the JR passes", decoded.Notes)
	require.Len(t, decoded.Days, 2)
	require.Len(t, decoded.Days[0].Activities, 1)
	assert.Equal(t, "12:00: Ramen lunch at Shinjuku (Cost: ¥3000)", decoded.Days[0].Activities[0])
	assert.Empty(t, decoded.Days[1].Activities)
}

func TestContextSummary_EmptyTrip(t *testing.T) {
	out := ContextSummary(models.Trip{})

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "", decoded["destination"])
}

func TestSystemInstruction(t *testing.T) {
	out := SystemInstruction(summaryTrip())

	assert.Contains(t, out, "helpful travel assistant for a couple")
	assert.Contains(t, out, "current planned itinerary data")
	assert.Contains(t, out, `"destination":"Tokyo"`)
}

func TestNewClaudeAssistant_DefaultModel(t *testing.T) {
	a := NewClaudeAssistant("test-key", "")
	assert.Equal(t, anthropic.ModelClaude3Dot5SonnetLatest, a.model)
}
