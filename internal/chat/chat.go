// Package chat is the LLM-backed travel assistant gateway. The core hands it
// the user's message, the prior turns of the session, and the current trip;
// the assistant answers with the itinerary as context. Failures are returned
// to the handler and shown as a single in-chat error message, never fatal.
package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/mialiew/futaritabi/internal/models"
)

const systemPrompt = "You are a helpful travel assistant for a couple. " +
	"You are friendly, romantic, and organized."

// Assistant is the chat gateway contract the handlers depend on.
type Assistant interface {
	SendMessage(ctx context.Context, message string, history []models.ChatMessage, trip models.Trip) (string, error)
}

// ClaudeAssistant implements Assistant on the Anthropic Messages API.
type ClaudeAssistant struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewClaudeAssistant builds the assistant. model may be empty to use a
// sensible default.
func NewClaudeAssistant(apiKey, model string) *ClaudeAssistant {
	if model == "" {
		model = string(anthropic.ModelClaude3Dot5SonnetLatest)
	}
	return &ClaudeAssistant{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

// SendMessage sends one user turn plus the conversation so far. No streaming:
// a single request/response per message is all the UI needs.
func (a *ClaudeAssistant) SendMessage(ctx context.Context, message string, history []models.ChatMessage, trip models.Trip) (string, error) {
	messages := make([]anthropic.Message, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case models.ChatRoleUser:
			messages = append(messages, anthropic.NewUserTextMessage(turn.Text))
		case models.ChatRoleModel:
			messages = append(messages, anthropic.NewAssistantTextMessage(turn.Text))
		}
	}
	messages = append(messages, anthropic.NewUserTextMessage(message))

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     a.model,
		System:    SystemInstruction(trip),
		Messages:  messages,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	text := resp.GetFirstContentText()
	if text == "" {
		return "", fmt.Errorf("assistant returned no text")
	}
	return text, nil
}

// SystemInstruction appends a serialized summary of the current itinerary to
// the base prompt so the assistant can answer questions about the plan.
func SystemInstruction(trip models.Trip) string {
	return systemPrompt +
		"\n\nHere is the user's current planned itinerary data: " + ContextSummary(trip) +
		".\n\nWhen they ask questions, refer to this specific itinerary if relevant " +
		`(e.g., "How far is that from my dinner?").`
}

type daySummary struct {
	Day        int      `json:"day"`
	Theme      string   `json:"theme"`
	Activities []string `json:"activities"`
}

type tripSummary struct {
	Destination string       `json:"destination"`
	Days        []daySummary `json:"days"`
	Notes       string       `json:"notes"`
}

// ContextSummary serializes the trip for the system prompt: destination,
// per-day theme with one "time: title at location (cost)" line per activity,
// and the trip notes.
func ContextSummary(trip models.Trip) string {
	summary := tripSummary{
		Destination: trip.Destination,
		Days:        []daySummary{},
		Notes:       trip.Notes,
	}
	for _, plan := range trip.DailyPlans {
		day := daySummary{
			Day:        plan.DayNumber,
			Theme:      plan.Theme,
			Activities: []string{},
		}
		for _, act := range plan.Activities {
			day.Activities = append(day.Activities,
				fmt.Sprintf("%s: %s at %s (Cost: ¥%.0f)", act.Time, act.Title, act.Location, act.Cost))
		}
		summary.Days = append(summary.Days, day)
	}
	out, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(out)
}
