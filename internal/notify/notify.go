// Package notify broadcasts trip-updated events over MQTT so the partner's
// open client can refresh after a save lands. Publishing is fire-and-forget;
// a missing or unreachable broker never affects editing or persistence.
package notify

import (
	"encoding/json"
	"errors"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/models"
)

// Topic is the trip-updated event topic.
const Topic = "futaritabi/trip-updated"

// Event is the payload published after each successful save. Clients only
// need enough to know a newer revision exists; they re-fetch the document.
type Event struct {
	TripID    string `json:"tripId"`
	Duration  int    `json:"duration"`
	UpdatedAt string `json:"updatedAt"`
}

// MQTTPublisher publishes trip events to a broker.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker. Returns an error when the broker
// is configured but unreachable; callers run without notifications in that
// case rather than failing startup.
func NewMQTTPublisher(broker, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5 * time.Second) {
		return nil, errors.New("mqtt connect timed out")
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	return &MQTTPublisher{client: client}, nil
}

// TripUpdated publishes one event. QoS 0: a dropped notification only means
// the partner refreshes manually.
func (p *MQTTPublisher) TripUpdated(trip models.Trip) {
	payload, err := json.Marshal(Event{
		TripID:    trip.ID,
		Duration:  trip.Duration,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	token := p.client.Publish(Topic, 0, false, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).Debug("trip-updated publish failed")
		}
	}()
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
