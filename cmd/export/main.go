// Command export renders the saved trip into a standalone HTML itinerary,
// suitable for phones with no signal. Reads the same document the server
// maintains; writes a single file and exits.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/db"
	"github.com/mialiew/futaritabi/internal/export"
	"github.com/mialiew/futaritabi/internal/models"
	"github.com/mialiew/futaritabi/internal/money"
	"github.com/mialiew/futaritabi/internal/tripstore"
)

func main() {
	out := flag.String("out", "itinerary.html", "output file path")
	rate := flag.Float64("rate", money.DefaultRate, "exchange rate, MYR per 1 JPY")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found; using system environment")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "futaritabi"
	}
	trips := &db.MongoTripCollection{Collection: client.Database(dbName).Collection("trips")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	trip, err := trips.LoadTrip(ctx, models.TripKey)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.WithError(err).Warn("trip load failed, exporting the preset itinerary")
		}
		preset := tripstore.Preset()
		trip = &preset
	}

	doc, err := export.RenderOffline(*trip, *rate)
	if err != nil {
		log.WithError(err).Fatal("render failed")
	}
	if err := os.WriteFile(*out, []byte(doc), 0644); err != nil {
		log.WithError(err).Fatal("write failed")
	}
	log.WithFields(log.Fields{"file": *out, "days": trip.Duration}).Info("itinerary exported")
}
