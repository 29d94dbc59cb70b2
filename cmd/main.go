package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/mialiew/futaritabi/internal/auth"
	"github.com/mialiew/futaritabi/internal/chat"
	"github.com/mialiew/futaritabi/internal/db"
	"github.com/mialiew/futaritabi/internal/handlers"
	"github.com/mialiew/futaritabi/internal/middleware"
	"github.com/mialiew/futaritabi/internal/notify"
	"github.com/mialiew/futaritabi/internal/session"
	"github.com/mialiew/futaritabi/internal/tripstore"
)

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found; using system environment")
	}
	setupLogging()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	trips := &db.MongoTripCollection{
		Collection: client.Database(envOr("MONGO_DB", "futaritabi")).Collection("trips"),
	}

	notifier := newNotifier()
	sess := newSession(trips, notifier)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}

	router := setupRouter(sess, authService, newAssistant())

	authMW := middleware.NewAuthMiddleware(authService)
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{envOr("CORS_ORIGIN", "*")},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(authMW.Authenticate(router))

	srv := &http.Server{
		Addr:         listenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	sess.Flush() // persist any edit still inside the debounce window
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("shutdown error")
	}
}

func setupRouter(sess *session.Session, authService *auth.Service, assistant chat.Assistant) *httprouter.Router {
	tripHandler := handlers.NewTripHandler(sess)
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(assistant, sess)
	refHandler := handlers.NewReferenceHandler()
	exportHandler := handlers.NewExportHandler(sess)

	router := httprouter.New()
	router.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.POST("/api/login", authHandler.Login)

	router.GET("/api/trip", tripHandler.GetTrip)
	router.PUT("/api/trip", tripHandler.ReplaceTrip)
	router.POST("/api/trip/reset", tripHandler.ResetTrip)
	router.POST("/api/trip/days", tripHandler.AddDay)
	router.GET("/api/trip/days/:day", tripHandler.DayView)
	router.PUT("/api/trip/days/:day/theme", tripHandler.SetDayTheme)
	router.POST("/api/trip/days/:day/activities", tripHandler.UpsertActivity)
	router.DELETE("/api/trip/days/:day/activities/:id", tripHandler.DeleteActivity)
	router.PUT("/api/trip/fields/:field", tripHandler.SetField)
	router.GET("/api/trip/budget", tripHandler.Budget)
	router.GET("/api/trip/countdown", tripHandler.Countdown)

	router.POST("/api/chat", chatHandler.Send)

	router.GET("/api/reference/metro", refHandler.MetroLines)
	router.GET("/api/reference/flights", refHandler.Flights)

	router.GET("/api/export", exportHandler.Offline)

	return router
}

// newSession loads the trip document, falling back to the preset itinerary
// (or a blank trip with START_BLANK=1) when the store has nothing or fails.
func newSession(trips db.TripCollection, notifier session.Notifier) *session.Session {
	fallback := tripstore.Preset
	if os.Getenv("START_BLANK") == "1" {
		fallback = tripstore.Blank
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return session.New(ctx, trips, notifier, fallback)
}

// newNotifier connects the MQTT publisher when a broker is configured.
// An unreachable broker just means no live refresh on the partner's device.
func newNotifier() session.Notifier {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		return nil
	}
	publisher, err := notify.NewMQTTPublisher(broker, envOr("MQTT_CLIENT_ID", "futaritabi-server"))
	if err != nil {
		log.WithError(err).Warn("MQTT broker unreachable, notifications disabled")
		return nil
	}
	log.WithField("broker", broker).Info("trip notifications enabled")
	return publisher
}

func newAssistant() chat.Assistant {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		log.Info("ANTHROPIC_API_KEY not set, chat assistant disabled")
		return nil
	}
	return chat.NewClaudeAssistant(apiKey, os.Getenv("ANTHROPIC_MODEL"))
}

func setupLogging() {
	if level, err := log.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func listenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func envOr(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return defaultVal
}
