package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"measurement-intake-service/internal/adapters/cache"
	"measurement-intake-service/internal/adapters/notify"
	"measurement-intake-service/internal/adapters/postcode"
	"measurement-intake-service/internal/adapters/repositories"
	"measurement-intake-service/internal/adapters/traveltime"
	"measurement-intake-service/internal/api"
	"measurement-intake-service/internal/config"
	"measurement-intake-service/internal/platform/db"
	"measurement-intake-service/internal/ports"
	"measurement-intake-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (postgres, ORS, redis, Telegram) behind ports,
// starts the departure scheduler and serves the intake API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	baseAddress := config.Get("BASE_ADDRESS", "Heereweg 10, Lisse")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	loc := time.Local
	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("APP_TIMEZONE %q: %v", tz, err)
		}
		loc = l
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresStateRepository(database)

	ors, err := traveltime.NewORSTravelTimeEstimator(orsKey, baseAddress)
	if err != nil {
		log.Fatal(err)
	}

	// A short-lived redis cache keeps polling from burning ORS quota while
	// the departure instant is recomputed every cycle.
	var estimator ports.TravelTimeEstimator = ors
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		ttl := config.GetDuration("TRAVEL_CACHE_TTL", time.Minute)
		estimator = cache.NewRedisTravelTimeCache(client, ors, ttl)
	}

	var notifier ports.Notifier = notify.LogNotifier{}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(config.Get("TELEGRAM_CHAT_ID", "0"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_CHAT_ID: %v", err)
		}
		tg, err := notify.NewTelegramNotifier(token, chatID)
		if err != nil {
			log.Fatal(err)
		}
		notifier = tg
	}

	settings, err := services.NewSettingsService(context.Background(), repo)
	if err != nil {
		log.Fatal(err)
	}

	scheduler := services.NewDepartureScheduler(repo, settings, estimator, notifier, loc)
	scheduler.Bind()
	defer scheduler.Stop()

	lookup := postcode.NewClient(os.Getenv("POSTCODE_API_KEY"))

	router := api.NewRouter(repo, settings, notifier, lookup, loc)

	// Timeouts are tuned for handlers that may wait on external lookups.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
