package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"tafseel/backend/internal/api/handler"
	"tafseel/backend/internal/localization"
	"tafseel/backend/internal/models"
	"tafseel/backend/internal/notify"
	"tafseel/backend/internal/preview"
	"tafseel/backend/internal/previewhub"
	"tafseel/backend/internal/storage"
	"tafseel/backend/internal/translator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "user"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "tafseeldb"),
		envOr("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     envOr("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	if err := db.AutoMigrate(&models.SpecRecord{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Tafseel Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	// 1. Dependencies
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Localization core: phrase dictionary, resolver, translation client
	dict := localization.NewDictionary()
	if dir := os.Getenv("LOCALES_DIR"); dir != "" {
		if err := dict.LoadDir(dir); err != nil {
			log.Printf("WARN: Failed to load locales from %s: %v", dir, err)
		}
	}
	resolver := localization.NewResolver(dict)

	provider := translator.NewLibreProvider(os.Getenv("TRANSLATE_ENDPOINT"))
	translateSvc := translator.NewService(provider, translator.NewCache())

	previewEnabled := envOr("PREVIEW_TRANSLATE", "true") != "false"
	previewSvc := preview.New(resolver, translateSvc, previewEnabled)

	// 3. Live preview hub
	hub := previewhub.NewHub(s)
	go hub.Run()

	// 4. Optional Telegram publish notifications
	var notifier *notify.Service
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
		if err != nil {
			log.Println("WARN: TELEGRAM_CHAT_ID missing or invalid, notifications disabled")
		} else if notifier, err = notify.NewService(token, chatID); err != nil {
			log.Printf("WARN: Failed to start Telegram notifier: %v", err)
		}
	}

	// 5. Gin routes
	r := gin.Default()
	h := handler.NewHandler(s, previewSvc, translateSvc, dict, hub, notifier)

	r.GET("/api/auth/token", h.GetEditorToken)
	r.GET("/api/specs/:slug", h.GetSpec)
	r.POST("/api/specs/:slug", h.SaveSpec)
	r.GET("/api/specs/:slug/preview", h.PreviewSpec)
	r.POST("/api/translate", h.Translate)
	r.GET("/ws/specs/:slug", h.ServeSpecUpdates)

	server := &http.Server{
		Addr:           ":" + envOr("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
