package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/studybuddy/backend/internal/auth"
	"github.com/studybuddy/backend/internal/config"
	"github.com/studybuddy/backend/internal/database"
	"github.com/studybuddy/backend/internal/jobs"
	"github.com/studybuddy/backend/internal/middleware"
	"github.com/studybuddy/backend/internal/pet"
	"github.com/studybuddy/backend/internal/progress"
	"github.com/studybuddy/backend/internal/yearbook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetFormatter(&log.JSONFormatter{})

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	progressService := progress.NewService(progress.NewStore(db))
	petService := pet.NewService(pet.NewStore(db), progressService, cfg.PetHungerRate)
	yearbookService := yearbook.NewService(yearbook.NewStore(db), yearbook.NewLLMClient(cfg), progressService)

	// Initialize handlers
	authHandler := auth.NewHandler(db, []byte(cfg.JWTSecret))
	progressHandler := progress.NewHandler(progressService)
	petHandler := pet.NewHandler(petService)
	yearbookHandler := yearbook.NewHandler(yearbookService)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/auth/me", authHandler.UpdateCurrentUser).Methods("PUT")

	protected.HandleFunc("/activities", progressHandler.RecordActivity).Methods("POST")
	protected.HandleFunc("/activities", progressHandler.ListActivities).Methods("GET")
	protected.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/progress/achievements", progressHandler.ListAchievements).Methods("GET")
	protected.HandleFunc("/progress/xp", progressHandler.AwardXP).Methods("POST")
	protected.HandleFunc("/progress/xp", progressHandler.XPHistory).Methods("GET")
	protected.HandleFunc("/progress/spend", progressHandler.SpendXP).Methods("POST")
	protected.HandleFunc("/progress/reset", progressHandler.ResetProgress).Methods("POST")

	protected.HandleFunc("/pet", petHandler.GetPet).Methods("GET")
	protected.HandleFunc("/pet", petHandler.UpdatePet).Methods("PUT")
	protected.HandleFunc("/pet/feed", petHandler.FeedPet).Methods("POST")
	protected.HandleFunc("/pet/accessories", petHandler.ListAccessories).Methods("GET")
	protected.HandleFunc("/pet/accessories/unlock", petHandler.UnlockAccessory).Methods("POST")

	protected.HandleFunc("/memories", yearbookHandler.CreateMemory).Methods("POST")
	protected.HandleFunc("/memories", yearbookHandler.ListMemories).Methods("GET")
	protected.HandleFunc("/yearbooks", yearbookHandler.ListYearbooks).Methods("GET")
	protected.HandleFunc("/yearbooks/generate", yearbookHandler.GenerateYearbook).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Background jobs
	scheduler := jobs.NewScheduler(progressService)
	if err := scheduler.Start(cfg.SweepSchedule); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Infof("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
