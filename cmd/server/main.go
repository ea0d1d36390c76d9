package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/interview-prep/backend/internal/config"
	"github.com/interview-prep/backend/internal/interview"
	"github.com/interview-prep/backend/internal/logger"
	"github.com/interview-prep/backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	bank := interview.NewBank()
	if err := bank.Validate(); err != nil {
		log.Fatal("invalid question bank", zap.Error(err))
	}

	rng := interview.NewRand(time.Now().UnixNano())
	service := interview.NewService(
		store.NewMemory(),
		interview.NewEvaluator(rng),
		interview.NewSelector(bank, rng),
		rng,
		log,
	)
	handler := interview.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/analyze", handler.Analyze).Methods("POST")
	api.HandleFunc("/session/start", handler.StartSession).Methods("POST")
	api.HandleFunc("/session/answer", handler.SubmitAnswer).Methods("POST")
	api.HandleFunc("/session/report", handler.FetchReport).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Int("bank_size", bank.Size()))

	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
