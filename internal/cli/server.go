package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"globetrotter-service/internal/app"
	"globetrotter-service/internal/config"
	"globetrotter-service/internal/infra/memory"
	pgcatalog "globetrotter-service/internal/infra/postgres"
	rediscatalog "globetrotter-service/internal/infra/redis"
	"globetrotter-service/internal/infra/restcountries"
	transport "globetrotter-service/internal/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the globetrotter server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.CatalogLoader
	switch cfg.Countries.Source {
	case "postgres":
		if pool == nil {
			log.Printf("countries source postgres but no postgres url, falling back to static catalog")
			loader = memory.NewStaticCatalogLoader(sampleCatalog())
		} else {
			loader = pgcatalog.NewCatalogLoader(pool)
		}
	case "restcountries":
		loader = restcountries.NewClient(cfg.Countries.BaseURL)
	default:
		loader = memory.NewStaticCatalogLoader(sampleCatalog())
	}

	catalogTTL := config.TTLDuration(cfg.Countries.TTL, time.Hour)
	var catalog app.CatalogRepository
	if redisClient != nil {
		catalog = rediscatalog.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalog = memory.NewCatalogRepository(loader, catalogTTL)
	}

	var scores app.LeaderboardStore
	var tripStore app.TripStore
	var dailyStore app.DailyPickStore
	var prefStore app.PreferenceStore
	if redisClient != nil {
		scores = rediscatalog.NewLeaderboardStore(redisClient)
		tripStore = rediscatalog.NewTripStore(redisClient)
		dailyStore = rediscatalog.NewDailyStore(redisClient)
		prefStore = rediscatalog.NewPreferenceStore(redisClient)
	} else {
		scores = memory.NewLeaderboardStore()
		tripStore = memory.NewTripStore()
		dailyStore = memory.NewDailyStore()
		prefStore = memory.NewPreferenceStore()
	}

	quizService := app.NewQuizService(memory.NewSessionStore(), catalog, scores, cfg.Quiz.Questions, cfg.Quiz.Options)
	tripService := app.NewTripService(tripStore, app.NewCostEstimator())
	lobbyService := app.NewLobbyService(memory.NewLobbyStore(), catalog, cfg.Quiz.Questions, cfg.Quiz.Options)
	daily := app.NewDailyPicker(catalog, dailyStore)

	apiHandler := transport.NewAPIHandler(quizService, tripService, lobbyService, daily, catalog, scores, prefStore)
	wsHandler := transport.NewWSHandler(lobbyService)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Mount("/api", apiHandler.Routes())
	r.Get("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:              ":" + finalPort,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting globetrotter service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
