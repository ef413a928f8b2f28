package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/internal/ai"
	"tripwise/internal/apiclient"
	intconfig "tripwise/internal/config"
	router "tripwise/internal/http"
	"tripwise/internal/http/handlers"
	"tripwise/internal/itinerary"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/internal/session"
	"tripwise/internal/workflow"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if err := env.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, ready := openSessionStore(ctx, env)
	defer intconfig.CloseDB()

	sessions := session.NewManager(store, env.SessionSecret, env.SessionTTL)
	go sessions.RunSweeper(ctx, env.SessionSweepInterval)

	client := apiclient.New(env.BackendBaseURL, env.BackendTimeout)

	var gen itinerary.Generator = itinerary.BackendGenerator{API: client.Itineraries()}
	if env.ItineraryGenerator == intconfig.GeneratorGemini {
		gemini, err := ai.NewGeminiGenerator(ctx, env.GeminiAPIKey, env.GeminiModel)
		if err != nil {
			log.Fatalf("gemini: %v", err)
		}
		defer gemini.Close()
		gen = gemini
	}

	docs := services.DocsService{}
	payments := services.PaymentService{API: client, Sessions: store}
	hs := &handlers.Handlers{
		Sessions:     sessions,
		CookieName:   env.SessionCookie,
		CookieSecure: env.CookieSecure,
		CookieMaxAge: int(env.SessionTTL.Seconds()),

		Auth: services.AuthService{
			API:      client,
			Sessions: sessions,
			Wizards:  workflow.NewWizardStore(env.SignupTTL),
		},
		Bookings:  services.BookingService{API: client, Docs: docs},
		Payments:  payments,
		Tours:     services.TourService{API: client},
		Profile:   services.ProfileService{API: client, Payments: payments},
		Partner:   services.PartnerService{API: client},
		Admin:     services.AdminService{API: client, Plans: repositories.NewPlanRepository(repositories.MockPlans())},
		Content:   services.ContentService{API: client},
		Docs:      docs,
		Itinerary: itinerary.NewService(gen, client.Itineraries()),
		Ready:     ready,
	}

	r := router.NewRouter(env, hs)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		// itinerary generation can take a while upstream
		WriteTimeout: env.BackendTimeout + 20*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("TripWise gateway listening on http://localhost%s (backend %s)", env.AppAddr, env.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}

// openSessionStore uses MySQL when DB_DSN is set and falls back to memory otherwise.
func openSessionStore(ctx context.Context, env intconfig.Env) (session.Store, func(*gin.Context) error) {
	if env.DBDSN == "" {
		log.Println("[CONFIG] DB_DSN empty, sessions are kept in memory")
		return session.NewMemoryStore(), nil
	}
	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	repo := repositories.SessionRepository{DB: db}
	schemaCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(schemaCtx); err != nil {
		log.Fatalf("session store schema: %v", err)
	}
	return repo, func(c *gin.Context) error { return intconfig.PingDB(c.Request.Context()) }
}
