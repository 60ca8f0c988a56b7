package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hanziclash/internal/audio"
	"hanziclash/internal/config"
	"hanziclash/internal/content"
	"hanziclash/internal/database"
	"hanziclash/internal/game"
	"hanziclash/internal/handlers"
	"hanziclash/internal/repository"
	"hanziclash/internal/security"
	"hanziclash/internal/service"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()
	log.Info().Str("type", cfg.DatabaseType).Msg("database connection established")

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations completed")

	pool := content.NewPool()

	if err := os.MkdirAll(cfg.AudioPath, 0755); err != nil {
		log.Fatal().Err(err).Msg("failed to create audio directory")
	}
	tts := audio.NewTTSService(cfg.AudioPath)

	// Repositories
	playerRepo := repository.NewPlayerRepository(db)
	guardianRepo := repository.NewGuardianRepository(db)
	versusRepo := repository.NewVersusRepository(db)

	// Services
	tokens := security.NewTokenIssuer(cfg.SessionSecret, cfg.SessionDuration)
	authService := service.NewAuthService(playerRepo, guardianRepo, tokens)
	battleService := service.NewBattleService(pool, playerRepo, logSink{})
	versusService := service.NewVersusService(pool, playerRepo, versusRepo)
	practiceService := service.NewPracticeService(pool, playerRepo)
	playerService := service.NewPlayerService(playerRepo, versusRepo)
	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize report service")
	}
	guardianService := service.NewGuardianService(guardianRepo, playerRepo, reportService)

	// Handlers
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter)
	stateSigner := security.NewStateSigner(cfg.SessionSecret)
	authHandler := handlers.NewAuthHandler(authService, stateSigner,
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectBase)
	battleHandler := handlers.NewBattleHandler(battleService)
	versusHandler := handlers.NewVersusHandler(versusService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	contentHandler := handlers.NewContentHandler(pool)
	guardianHandler := handlers.NewGuardianHandler(guardianService)
	audioHandler := handlers.NewAudioHandler(tts, pool, cfg.AudioPath)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/signup", middleware.RateLimit(authHandler.Signup))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/suggest", authHandler.SuggestIdentity)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)
	mux.HandleFunc("POST /api/guardian/logout", authHandler.LogoutGuardian)

	// Catalog
	mux.HandleFunc("GET /api/worlds", contentHandler.Worlds)
	mux.HandleFunc("GET /api/avatars", contentHandler.Avatars)
	mux.HandleFunc("GET /api/achievements", contentHandler.Achievements)
	mux.HandleFunc("GET /api/levels/{level}/words", middleware.RequirePlayer(contentHandler.LevelWords))

	// Profile and rankings
	mux.HandleFunc("GET /api/players", playerHandler.Roster)
	mux.HandleFunc("GET /api/profile", middleware.RequirePlayer(playerHandler.Profile))
	mux.HandleFunc("PUT /api/profile", middleware.RequirePlayer(playerHandler.UpdateIdentity))
	mux.HandleFunc("GET /api/leaderboard", middleware.RequirePlayer(playerHandler.Leaderboard))
	mux.HandleFunc("GET /api/leaderboard/levels/{level}", middleware.RequirePlayer(playerHandler.LevelLeaderboard))
	mux.HandleFunc("GET /api/duels", middleware.RequirePlayer(playerHandler.Duels))

	// Battles
	mux.HandleFunc("POST /api/battles", middleware.RequirePlayer(battleHandler.Start))
	mux.HandleFunc("POST /api/battles/{session}/answer", middleware.RequirePlayer(battleHandler.Answer))
	mux.HandleFunc("POST /api/battles/{session}/forfeit", middleware.RequirePlayer(battleHandler.Forfeit))

	// Versus duels
	mux.HandleFunc("POST /api/versus", middleware.RequirePlayer(versusHandler.Start))
	mux.HandleFunc("POST /api/versus/{session}/answer", middleware.RequirePlayer(versusHandler.Answer))
	mux.HandleFunc("POST /api/versus/{session}/pause", middleware.RequirePlayer(versusHandler.Pause))
	mux.HandleFunc("POST /api/versus/{session}/resume", middleware.RequirePlayer(versusHandler.Resume))
	mux.HandleFunc("POST /api/versus/{session}/cancel", middleware.RequirePlayer(versusHandler.Cancel))
	mux.HandleFunc("GET /api/versus/{session}/stream", middleware.RequirePlayer(versusHandler.Stream))

	// Practice
	mux.HandleFunc("GET /api/practice", middleware.RequirePlayer(practiceHandler.List))
	mux.HandleFunc("GET /api/practice/{word}", middleware.RequirePlayer(practiceHandler.Question))
	mux.HandleFunc("POST /api/practice/{word}/answer", middleware.RequirePlayer(practiceHandler.Answer))

	// Guardian dashboard
	mux.HandleFunc("GET /api/guardian", middleware.RequireGuardian(guardianHandler.Dashboard))
	mux.HandleFunc("POST /api/guardian/link", middleware.RequireGuardian(guardianHandler.LinkPlayer))
	mux.HandleFunc("POST /api/guardian/report", middleware.RequireGuardian(guardianHandler.SendReport))

	// Audio
	mux.HandleFunc("GET /audio/{file}", audioHandler.Serve)
	mux.HandleFunc("POST /api/audio/warm", middleware.RequireGuardian(audioHandler.Warm))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// No write timeout: the versus stream holds its connection open
		// for the length of a duel.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// logSink records gameplay events in the structured log. The engine
// only knows the sink interface; anything heavier (sound priming,
// analytics) would hang off the same hook.
type logSink struct{}

func (logSink) GameEvent(playerID int64, event game.Event) {
	log.Debug().Int64("player", playerID).Str("event", string(event)).Msg("game event")
}

func setupLogging(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
