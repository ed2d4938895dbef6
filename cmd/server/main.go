package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fitness-program/internal/api"
	"alcyxob/fitness-program/internal/config"
	"alcyxob/fitness-program/internal/delivery"
	"alcyxob/fitness-program/internal/email"
	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/program"
	"alcyxob/fitness-program/internal/repository/mongo"
	"alcyxob/fitness-program/internal/service"
	"alcyxob/fitness-program/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title Fitness Program API
// @version 1.0
// @description Onboarding, 14-day program generation and email delivery.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic("could not build logger: " + err.Error())
	}
	defer log.Sync()
	log.Info("Starting Fitness Program Server...", "mode", cfg.Log.Mode)

	// --- Program tables ---
	tables, err := program.LoadTables(cfg.Program.TablesFile)
	if err != nil {
		log.Fatal("Could not load program tables", "file", cfg.Program.TablesFile, "error", err)
	}
	assembler, err := program.NewAssembler(tables, program.WithWorkers(cfg.Program.Workers))
	if err != nil {
		log.Fatal("Invalid program tables", "error", err)
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatal("Could not connect to MongoDB", "error", err)
	}
	defer func() {
		log.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Error("Failed to disconnect MongoDB", "error", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("Database connection established.", "database", cfg.Database.Name)

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		for collection, err := range mongo.EnsureIndexes(ctx, appDB) {
			log.Warn("Index creation failed", "collection", collection, "error", err)
		}
		log.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	var objectStorage storage.ObjectStorage
	if cfg.S3.BucketName != "" {
		objectStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, log)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage", "error", err)
		}
	} else {
		log.Warn("No S3 bucket configured; program snapshots are disabled")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	deliveryRepo := mongo.NewMongoDeliveryRepository(appDB)
	funnelRepo := mongo.NewMongoFunnelEventRepository(appDB)

	// --- Email delivery ---
	renderer, err := delivery.NewRenderer(delivery.Branding{
		Brand:        cfg.Delivery.Brand,
		Signature:    cfg.Delivery.Signature,
		ContactEmail: cfg.Delivery.ContactEmail,
	})
	if err != nil {
		log.Fatal("Failed to parse email templates", "error", err)
	}
	sender := email.NewSendGridSender(cfg.SendGrid, &http.Client{Timeout: 15 * time.Second})
	if !sender.Enabled() {
		log.Warn("SendGrid API key not configured; emails will be skipped")
	}
	dispatcher := delivery.NewDispatcher(delivery.DispatcherConfig{
		Sender:      sender,
		Renderer:    renderer,
		Scheduler:   delivery.NewScheduler(renderer, delivery.WithSendHour(cfg.Delivery.SendHourUTC)),
		Log:         deliveryRepo,
		Logger:      log.With("component", "dispatcher"),
		Concurrency: cfg.Delivery.Concurrency,
	})

	// --- Initialize Services ---
	profileService := service.NewProfileService(userRepo, funnelRepo, log.With("component", "profile"))
	exerciseService := service.NewExerciseService(exerciseRepo)
	programService := service.NewProgramService(service.ProgramServiceConfig{
		Users:         userRepo,
		Exercises:     exerciseRepo,
		Programs:      programRepo,
		Deliveries:    deliveryRepo,
		Funnel:        funnelRepo,
		Generator:     assembler,
		Dispatcher:    dispatcher,
		Renderer:      renderer,
		Storage:       objectStorage,
		PresignExpiry: cfg.S3.PresignExpiry,
		Logger:        log.With("component", "program"),
	})

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api.SetupRoutes(router, api.RouterConfig{
		ProfileService:  profileService,
		ProgramService:  programService,
		ExerciseService: exerciseService,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Logger:          log.With("component", "http"),
	})

	// --- Start HTTP Server ---
	// Program generation hands all 14 emails to the provider before responding.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Server starting", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe error", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting.")
}
