package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vetclinic/internal/config"
	"vetclinic/internal/database"
	"vetclinic/internal/handlers"
	"vetclinic/internal/middlewares"
	"vetclinic/internal/models"
	"vetclinic/internal/repositories"
	"vetclinic/internal/repositories/memory"
	"vetclinic/internal/repositories/postgres"
	"vetclinic/internal/routes"
	"vetclinic/internal/services"
)

// NewRouter builds the fully wired clinic API. The store backend is
// PostgreSQL when database config is present, in-memory otherwise.
func NewRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	models.RegisterValidators()

	var (
		guardianRepo    repositories.GuardianRepository
		animalRepo      repositories.AnimalRepository
		vetRepo         repositories.VeterinarianRepository
		appointmentRepo repositories.AppointmentRepository
		visitRepo       repositories.VisitRepository
		medicationRepo  repositories.MedicationRepository
		credentialRepo  repositories.CredentialRepository
	)

	if cfg.Database.Enabled() {
		pool, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(pool); err != nil {
			return nil, err
		}
		guardianRepo = postgres.NewGuardianRepository(pool)
		animalRepo = postgres.NewAnimalRepository(pool)
		vetRepo = postgres.NewVeterinarianRepository(pool)
		appointmentRepo = postgres.NewAppointmentRepository(pool)
		visitRepo = postgres.NewVisitRepository(pool)
		medicationRepo = postgres.NewMedicationRepository(pool)
		credentialRepo = postgres.NewCredentialRepository(pool)
	} else {
		store := memory.NewStore()
		guardianRepo = store.Guardians()
		animalRepo = store.Animals()
		vetRepo = store.Veterinarians()
		appointmentRepo = store.Appointments()
		visitRepo = store.Visits()
		medicationRepo = store.Medications()
		credentialRepo = store.Credentials()
	}

	// Dependency injection
	roles := services.NewRoleTable()
	authService := services.NewAuthService(
		credentialRepo,
		roles,
		[]byte(cfg.Auth.TokenSecret),
		time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute,
	)
	if err := authService.SeedCredential(cfg.Auth.SeedUsername, cfg.Auth.SeedPassword, cfg.Auth.SeedRole); err != nil {
		return nil, fmt.Errorf("failed to seed credential: %w", err)
	}

	guardianService := services.NewGuardianService(guardianRepo)
	animalService := services.NewAnimalService(animalRepo, guardianRepo)
	vetService := services.NewVeterinarianService(vetRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, animalRepo, vetRepo)
	visitService := services.NewVisitService(visitRepo, appointmentRepo)
	medicationService := services.NewMedicationService(medicationRepo, visitRepo)

	guardianHandler := handlers.NewGuardianHandler(guardianService)
	animalHandler := handlers.NewAnimalHandler(animalService)
	vetHandler := handlers.NewVeterinarianHandler(vetService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	visitHandler := handlers.NewVisitHandler(visitService)
	medicationHandler := handlers.NewMedicationHandler(medicationService)
	authHandler := handlers.NewAuthHandler(authService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(router,
		authService,
		guardianHandler,
		animalHandler,
		vetHandler,
		appointmentHandler,
		visitHandler,
		medicationHandler,
		authHandler,
	)

	return router, nil
}

// NewServer loads configuration and returns the configured HTTP server.
func NewServer() (*http.Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zapCfg.Build()
}
