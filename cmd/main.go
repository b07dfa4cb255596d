package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tdhoang/careerledger/config"
	"github.com/tdhoang/careerledger/database"
	_ "github.com/tdhoang/careerledger/docs" // Swagger docs - auto-generated
	"github.com/tdhoang/careerledger/internal/auth"
	adminctrl "github.com/tdhoang/careerledger/internal/controller/admin"
	userctrl "github.com/tdhoang/careerledger/internal/controller/user"
	"github.com/tdhoang/careerledger/internal/ledger"
	"github.com/tdhoang/careerledger/internal/logger"
	"github.com/tdhoang/careerledger/internal/model"
	"github.com/tdhoang/careerledger/internal/repository"
	"github.com/tdhoang/careerledger/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Career Assessment Ledger API
// @version 1.0
// @description Append-only career assessment ledger with commitment schemes, a two-phase reveal gate and owner-gated fee withdrawal.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewTokenService,
			NewLedger, // Provides *ledger.Ledger
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewEventRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewJournalSink, // Provides ledger.EventSink
			service.NewAssessmentService,
			service.NewAdminService,
			service.NewAdvisorService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAssessmentController,
			adminctrl.NewAdminLedgerController,
		),

		// Invokers - order matters: migrate, replay, then serve.
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RestoreLedger),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.JWTSecret, 24*time.Hour)
}

// NewLedger assembles the in-memory ledger core from configuration: score
// weights, minimum fee, reveal flavor and commitment scheme.
func NewLedger(cfg *config.Config, sink ledger.EventSink) (*ledger.Ledger, error) {
	key, err := cfg.Ledger.EncryptionKey()
	if err != nil {
		return nil, err
	}
	scheme, err := ledger.NewScheme(cfg.Ledger.CommitmentScheme, key)
	if err != nil {
		return nil, err
	}

	return ledger.New(ledger.Options{
		Owner:          cfg.Ledger.Owner,
		MinFeeMicros:   cfg.Ledger.MinFeeMicros,
		TwoPhaseReveal: cfg.Ledger.TwoPhaseReveal,
		Weights: &ledger.Weights{
			Base:           cfg.Score.Base,
			GoalBonus:      cfg.Score.GoalBonus,
			SkillBonus:     cfg.Score.SkillBonus,
			EducationBonus: cfg.Score.EducationBonus,
		},
		Scheme: scheme,
		Sink:   sink,
	}), nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenService,
	assessmentCtrl *userctrl.AssessmentController,
	adminCtrl *adminctrl.AdminLedgerController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/token", assessmentCtrl.IssueToken)
		api.GET("/stats", assessmentCtrl.PublicStats)

		authed := api.Group("", auth.RequireCaller(tokens))
		{
			authed.POST("/assessments", assessmentCtrl.Submit)
			authed.POST("/assessments/:id/reveal", assessmentCtrl.RequestReveal)
			authed.GET("/assessments/:id/guidance", assessmentCtrl.ReadGuidance)
			authed.GET("/assessments/:id/advice", assessmentCtrl.Advice)
			authed.GET("/assessments/:id/status", assessmentCtrl.Status)
			authed.GET("/my/assessments", assessmentCtrl.MyAssessments)

			adminGroup := authed.Group("/admin")
			adminGroup.POST("/withdraw", adminCtrl.Withdraw)
			adminGroup.GET("/stats", adminCtrl.Stats)
			adminGroup.GET("/events", adminCtrl.Events)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Career ledger API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.AssessmentRecord{},
		&model.LedgerEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// RestoreLedger replays archived assessments into the in-memory core so a
// restart resumes with the same counter, index, reveal flags and fee balance.
func RestoreLedger(ldg *ledger.Ledger, assessmentRepo repository.AssessmentRepository, eventRepo repository.EventRepository) error {
	records, err := assessmentRepo.ListInOrder()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load archived assessments")
		return err
	}
	assessments := make([]ledger.Assessment, 0, len(records))
	for _, r := range records {
		assessments = append(assessments, service.AssessmentFromRecord(r))
	}
	withdrawn, err := eventRepo.SumWithdrawn()
	if err != nil {
		log.Error().Err(err).Msg("Failed to total journaled withdrawals")
		return err
	}
	if err := ldg.Restore(assessments, withdrawn); err != nil {
		log.Error().Err(err).Msg("Ledger replay failed")
		return err
	}
	log.Info().Int("records", len(assessments)).Int64("withdrawnMicros", withdrawn).
		Msg("Ledger restored from journal")
	return nil
}
