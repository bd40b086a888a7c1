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
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/alysson-b/simulados-api/config"
	"github.com/alysson-b/simulados-api/database"
	_ "github.com/alysson-b/simulados-api/docs" // Swagger docs - auto-generated
	"github.com/alysson-b/simulados-api/internal/controller"
	"github.com/alysson-b/simulados-api/internal/logger"
	"github.com/alysson-b/simulados-api/internal/middleware"
	"github.com/alysson-b/simulados-api/internal/model"
	"github.com/alysson-b/simulados-api/internal/notify"
	"github.com/alysson-b/simulados-api/internal/repository"
	"github.com/alysson-b/simulados-api/internal/service"
	"github.com/alysson-b/simulados-api/pkg/monitoring"
)

// @title Simulados API
// @version 1.0
// @description Quiz platform backend: question banks, modules, tests (simulados), attempts, scoring and resumable progress.
// @host localhost:3000
// @BasePath /
// @schemes http https
func main() {
	logger.Init()
	monitoring.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			notify.NewHub,
			func(h *notify.Hub) service.TestNotifier { return h },
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewModuleRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewProgressRepository,
			repository.NewHistoryRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewTestService,
			service.NewQuestionService,
			service.NewModuleService,
			service.NewAttemptService,
			service.NewProgressService,
			service.NewUserService,
		),

		fx.Provide(
			controller.NewSimuladoController,
			controller.NewQuestionController,
			controller.NewModuleController,
			controller.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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
	r.Use(monitoring.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "user-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	hub *notify.Hub,
	simuladoCtrl *controller.SimuladoController,
	questionCtrl *controller.QuestionController,
	moduleCtrl *controller.ModuleController,
	userCtrl *controller.UserController,
) {
	router.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	keyed := router.Group("/", middleware.APIKey(cfg.APIKey))

	simulados := keyed.Group("/simulados")
	{
		simulados.GET("", simuladoCtrl.ListTests)
		simulados.POST("", simuladoCtrl.CreateTest)
		simulados.PUT("/:testId", simuladoCtrl.UpdateTest)
		simulados.DELETE("/:testId", simuladoCtrl.DeleteTest)
		simulados.GET("/:testId/questoes", simuladoCtrl.ListTestQuestions)
		simulados.POST("/:testId/questoes", simuladoCtrl.AddRandomQuestions)
		simulados.POST("/:testId/questoes/lote", simuladoCtrl.AddQuestions)
		simulados.GET("/:testId/detalhes", simuladoCtrl.GetTestDetails)
		simulados.GET("/:testId/historico", simuladoCtrl.GetTestHistory)
		simulados.POST("/:testId/iniciar", simuladoCtrl.StartAttempt)
		simulados.POST("/:testId/responder", simuladoCtrl.RecordAnswer)
		simulados.POST("/:testId/finalizar", simuladoCtrl.FinalizeAttempt)
		simulados.GET("/:testId/progresso", simuladoCtrl.LoadProgress)
		simulados.POST("/:testId/progresso", simuladoCtrl.SaveProgress)
		simulados.PATCH("/:testId/progresso", simuladoCtrl.UpdateProgress)
	}

	questoes := keyed.Group("/questoes")
	{
		questoes.GET("", questionCtrl.ListAllQuestions)
		questoes.POST("", questionCtrl.CreateQuestion)
		questoes.GET("/:id", questionCtrl.GetQuestion)
		questoes.GET("/modulo/:idModulo", questionCtrl.ListQuestionsByModule)
	}

	keyed.GET("/modulos", moduleCtrl.SearchModules)

	usuarios := keyed.Group("/usuarios")
	{
		usuarios.GET("/desempenho", userCtrl.GetPerformance)
		usuarios.GET("/historico", userCtrl.GetHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Simulados API server starting on port %s", cfg.Server.Port)
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
		&model.User{},
		&model.Module{},
		&model.Question{},
		&model.QuestionModule{},
		&model.Test{},
		&model.TestQuestion{},
		&model.Attempt{},
		&model.Answer{},
		&model.Progress{},
		&model.History{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
