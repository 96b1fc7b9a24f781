package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/devforum/devforum/internal/app/controllers"
	appMigrations "github.com/devforum/devforum/internal/app/migrations"
	"github.com/devforum/devforum/internal/app/models"
	appRepos "github.com/devforum/devforum/internal/app/repositories"
	appRoutes "github.com/devforum/devforum/internal/app/routes"
	appServices "github.com/devforum/devforum/internal/app/services"
	"github.com/devforum/devforum/internal/config"
	"github.com/devforum/devforum/internal/db"
	appMiddleware "github.com/devforum/devforum/internal/middleware"
	pkgAuth "github.com/devforum/devforum/internal/pkg/auth"
	"github.com/devforum/devforum/internal/pkg/filestorage"
	"github.com/devforum/devforum/internal/pkg/helpers"
	"github.com/devforum/devforum/internal/pkg/logger"
	"github.com/devforum/devforum/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	UserService       *appServices.UserService
	ProjectService    *appServices.ProjectService
	BlogService       *appServices.BlogService
	QuestionService   *appServices.QuestionService
	EventService      *appServices.EventService
	DiscussionService *appServices.DiscussionService
	SocialService     *appServices.SocialService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ProjectController    *appControllers.ProjectController
	BlogController       *appControllers.BlogController
	QuestionController   *appControllers.QuestionController
	EventController      *appControllers.EventController
	DiscussionController *appControllers.DiscussionController
	SocialController     *appControllers.SocialController
	UploadController     *appControllers.UploadController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), database, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage, lgr)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository, deps.Repos.SocialRepository, deps.FileStorage, lgr)
	deps.BlogService = appServices.NewBlogService(deps.Repos.BlogRepository, deps.Repos.SocialRepository, deps.FileStorage, lgr)
	deps.QuestionService = appServices.NewQuestionService(deps.Repos.QuestionRepository, deps.Repos.SocialRepository, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.Repos.SocialRepository, deps.FileStorage, lgr)
	deps.DiscussionService = appServices.NewDiscussionService(deps.Repos.DiscussionRepository, deps.Repos.SocialRepository, lgr)

	// The social service verifies resource existence through the owning
	// repository of each kind.
	checkers := map[models.ResourceKind]appServices.ResourceChecker{
		models.KindProject: func(ctx context.Context, id int64) error {
			_, err := deps.Repos.ProjectRepository.GetByID(ctx, id)
			return err
		},
		models.KindBlog: func(ctx context.Context, id int64) error {
			_, err := deps.Repos.BlogRepository.GetByID(ctx, id)
			return err
		},
		models.KindQuestion: func(ctx context.Context, id int64) error {
			_, err := deps.Repos.QuestionRepository.GetByID(ctx, id)
			return err
		},
		models.KindEvent: func(ctx context.Context, id int64) error {
			_, err := deps.Repos.EventRepository.GetByID(ctx, id)
			return err
		},
		models.KindDiscussion: func(ctx context.Context, id int64) error {
			_, err := deps.Repos.DiscussionRepository.GetByID(ctx, id)
			return err
		},
	}
	deps.SocialService = appServices.NewSocialService(deps.Repos.SocialRepository, checkers, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService, lgr)
	deps.BlogController = appControllers.NewBlogController(deps.BlogService, lgr)
	deps.QuestionController = appControllers.NewQuestionController(deps.QuestionService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.DiscussionController = appControllers.NewDiscussionController(deps.DiscussionService, lgr)
	deps.SocialController = appControllers.NewSocialController(deps.SocialService, lgr)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	if err := os.MkdirAll(cfg.Server.StoragePath, os.ModePerm); err != nil {
		lgr.Error().Err(err).Str("path", cfg.Server.StoragePath).Msg("Failed to create uploads directory")
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ProjectController,
		deps.BlogController,
		deps.QuestionController,
		deps.EventController,
		deps.DiscussionController,
		deps.SocialController,
		deps.UploadController,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
