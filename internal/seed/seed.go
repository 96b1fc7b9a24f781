package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devforum/devforum/internal/app/models"
	appRepos "github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/config"
	"github.com/devforum/devforum/internal/db"
	"github.com/devforum/devforum/internal/pkg/auth"
)

// CreateDefaultAdmin creates the configured admin account when it does
// not exist yet. Runs after migrations on every startup.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(database)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:      "Administrator",
		Email:     cfg.Admin.Email,
		Password:  hashedPassword,
		RoleType:  models.RoleAdmin,
		Skills:    []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return nil
}
