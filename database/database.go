package database

import (
	"fmt"

	"github.com/alysson-b/simulados-api/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the postgres connection used by every repository. The
// *gorm.DB is provided once through fx and injected everywhere it is needed.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
	)

	// TranslateError maps driver errors like unique-constraint violations onto
	// gorm.ErrDuplicatedKey, which the attempt-number allocation relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database connection established")
	return db, nil
}
