package postgres

import (
	"github.com/mkarlsson/farmtrack/internal/domain"
	"github.com/mkarlsson/farmtrack/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate emails are detected from the unique constraint, not
		// a prior read; translation turns the violation into
		// gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Animal{},
		&domain.Individual{},
		&domain.Note{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(db),
		Animal:     NewAnimalRepository(db),
		Individual: NewIndividualRepository(db),
		Note:       NewNoteRepository(db),
	}
}
