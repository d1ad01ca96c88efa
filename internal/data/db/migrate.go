package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/connective-drills/internal/domain/drills"
)

func (s *Service) AutoMigrateAll() error {
	if err := AutoMigrateAll(s.db); err != nil {
		return err
	}
	s.log.Info("Schema migrated")
	return nil
}

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&drills.Challenge{},
		&drills.Attempt{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
