package database

import (
	"chronicle/pkg/internal/models"

	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Location{},
	&models.Category{},
	&models.Post{},
	&models.Comment{},
}

func RunMigration(source *gorm.DB) error {
	return source.AutoMigrate(AutoMaintainRange...)
}
