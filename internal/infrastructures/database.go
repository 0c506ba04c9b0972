package infrastructures

import (
	"github.com/safatanc/course-library/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(config *AppConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(config.DATABASE_URL), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if config.AUTO_MIGRATE {
		if err := db.AutoMigrate(&models.Author{}, &models.Course{}); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
		logrus.Info("database schema migrated")
	}

	return db
}
