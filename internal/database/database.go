package database

import (
	"fmt"

	"github.com/LifeofNabin/study-guardian-backend/internal/config"
	logging "github.com/LifeofNabin/study-guardian-backend/internal/logging"
	"github.com/LifeofNabin/study-guardian-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.StudySession{},
		&models.Sample{},
		&models.Interaction{},
		&models.Highlight{},
		&models.Annotation{},
		&models.Routine{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The aggregation read path always scans one session's samples in time
	// order; cover it with a composite index.
	samplesIndex := `CREATE INDEX IF NOT EXISTS idx_samples_session_ts ON samples (session_id, "timestamp");`
	if err := DB.Exec(samplesIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on samples table", zap.Error(err))
	}

	interactionsIndex := `CREATE INDEX IF NOT EXISTS idx_interactions_session_type ON interactions (session_id, type);`
	if err := DB.Exec(interactionsIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on interactions table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
