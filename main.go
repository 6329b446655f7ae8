package main

import (
	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/config"
	"github.com/LifeofNabin/study-guardian-backend/internal/database"
	logger "github.com/LifeofNabin/study-guardian-backend/internal/logging"
	"github.com/LifeofNabin/study-guardian-backend/internal/router"
	"github.com/LifeofNabin/study-guardian-backend/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Initialize Logger
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize Configuration
	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Database
	database.Init(log)

	// Load engagement score weights at startup
	weights, err := analytics.LoadWeights(config.Conf.Analytics.WeightsFile)
	if err != nil {
		log.Fatal("Failed to load engagement weights", zap.Error(err))
	}

	// Start the reminder/stale-session scheduler
	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService, weights)
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, weights)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
