package router

import (
	"net/http"
	"time"

	"github.com/LifeofNabin/study-guardian-backend/internal/analytics"
	"github.com/LifeofNabin/study-guardian-backend/internal/config"
	"github.com/LifeofNabin/study-guardian-backend/internal/handlers"
	"github.com/LifeofNabin/study-guardian-backend/internal/services"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}
func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "too many requests, try again later"})
}

func Setup(log *zap.Logger, weights analytics.Weights) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("studysession", store))
	router.Use(UserLoaderMiddleware())

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers
	summaryService := services.NewSummaryService(log)
	authHandler := handlers.NewAuthHandler(log)
	userHandler := handlers.NewUserHandler(log)
	roomsHandler := handlers.NewRoomsHandler(log)
	sessionsHandler := handlers.NewSessionsHandler(log, weights, summaryService)
	metricsHandler := handlers.NewMetricsHandler(log, weights, sessionsHandler)
	analyticsHandler := handlers.NewAnalyticsHandler(log)
	chartsHandler := handlers.NewChartsHandler(log, sessionsHandler)
	highlightsHandler := handlers.NewHighlightsHandler(log, sessionsHandler)
	routinesHandler := handlers.NewRoutinesHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", limiter, authHandler.Register)
		auth.POST("/login", limiter, authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	authorized := api.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)

		profile := authorized.Group("/profile")
		{
			profile.PUT("/info", userHandler.UpdateInfo)
			profile.PUT("/password", userHandler.UpdatePassword)
			profile.PUT("/notifications", userHandler.UpdateNotifications)
			profile.DELETE("", userHandler.DeleteAccount)
		}

		rooms := authorized.Group("/rooms")
		{
			rooms.POST("", roomsHandler.Create)
			rooms.GET("", roomsHandler.List)
			rooms.GET("/:code", roomsHandler.Get)
			rooms.POST("/:code/join", roomsHandler.Join)
			rooms.DELETE("/:id", roomsHandler.Delete)
		}

		sessionRoutes := authorized.Group("/sessions")
		{
			sessionRoutes.POST("", sessionsHandler.Start)
			sessionRoutes.GET("", sessionsHandler.List)
			sessionRoutes.GET("/:id", sessionsHandler.Get)
			sessionRoutes.POST("/:id/end", sessionsHandler.End)
			sessionRoutes.DELETE("/:id", sessionsHandler.Delete)
			sessionRoutes.POST("/:id/interactions", sessionsHandler.AddInteraction)
			sessionRoutes.POST("/:id/highlights", highlightsHandler.Create)
			sessionRoutes.GET("/:id/highlights", highlightsHandler.ListBySession)
			sessionRoutes.POST("/:id/annotations", highlightsHandler.CreateAnnotation)
			sessionRoutes.GET("/:id/annotations", highlightsHandler.ListAnnotationsBySession)
		}

		metricRoutes := authorized.Group("/metrics")
		{
			metricRoutes.POST("", metricsHandler.Save)
			metricRoutes.POST("/batch", metricsHandler.SaveBatch)
			metricRoutes.GET("/session/:id", metricsHandler.ListBySession)
			metricRoutes.GET("/session/:id/summary", metricsHandler.Summary)
			metricRoutes.GET("/session/:id/trend", metricsHandler.Trend)
			metricRoutes.GET("/session/:id/anomalies", metricsHandler.Anomalies)
		}

		analyticsRoutes := authorized.Group("/analytics")
		{
			analyticsRoutes.GET("/overview", analyticsHandler.Overview)
			analyticsRoutes.GET("/productivity-score", analyticsHandler.ProductivityScore)
			analyticsRoutes.GET("/daily", analyticsHandler.Daily)
			analyticsRoutes.GET("/charts/engagement/:id", chartsHandler.EngagementTrend)
			analyticsRoutes.GET("/charts/daily-hours", chartsHandler.DailyHours)
		}

		highlightRoutes := authorized.Group("/highlights")
		{
			highlightRoutes.DELETE("/:id", highlightsHandler.Delete)
		}
		annotationRoutes := authorized.Group("/annotations")
		{
			annotationRoutes.DELETE("/:id", highlightsHandler.DeleteAnnotation)
		}

		routineRoutes := authorized.Group("/routines")
		{
			routineRoutes.POST("", routinesHandler.Create)
			routineRoutes.GET("", routinesHandler.List)
			routineRoutes.PUT("/:id", routinesHandler.Update)
			routineRoutes.DELETE("/:id", routinesHandler.Delete)
		}
	}

	return router
}
