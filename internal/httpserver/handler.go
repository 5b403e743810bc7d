package httpserver

import (
	classifierhttp "engagement-srv/internal/classifier/delivery/http"
	classifierusecase "engagement-srv/internal/classifier/usecase"
	"engagement-srv/internal/middleware"
	scoringhttp "engagement-srv/internal/scoring/delivery/http"
	scoringproducer "engagement-srv/internal/scoring/delivery/kafka/producer"
	scoringpostgre "engagement-srv/internal/scoring/repository/postgre"
	scoringusecase "engagement-srv/internal/scoring/usecase"
	strategyhttp "engagement-srv/internal/strategy/delivery/http"
	strategyredis "engagement-srv/internal/strategy/repository/redis"
	strategyusecase "engagement-srv/internal/strategy/usecase"
	trendhttp "engagement-srv/internal/trend/delivery/http"
	trendredis "engagement-srv/internal/trend/repository/redis"
	trendusecase "engagement-srv/internal/trend/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	scoringRepo := scoringpostgre.New(srv.postgresDB, srv.l)
	strategyRepo := strategyredis.New(srv.redisClient, srv.l)
	trendRepo := trendredis.New(srv.redisClient, srv.l)

	// Initialize the score event producer
	scoreProducer := scoringproducer.New(srv.l, srv.kafkaProducer)

	// Initialize usecases
	scoringUC := scoringusecase.New(scoringRepo, scoreProducer, srv.l)
	strategyUC := strategyusecase.New(strategyRepo, srv.encrypter, srv.l)
	classifierUC := classifierusecase.New(srv.l)
	trendUC := trendusecase.New(srv.claudeClient, trendRepo, srv.l)

	// Initialize HTTP handlers
	scoringHandler := scoringhttp.New(srv.l, scoringUC, srv.discord)
	strategyHandler := strategyhttp.New(srv.l, strategyUC, srv.discord)
	classifierHandler := classifierhttp.New(srv.l, classifierUC, srv.discord)
	trendHandler := trendhttp.New(srv.l, trendUC, srv.discord)

	// Map routes (handlers group themselves under /api/v1)
	root := srv.gin.Group("")
	scoringHandler.RegisterRoutes(root, mw)
	strategyHandler.RegisterRoutes(root, mw)
	classifierHandler.RegisterRoutes(root, mw)
	trendHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
