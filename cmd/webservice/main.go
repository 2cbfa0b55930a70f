package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/luminastore/catalog-service/config"
	"github.com/luminastore/catalog-service/internal/controller"
	circuitbreaker "github.com/luminastore/catalog-service/internal/infrastructure/circuit-breaker"
	"github.com/luminastore/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/luminastore/catalog-service/internal/infrastructure/media"
	"github.com/luminastore/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/luminastore/catalog-service/internal/infrastructure/tracing"
	localmiddleware "github.com/luminastore/catalog-service/internal/middleware"
	"github.com/luminastore/catalog-service/internal/repository"
	"github.com/luminastore/catalog-service/internal/service"
	"github.com/luminastore/catalog-service/pkg/response"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(config)

	cb := circuitbreaker.CreateCircuitBreaker("cloudinary")
	cloudinaryClient, err := media.CreateCloudinaryClient(config, cb)
	if err != nil {
		panic(err)
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("catalog-service")

	e := echo.New()
	g := e.Group("/api/v1")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	isLoggedIn := localmiddleware.Auth(config.JWTSecret)

	repo := repository.CreateNewMongoDBRepository(db)
	resolver := service.CreateMediaResolver(cloudinaryClient)

	productSvc := service.CreateProductService(repo, resolver, *config, kafkaProducer)
	authSvc := service.CreateAuthService(*config)
	mediaSvc := service.CreateMediaService(cloudinaryClient, *config)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateAuthController(g, authSvc, isLoggedIn)
	controller.CreateMediaController(g, mediaSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
