package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/IkkkaM/PersonManagement/internal/application"
	"github.com/IkkkaM/PersonManagement/internal/config"
	handlers "github.com/IkkkaM/PersonManagement/internal/interfaces/http"
	"github.com/IkkkaM/PersonManagement/internal/localization"
	"github.com/IkkkaM/PersonManagement/internal/logging"
	services "github.com/IkkkaM/PersonManagement/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := logging.New(logging.Config{ServiceName: "person-directory", Console: true, Output: os.Stderr})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		ServiceName: "person-directory",
		Console:     true,
		Output:      os.Stderr,
	})

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	loc := localization.New()

	var imageStorage *services.ImageStorage
	if cfg.S3BucketName != "" {
		imageStorage, err = services.NewImageStorage(context.Background(), cfg.AWSRegion, cfg.S3BucketName, cfg.ImageBaseURL, cfg.AllowedImageExt)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize image storage")
		}
	} else {
		log.Warn().Msg("S3 bucket not configured, image endpoints disabled")
	}

	personService := application.NewPersonService(db, log)
	cityService := application.NewCityService(db, log)

	personHandler := handlers.NewPersonHandler(personService, imageStorage, loc, cfg.MaxImageSizeMB, log)
	cityHandler := handlers.NewCityHandler(cityService, loc)
	reportHandler := handlers.NewReportHandler(personService, loc)
	var filesHandler *handlers.FilesHandler
	if imageStorage != nil {
		filesHandler = handlers.NewFilesHandler(imageStorage, loc)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: (cfg.MaxImageSizeMB + 1) * 1024 * 1024,
	})

	app.Use(handlers.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Accept-Language,Authorization",
	}))

	handlers.RegisterRoutes(app, personHandler, cityHandler, reportHandler, filesHandler)

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
