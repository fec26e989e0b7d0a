package main

import (
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"registration/config"
	"registration/middleware"
	"registration/services/registration/delivery"
	"registration/services/registration/repository"
	"registration/services/registration/usecase"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using process environment")
	}

	cfg := config.Load()

	if err := config.ConfigureLogging(cfg); err != nil {
		logrus.Fatalf("Error configuring logging: %v", err)
	}
	log = config.GetLogrusInstance()

	startHTTP(cfg)
}

func startHTTP(cfg *config.Config) {
	log.Info("Starting HTTP")
	app := fiber.New(fiber.Config{
		AppName:     cfg.AppHeading,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.TokenAuth(cfg))

	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	timeout := 10 * time.Second
	studentUC := usecase.NewStudentUseCase(studentRepo, timeout)
	enrollmentUC := usecase.NewEnrollmentUseCase(enrollmentRepo, timeout)

	delivery.NewPageHandler(app, cfg)
	delivery.NewAuthHandler(app, cfg)

	api := app.Group("/api")
	delivery.NewStudentHandler(api, studentUC)
	delivery.NewEnrollmentHandler(api, enrollmentUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := app.Listen(cfg.ListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
