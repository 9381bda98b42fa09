package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "Backend-StudentHub/docs"
	"Backend-StudentHub/src/config"
	"Backend-StudentHub/src/controllers"
	"Backend-StudentHub/src/database"
	"Backend-StudentHub/src/jobs"
	"Backend-StudentHub/src/routes"
	"Backend-StudentHub/src/seeder"
	"Backend-StudentHub/src/services/auth"
	"Backend-StudentHub/src/services/students"
	"Backend-StudentHub/src/services/uploads"
	"Backend-StudentHub/src/services/users"
	"Backend-StudentHub/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title StudentHub API
// @version 1.0
// @description Student management REST API with token-based authentication.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := seeder.EnsureDefaultAdmin(ctx, db); err != nil {
		log.Fatalf("Error seeding default admin: %v", err)
	}
	if cfg.SeedOnStart {
		if err := seeder.SeedSampleStudents(ctx, db); err != nil {
			log.Println("⚠️ Sample student seeding failed:", err)
		}
	}

	redisClient := database.InitRedis(cfg.RedisURI)
	asynqClient := database.InitAsynq(cfg.RedisURI)
	if redisClient != nil {
		go jobs.StartWorker(cfg.RedisURI, cfg.UploadDir)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	validate := validator.New()

	authSvc := auth.NewService(db)
	userSvc := users.NewService(db)
	studentSvc := students.NewService(db)
	uploadSvc := uploads.NewService(cfg.UploadDir, asynqClient)
	limiter := auth.NewRateLimiter(redisClient)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	routes.InitRoutes(app, routes.Deps{
		Tokens: tokens,
		Auth:   controllers.NewAuthController(authSvc, tokens, limiter, validate),
		Users:  controllers.NewUserController(userSvc, uploadSvc, validate),
		Admin:  controllers.NewAdminController(studentSvc, userSvc, uploadSvc, validate),
	})

	// shut down on SIGINT/SIGTERM, then tear the connections down
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		_ = app.Shutdown()
	}()

	log.Println("Server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}

	if err := db.Disconnect(ctx); err != nil {
		log.Println("⚠️ MongoDB disconnect failed:", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
}
