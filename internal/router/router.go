package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/zacatour/backend/internal/handlers"
	"github.com/zacatour/backend/internal/middleware"
	"github.com/zacatour/backend/internal/models"
	"github.com/zacatour/backend/internal/places"
	"github.com/zacatour/backend/internal/repositories"
	"github.com/zacatour/backend/internal/services"
	"github.com/zacatour/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, rdb *redis.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Place{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	placeRepo := repositories.NewPostgresPlaceRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("zacatour"))
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Initialize Services ---
	// Events flow explicitly from each mutating service into the
	// fan-out; the fan-out is the only writer of notification rows.
	fanout := services.NewNotificationFanout(notificationRepo, userRepo, followRepo)
	followGraph := services.NewFollowGraph(followRepo, fanout)
	reactionStore := services.NewReactionStore(likeRepo, commentRepo, postRepo, fanout)
	feedRanker := services.NewFeedRanker(postRepo, followRepo)
	reviewPublisher := services.NewReviewPublisher(postRepo, placeRepo, likeRepo, commentRepo, notificationRepo, fanout)

	placeSearch := places.NewClient(cfg.PlacesAPIKey, cfg.PlacesRegion, rdb)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseAuthClient, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes ---
	api := e.Group("/api/v1")
	if cfg.AuthMode == "firebase" && firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient, userRepo))
		log.Println("Firebase authentication middleware applied to /api/v1 group.")
	} else {
		api.Use(middleware.JWTAuthMiddleware())
		log.Println("JWT authentication middleware applied to /api/v1 group.")
	}

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, followGraph)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(reviewPublisher, postRepo, userRepo)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feedRanker, reactionStore, userRepo)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followGraph, userRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(reactionStore)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(reactionStore)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Place routes
	placeHandler := handlers.NewPlaceHandler(placeRepo, placeSearch)
	placeHandler.RegisterPlaceRoutes(api)
	log.Println("Place routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(fanout, userRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
