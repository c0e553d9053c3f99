package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/handlers"
	appMiddleware "talentdesk_echo/internal/middleware"
	"talentdesk_echo/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	authClient, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	var db *gorm.DB
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" {
		var err error
		db, err = services.InitDB(databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		// Run auto-migration
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	} else {
		log.Println("Warning: DATABASE_URL not set, database features disabled")
	}

	// Initialize Redis (settings storage, flash messages, section cache warming)
	var cache *services.RedisCache
	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis initialization failed: %v", err)
		}
	} else {
		log.Println("Warning: REDIS_URL not set, settings and flash messages disabled")
	}

	// Terminology and section wiring
	vocab := alias.NewVocabulary(os.Getenv("BRAND_MODE"))
	loaders := handlers.BuildLoaderRegistry(db, cache)
	notifier := services.NewNotifier(cache)
	chrome := handlers.NewChrome(vocab, loaders, notifier, os.Getenv("SECTION_HINT"))

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Static file serving
	e.Static("/static", "web/static")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authClient)
	dashboardHandler := handlers.NewDashboardHandler(chrome, db, cache)
	uploadHandler := handlers.NewUploadHandler(chrome, db)
	candidateHandler := handlers.NewCandidateHandler(chrome, db)
	analyticsHandler := handlers.NewAnalyticsHandler(chrome, db, cache)
	jobPostingHandler := handlers.NewJobPostingHandler(chrome, db)
	positionsHandler := handlers.NewPositionsHandler(jobPostingHandler)
	settingsHandler := handlers.NewSettingsHandler(chrome, db, services.NewSettingsStore(cache), authClient)
	userHandler := handlers.NewUserHandler(chrome, db)
	navDebugHandler := handlers.NewNavDebugHandler(vocab, os.Getenv("SECTION_HINT"))

	// Public routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Debug routes, only reachable from the local machine
	debug := e.Group("/navdebug")
	debug.Use(appMiddleware.LocalOnly())
	debug.GET("/sections", navDebugHandler.ListSections)
	debug.GET("/current", navDebugHandler.CurrentSection)
	debug.POST("/activate/:id", navDebugHandler.Activate)
	debug.POST("/fallback", navDebugHandler.Fallback)

	// Protected routes
	protected := e.Group("")
	protected.Use(appMiddleware.RequireAuth(authClient))
	protected.GET("/dashboard", dashboardHandler.Dashboard)

	// Upload routes
	protected.GET("/upload", uploadHandler.UploadPage)
	protected.POST("/upload", uploadHandler.HandleUpload)

	// Candidate routes
	protected.GET("/candidates", candidateHandler.ListCandidates)
	protected.POST("/candidates/:id/stage", candidateHandler.UpdateStage)
	protected.POST("/candidates/:id/delete", candidateHandler.DeleteCandidate)

	// Analytics routes
	protected.GET("/analytics", analyticsHandler.Analytics)

	// Job posting routes
	protected.GET("/job-postings", jobPostingHandler.ListPostings)
	protected.GET("/job-postings/create", jobPostingHandler.CreatePostingPage)
	protected.POST("/job-postings", jobPostingHandler.StorePosting)
	protected.GET("/job-postings/:id/edit", jobPostingHandler.EditPostingPage)
	protected.POST("/job-postings/:id/update", jobPostingHandler.UpdatePosting)
	protected.POST("/job-postings/:id/close", jobPostingHandler.ClosePosting)

	// Positions alias routes, same handlers under the renamed path
	protected.GET("/positions", positionsHandler.ListPositions)
	protected.GET("/positions/create", positionsHandler.CreatePositionPage)
	protected.POST("/positions", positionsHandler.StorePosition)
	protected.GET("/positions/:id/edit", positionsHandler.EditPositionPage)
	protected.POST("/positions/:id/update", positionsHandler.UpdatePosition)
	protected.POST("/positions/:id/close", positionsHandler.ClosePosition)

	// Settings routes
	protected.GET("/settings", settingsHandler.SettingsPage)
	protected.POST("/settings", settingsHandler.SaveSettings)
	protected.GET("/settings/export", settingsHandler.ExportData)
	protected.POST("/settings/delete-account", settingsHandler.DeleteAccount)

	// User management routes
	protected.GET("/user-management", userHandler.ListUsers)
	protected.GET("/user-management/create", userHandler.CreateUserPage)
	protected.POST("/user-management", userHandler.StoreUser)
	protected.GET("/user-management/:id/edit", userHandler.EditUserPage)
	protected.POST("/user-management/:id/update", userHandler.UpdateUser)
	protected.POST("/user-management/:id/delete", userHandler.DeleteUser)

	// Redirect root to dashboard (or login if not authenticated)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
