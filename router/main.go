package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shloksagar/backend/database"
	"github.com/shloksagar/backend/handlers"
	ads_handlers "github.com/shloksagar/backend/handlers/ads"
	analytics_handlers "github.com/shloksagar/backend/handlers/analytics"
	auth_handlers "github.com/shloksagar/backend/handlers/auth"
	category_handlers "github.com/shloksagar/backend/handlers/category"
	contact_handlers "github.com/shloksagar/backend/handlers/contact"
	content_handlers "github.com/shloksagar/backend/handlers/content"
	daily_handlers "github.com/shloksagar/backend/handlers/daily"
	festival_handlers "github.com/shloksagar/backend/handlers/festival"
	gita_handlers "github.com/shloksagar/backend/handlers/gita"
	media_handlers "github.com/shloksagar/backend/handlers/media"
	sitemap_handlers "github.com/shloksagar/backend/handlers/sitemap"
	"github.com/shloksagar/backend/services"
	"github.com/shloksagar/backend/utils"
	"github.com/shloksagar/backend/utils/auth"
	"github.com/shloksagar/backend/utils/cache"
	"github.com/shloksagar/backend/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, aggregates *database.PostgreSQLStore) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "shloksagar-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour, // Access token expires in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection and content caching
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and content caching will be disabled.", err)
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize services
	contentService := services.NewContentService(db, redisCache)
	analyticsService := services.NewAnalyticsService(db, aggregates)
	adService := services.NewAdService(db)
	emailService := services.NewEmailService()

	mediaService, err := services.NewMediaService(db)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, emailService, bruteForceProtection)
	categoryHandler := category_handlers.NewCategoryHandler(contentService)
	contentHandler := content_handlers.NewContentHandler(contentService)
	gitaHandler := gita_handlers.NewGitaHandler(contentService)
	dailyHandler := daily_handlers.NewDailyHandler(contentService)
	mediaHandler := media_handlers.NewMediaHandler(mediaService, analyticsService)
	festivalHandler := festival_handlers.NewFestivalHandler(contentService)
	adHandler := ads_handlers.NewAdHandler(adService)
	analyticsHandler := analytics_handlers.NewAnalyticsHandler(db, analyticsService)
	contactHandler := contact_handlers.NewContactHandler(db)
	sitemapHandler := sitemap_handlers.NewSitemapHandler(contentService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// Sitemap (public, outside the API group)
	app.Get("/sitemap.xml", sitemapHandler.GetSitemap)

	// Public API group. Every request gets an effective session id so the
	// analytics endpoints can attribute events.
	public := app.Group("/api/v1/public", middleware.SessionID())

	// Auth routes
	authGroup := public.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/send-otp", bruteForceProtection.CheckLockout(), authHandler.SendOTP)
		authGroup.Post("/verify-otp", bruteForceProtection.CheckLockout(), authHandler.VerifyOTP)
	} else {
		authGroup.Post("/send-otp", authHandler.SendOTP)
		authGroup.Post("/verify-otp", authHandler.VerifyOTP)
	}
	authGroup.Post("/google", authHandler.GoogleSignIn)

	// Categories
	categories := public.Group("/categories")
	categories.Get("/", categoryHandler.ListCategories)
	categories.Get("/:slug", categoryHandler.GetCategory)

	// Devotional content. Search is registered before the :type routes so
	// "search" is not parsed as a content type.
	contentGroup := public.Group("/content")
	contentGroup.Get("/search", contentHandler.SearchContent)
	contentGroup.Get("/:type", contentHandler.ListContent)
	contentGroup.Get("/:type/:slug", contentHandler.GetContent)

	// Bhagavad Gita
	gita := public.Group("/gita")
	gita.Get("/shloks", gitaHandler.ListShloks)
	gita.Get("/shloks/:slug", gitaHandler.GetShlokBySlug)
	gita.Get("/chapters/:chapter/verses/:verse", gitaHandler.GetShlokByChapterVerse)

	// Daily quotes and gita sandesh
	public.Get("/quotes/today", dailyHandler.GetTodayQuote)
	public.Get("/quotes", dailyHandler.ListQuotes)
	public.Get("/gita-sandesh/today", dailyHandler.GetTodayGitaSandesh)
	public.Get("/gita-sandesh", dailyHandler.ListGitaSandesh)

	// Wallpapers and videos. Downloads work signed out; a valid token
	// attributes the download to the account.
	wallpapers := public.Group("/wallpapers")
	wallpapers.Get("/", mediaHandler.ListWallpapers)
	wallpapers.Get("/:id", mediaHandler.GetWallpaper)
	wallpapers.Post("/:id/download", authMiddleware.Optional(), mediaHandler.DownloadWallpaper)

	videos := public.Group("/videos")
	videos.Get("/", mediaHandler.ListVideos)
	videos.Get("/:id", mediaHandler.GetVideo)
	videos.Post("/:id/download", authMiddleware.Optional(), mediaHandler.DownloadVideo)

	// Festivals
	festivals := public.Group("/festivals")
	festivals.Get("/", festivalHandler.ListFestivals)
	festivals.Get("/:id", festivalHandler.GetFestival)

	// Ads
	adsGroup := public.Group("/ads")
	adsGroup.Get("/get", adHandler.GetAd)
	adsGroup.Post("/impression", adHandler.RecordImpression)
	adsGroup.Post("/click", adHandler.RecordClick)

	// Analytics ingestion
	analytics := public.Group("/analytics")
	analytics.Post("/visit", analyticsHandler.TrackVisit)
	analytics.Post("/pageview", analyticsHandler.TrackPageView)
	analytics.Post("/category", analyticsHandler.TrackCategoryInterest)
	analytics.Post("/content-type", analyticsHandler.TrackContentTypeInterest)
	analytics.Post("/language", analyticsHandler.TrackLanguagePreference)
	analytics.Post("/download", authMiddleware.Optional(), analyticsHandler.TrackDownload)

	// Contact form
	public.Post("/contact", contactHandler.Submit)

	// Admin API group (all routes require an admin token)
	admin := app.Group("/api/v1/admin", authMiddleware.RequireAdmin())
	admin.Get("/analytics/dashboard", analyticsHandler.GetDashboard)
	admin.Get("/analytics/downloads", analyticsHandler.GetDownloadStats)
	admin.Get("/contact", contactHandler.ListSubmissions)
	admin.Patch("/contact/:id/read", contactHandler.MarkRead)
}
