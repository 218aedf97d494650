package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler"
	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/repository/postgres"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/auth"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/cache"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/config"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/database"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/imageproc"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/middleware"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/observability"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/server"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/storage"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/article"
	authUC "github.com/newsdeskhq/newsdesk-backend/internal/usecase/auth"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/category"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/comment"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/contact"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/homepage"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/newsletter"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/settings"
	"github.com/newsdeskhq/newsdesk-backend/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	articleRepo := postgres.NewArticleRepo(pool)
	categoryRepo := postgres.NewCategoryRepo(pool)
	tagRepo := postgres.NewTagRepo(pool)
	authorRepo := postgres.NewAuthorRepo(pool)
	commentRepo := postgres.NewCommentRepo(pool)
	newsletterRepo := postgres.NewNewsletterRepo(pool)
	contactRepo := postgres.NewContactMessageRepo(pool)
	settingsRepo := postgres.NewSettingsRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)
	cacheStore := cache.NewRedisStore(redisClient)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}
	imageProcessor := imageproc.NewProcessor()

	// Use cases
	articleSvc := article.NewService(articleRepo, categoryRepo, tagRepo, commentRepo, authorRepo)
	homepageSvc := homepage.NewService(articleRepo, categoryRepo, tagRepo, cacheStore, cfg.Cache.HomepageTTL, cfg.Cache.GlobalContextTTL)
	categorySvc := category.NewService(categoryRepo)
	commentSvc := comment.NewService(commentRepo, articleRepo)
	newsletterSvc := newsletter.NewService(newsletterRepo)
	contactSvc := contact.NewService(contactRepo)
	settingsSvc := settings.NewService(settingsRepo)
	authSvc := authUC.NewService(authorRepo, jwtSvc, passwordHasher)
	uploadSvc := upload.NewService(articleRepo, authorRepo, imageProcessor, s3Storage, logger)

	// Handlers
	homepageHandler := handler.NewHomepageHandler(homepageSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	categoryHandler := handler.NewCategoryHandler(categorySvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	newsletterHandler := handler.NewNewsletterHandler(newsletterSvc)
	contactHandler := handler.NewContactHandler(contactSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		HomepageHandler:   homepageHandler,
		ArticleHandler:    articleHandler,
		CategoryHandler:   categoryHandler,
		CommentHandler:    commentHandler,
		NewsletterHandler: newsletterHandler,
		ContactHandler:    contactHandler,
		SettingsHandler:   settingsHandler,
		AuthHandler:       authHandler,
		UploadHandler:     uploadHandler,
		AuthMiddleware:    authMiddleware,
		RateLimiter:       rateLimiter,
		Logger:            logger,
		Environment:       cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
