package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/newsdeskhq/newsdesk-backend/internal/adapter/handler"
	"github.com/newsdeskhq/newsdesk-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine            *gin.Engine
	homepageHandler   *handler.HomepageHandler
	articleHandler    *handler.ArticleHandler
	categoryHandler   *handler.CategoryHandler
	commentHandler    *handler.CommentHandler
	newsletterHandler *handler.NewsletterHandler
	contactHandler    *handler.ContactHandler
	settingsHandler   *handler.SettingsHandler
	authHandler       *handler.AuthHandler
	uploadHandler     *handler.UploadHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimiter       *middleware.RateLimiter
	logger            *zap.Logger
}

type RouterConfig struct {
	HomepageHandler   *handler.HomepageHandler
	ArticleHandler    *handler.ArticleHandler
	CategoryHandler   *handler.CategoryHandler
	CommentHandler    *handler.CommentHandler
	NewsletterHandler *handler.NewsletterHandler
	ContactHandler    *handler.ContactHandler
	SettingsHandler   *handler.SettingsHandler
	AuthHandler       *handler.AuthHandler
	UploadHandler     *handler.UploadHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
	Logger            *zap.Logger
	Environment       string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:            engine,
		homepageHandler:   cfg.HomepageHandler,
		articleHandler:    cfg.ArticleHandler,
		categoryHandler:   cfg.CategoryHandler,
		commentHandler:    cfg.CommentHandler,
		newsletterHandler: cfg.NewsletterHandler,
		contactHandler:    cfg.ContactHandler,
		settingsHandler:   cfg.SettingsHandler,
		authHandler:       cfg.AuthHandler,
		uploadHandler:     cfg.UploadHandler,
		authMiddleware:    cfg.AuthMiddleware,
		rateLimiter:       cfg.RateLimiter,
		logger:            cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		api.GET("/homepage", r.homepageHandler.Homepage)
		api.GET("/context", r.homepageHandler.GlobalContext)

		articles := api.Group("/articles")
		{
			articles.GET("", r.articleHandler.List)
			articles.GET("/trending", r.articleHandler.Trending)
			articles.GET("/:slug", r.articleHandler.GetBySlug)
			articles.POST("/:id/comments", r.commentHandler.Create)

			articles.POST("", r.authMiddleware.RequireAuth(), r.articleHandler.Create)
			articles.PUT("/:id", r.authMiddleware.RequireAuth(), r.articleHandler.Update)
			articles.POST("/:id/publish", r.authMiddleware.RequireAuth(), r.articleHandler.Publish)
			articles.POST("/:id/image", r.authMiddleware.RequireAuth(), r.uploadHandler.SetFeaturedImage)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", r.categoryHandler.List)
			categories.GET("/:slug/articles", r.articleHandler.ListByCategory)
			categories.POST("", r.authMiddleware.RequireAuth(), r.categoryHandler.Create)
		}

		api.GET("/tags/:slug/articles", r.articleHandler.ListByTag)
		api.GET("/authors/:id", r.articleHandler.GetAuthorPage)

		comments := api.Group("/comments")
		comments.Use(r.authMiddleware.RequireAuth())
		{
			comments.POST("/:id/approve", r.commentHandler.Approve)
		}

		newsletter := api.Group("/newsletter")
		{
			newsletter.POST("/subscribe", r.newsletterHandler.Subscribe)
			newsletter.POST("/unsubscribe", r.newsletterHandler.Unsubscribe)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", r.contactHandler.Submit)
			contact.GET("", r.authMiddleware.RequireAuth(), r.contactHandler.List)
			contact.POST("/:id/read", r.authMiddleware.RequireAuth(), r.contactHandler.MarkRead)
		}

		api.GET("/settings", r.settingsHandler.Get)
		api.PUT("/settings", r.authMiddleware.RequireAuth(), r.settingsHandler.Update)

		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.PUT("/me", r.authMiddleware.RequireAuth(), r.authHandler.UpdateProfile)
			auth.POST("/me/image", r.authMiddleware.RequireAuth(), r.uploadHandler.SetProfileImage)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
