package routes

import (
	"net/http"

	"blog-api/config"
	"blog-api/handlers"
	"blog-api/helper"
	"blog-api/middleware"
	"blog-api/repositories"
	"blog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and returns the
// HTTP engine serving the API.
func NewRouter(db *gorm.DB, jwtCfg config.JWTConfig, log *logrus.Logger) (*gin.Engine, error) {
	httpHelper, err := helper.NewHTTPHelper(log)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	postRepo := repositories.NewPostRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(jwtCfg.Secret, jwtCfg.ExpiresIn)
	authService := services.NewAuthService(userRepo, tokenService, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	tagService := services.NewTagService(tagRepo, log)
	postService := services.NewPostService(postRepo, categoryRepo, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	categoryHandler := handlers.NewCategoryHandler(categoryService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	postHandler := handlers.NewPostHandler(postService, httpHelper)

	router := gin.New()
	router.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(httpHelper),
		middleware.CORS(),
		middleware.ErrorHandler(httpHelper),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	requireAuth := middleware.AuthMiddleware(tokenService, authService, httpHelper)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		categories := v1.Group("/categories", requireAuth)
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
		}

		tags := v1.Group("/tags", requireAuth)
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.GetTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.PUT("/:id", tagHandler.UpdateTag)
		}

		posts := v1.Group("/posts", requireAuth)
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.GetPosts)
			posts.GET("/:id", postHandler.GetPost)
		}
	}

	router.NoRoute(httpHelper.SendNotFound)

	return router, nil
}
