package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/cppla/community/config"
	"github.com/cppla/community/controllers"
	"github.com/cppla/community/middleware"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/services"
	"github.com/cppla/community/utils"
)

const serviceName = "community-api"

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, db *gorm.DB, provider services.IdentityProvider) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidators()

	r := gin.New()
	// Access log goes to its own rolling file when GinPath is set
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, true))
	} else {
		utils.Sugar.Warnf("gin access log disabled: %v", err)
		r.Use(utils.RecoveryWithZap(utils.Logger, true))
	}
	r.Use(otelgin.Middleware(serviceName))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "WWW-Authenticate"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	repos := repository.NewRepositories(db)
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL())
	authService := services.NewAuthService(provider, repos.User, tokens, cfg.TokenTTL())
	authRequired := middleware.AuthRequired(tokens, repos.User)

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(repos.User)
	categoryController := controllers.NewCategoryController(repos.Category)
	postController := controllers.NewPostController(repos)
	commentController := controllers.NewCommentController(repos.Post, repos.Comment)
	imageController := controllers.NewPostImageController(repos.Post, repos.PostImage)
	likeController := controllers.NewLikeController(repos.Post, repos.Like)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.GET("/kakao/url", authController.KakaoURL)
	authGroup.POST("/kakao", authController.KakaoLogin)
	authGroup.GET("/kakao/callback", authController.KakaoCallback)
	authGroup.POST("/logout", authRequired, authController.Logout)

	users := api.Group("/users")
	users.GET("/me", authRequired, userController.Me)
	users.POST("", userController.CreateUser)
	users.GET("/:id", userController.GetUser)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", categoryController.ListCategories)
	categories.POST("", categoryController.CreateCategory)
	categories.GET("/:id", categoryController.GetCategory)
	categories.PUT("/:id", categoryController.UpdateCategory)
	categories.DELETE("/:id", categoryController.DeleteCategory)

	posts := api.Group("/posts")
	posts.GET("", postController.ListPosts)
	posts.POST("", authRequired, postController.CreatePost)
	posts.GET("/:id", postController.GetPost)
	posts.PUT("/:id", postController.UpdatePost)
	posts.DELETE("/:id", postController.DeletePost)
	posts.GET("/:id/comments", commentController.ListComments)
	posts.POST("/:id/comments", authRequired, commentController.CreateComment)
	posts.DELETE("/:id/comments/:comment_id", authRequired, commentController.DeletePostComment)
	posts.GET("/:id/images", imageController.ListImages)
	posts.POST("/:id/images", imageController.AddImage)
	posts.POST("/:id/like", authRequired, likeController.ToggleLike)
	posts.GET("/:id/likes", likeController.CountLikes)

	comments := api.Group("/comments")
	comments.GET("/:id", commentController.GetComment)
	comments.PUT("/:id", authRequired, commentController.UpdateComment)
	comments.DELETE("/:id", authRequired, commentController.DeleteComment)

	images := api.Group("/images")
	images.PUT("/:id", imageController.UpdateImage)
	images.DELETE("/:id", imageController.DeleteImage)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
