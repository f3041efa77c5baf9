package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webcontacts/contacts-api/internal/adapters/transport/http/middleware"
	authsvc "github.com/webcontacts/contacts-api/internal/auth/service"
	"github.com/webcontacts/contacts-api/internal/config"
	contactsvc "github.com/webcontacts/contacts-api/internal/contacts/service"
	usersvc "github.com/webcontacts/contacts-api/internal/users/service"
)

type RouterDeps struct {
	Cfg      *config.Config
	Log      *zap.Logger
	Auth     authsvc.Service
	Contacts contactsvc.Service
	Users    usersvc.Service
	Quota    middleware.QuotaLimiter
	DB       *gorm.DB
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(middleware.NewRateLimitPerIP(50, 100, 10_000, time.Hour))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.Cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: d.Cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(d.Auth)
	contactHandler := NewContactHandler(d.Contacts)
	userHandler := NewUserHandler(d.Users)

	guard := middleware.NewAuthGuard(d.Auth)
	quota := middleware.NewEndpointQuota(d.Quota)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", quota, authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/refresh_token", authHandler.RefreshToken)
	auth.GET("/confirmed_email/:token", authHandler.ConfirmedEmail)

	contacts := api.Group("/contacts", guard, quota)
	contacts.GET("", contactHandler.List)
	contacts.GET("/:id", contactHandler.Get)
	contacts.POST("", contactHandler.Create)
	contacts.PUT("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	users := api.Group("/users", guard, quota)
	users.GET("/me", userHandler.Me)
	users.PATCH("/avatar", userHandler.UpdateAvatar)

	api.GET("/healthchecker", func(c *gin.Context) {
		var one int
		if err := d.DB.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database is not available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Contacts API"})
	})

	return router
}
