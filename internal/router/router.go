package router

import (
	"ramahomes/config"
	"ramahomes/internal/handler"
	"ramahomes/internal/middleware"
	"ramahomes/internal/repository"
	"ramahomes/internal/service"
	"ramahomes/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	propertyRepo := repository.NewPropertyRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	mediaSvc := service.NewMediaService(cloud, cfg.Cloudinary.Folder)
	propertySvc := service.NewPropertyService(propertyRepo, mediaSvc)
	authSvc := service.NewAuthService(cfg, adminRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	propertyHandler := handler.NewPropertyHandler(propertySvc, cfg.Upload.MaxFileBytes)

	authMw := middleware.AuthRequired(&cfg.JWT, adminRepo)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		properties := api.Group("/properties")
		{
			properties.GET("/public", propertyHandler.ListPublic)
			properties.GET("/public/:idOrSlug", propertyHandler.GetPublic)

			properties.GET("", authMw, propertyHandler.List)
			properties.POST("", authMw, propertyHandler.Create)
			properties.GET("/:id", authMw, propertyHandler.Get)
			properties.PATCH("/:id", authMw, propertyHandler.Update)
			properties.DELETE("/:id", authMw, propertyHandler.Delete)
		}
	}

	return r
}
