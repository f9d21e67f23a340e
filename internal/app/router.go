package app

import (
	"coursehub_backend/docs"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/middleware"
	"coursehub_backend/internal/model"
	"coursehub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.ActivityMiddleware(repos.user))

	// 公共路由(无需登录)
	api.GET("/health", c.health.HealthCheck)

	users := api.Group("/users")
	{
		users.POST("/register", c.auth.Register)
		users.POST("/login", c.auth.Login)
		users.GET("/role/teachers", c.user.ListTeachers)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.GET("/profile", c.auth.GetProfile)
			authed.POST("/avatar", c.user.UploadAvatar)
			authed.GET("", middleware.RoleMiddleware(model.Admin), c.user.List)
			authed.GET("/:id", c.user.Get)
			authed.PUT("/:id", c.user.Update)
			authed.DELETE("/:id", middleware.RoleMiddleware(model.Admin), c.user.Delete)
		}
	}

	courses := api.Group("/courses")
	{
		// 列表/详情对游客开放，登录用户按角色放宽可见范围
		courses.GET("", middleware.TryAuthMiddleware(cfg), c.course.List)
		courses.GET("/:id", c.course.Get)

		authed := courses.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.POST("", middleware.RoleMiddleware(model.Teacher), c.course.Create)
			authed.PUT("/:id", middleware.RoleMiddleware(model.Teacher), c.course.Update)
			authed.DELETE("/:id", middleware.RoleMiddleware(model.Teacher), c.course.Delete)
			authed.POST("/:id/enroll", middleware.RoleMiddleware(model.Student), c.course.Enroll)
		}
	}

	lectures := api.Group("/lectures")
	{
		lectures.GET("", middleware.TryAuthMiddleware(cfg), c.lecture.List)
		lectures.GET("/popular/top", c.lecture.Popular)
		lectures.GET("/category/:category", c.lecture.ByCategory)
		lectures.GET("/:id", c.lecture.Get)

		authed := lectures.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.POST("", middleware.RoleMiddleware(model.Teacher), c.lecture.Create)
			authed.PUT("/:id", middleware.RoleMiddleware(model.Teacher), c.lecture.Update)
			authed.DELETE("/:id", middleware.RoleMiddleware(model.Teacher), c.lecture.Delete)
			authed.POST("/:id/like", c.lecture.Like)
			authed.POST("/:id/enroll", middleware.RoleMiddleware(model.Student), c.lecture.Enroll)
		}
	}

	stories := api.Group("/success-stories")
	{
		stories.GET("", c.story.List)
		stories.GET("/featured", c.story.Featured)
		stories.GET("/:id", c.story.Get)

		adminOnly := stories.Group("")
		adminOnly.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
		{
			adminOnly.POST("", c.story.Create)
			adminOnly.PUT("/:id", c.story.Update)
			adminOnly.DELETE("/:id", c.story.Delete)
		}
	}

	community := api.Group("/community")
	{
		community.GET("", c.community.List)

		adminOnly := community.Group("")
		adminOnly.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
		{
			adminOnly.POST("", c.community.Create)
			adminOnly.PUT("/:id", c.community.Update)
			adminOnly.DELETE("/:id", c.community.Delete)
		}
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.admin.Dashboard)
		admin.GET("/analytics", c.admin.Analytics)
		admin.GET("/users", c.user.List)
		admin.DELETE("/users/:id", c.user.Delete)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)
		admin.PUT("/lectures/:id", c.lecture.Update)
		admin.DELETE("/lectures/:id", c.lecture.Delete)
	}
}
