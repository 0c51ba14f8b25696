package app

import (
	"course_cert_backend/docs"
	"course_cert_backend/internal/middleware"
	"course_cert_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 2. 学员路由，JWT 密钥随配置热更新
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(func() string {
		return a.currentConfig().JWT.Secret
	}))
	{
		a.registerCourseRoutes(authGroup, c)
		a.registerPlaybackRoutes(authGroup, c)

		authGroup.GET("/ads/preroll", c.ad.Preroll)
	}
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/courses", c.course.ListCourses)
	rg.GET("/courses/:courseId", c.course.GetCourse)
	rg.GET("/courses/:courseId/videos/:videoId", c.course.GetVideo)

	// 进度
	rg.GET("/courses/:courseId/progress", c.progress.GetCourseProgress)
	rg.GET("/courses/:courseId/videos/:videoId/progress", c.progress.GetVideoProgress)
	rg.PATCH("/courses/:courseId/videos/:videoId/progress", c.progress.UpdateVideoProgress)

	// 测验/证书
	rg.POST("/courses/:courseId/videos/:videoId/quiz", c.quiz.Submit)
	rg.POST("/courses/:courseId/certificate", c.certificate.Issue)
	rg.GET("/courses/:courseId/certificate", c.certificate.Get)
}

func (a *App) registerPlaybackRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/courses/:courseId/videos/:videoId/sessions", c.playback.OpenSession)
	rg.GET("/sessions/:sessionId", c.playback.GetSession)
	rg.POST("/sessions/:sessionId/events", c.playback.ApplyEvent)
	rg.DELETE("/sessions/:sessionId", c.playback.CloseSession)
}
