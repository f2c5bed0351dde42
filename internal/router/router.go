package router

import (
	"buddyboard/internal/handler"
	"buddyboard/internal/middleware"
	"buddyboard/internal/pkg"
	"buddyboard/internal/policy"
	"buddyboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	SMTP   pkg.SMTPConfig
	Logger *zap.Logger
}

func InitRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(deps.SMTP)
	settingsSvc := service.NewSettingsService()
	studentSvc := service.NewStudentService()

	user := handler.NewUserHandler(service.NewUserService(emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	student := handler.NewStudentHandler(studentSvc)
	post := handler.NewPostHandler(service.NewPostService(settingsSvc, deps.Logger))
	message := handler.NewMessageHandler(service.NewMessageService())
	event := handler.NewEventHandler(service.NewEventService(studentSvc))
	dailyLog := handler.NewDailyLogHandler(service.NewDailyLogService(studentSvc))
	admin := handler.NewAdminHandler(settingsSvc)

	adminOnly := middleware.RequireRole(policy.RoleAdmin)
	staffOnly := middleware.RequireRole(policy.RoleAdmin, policy.RoleTherapist)

	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	studentGroup := r.Group("/api/students")
	studentGroup.Use(middleware.AuthMiddleware())
	{
		studentGroup.GET("", student.List)
		studentGroup.GET("/:id", student.Get)
		studentGroup.POST("", adminOnly, student.Create)
	}

	directoryGroup := r.Group("/api/directory")
	directoryGroup.Use(middleware.AuthMiddleware())
	{
		directoryGroup.GET("", user.Directory)
	}

	postGroup := r.Group("/api/posts")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.POST("", post.Create)
		postGroup.GET("", post.List)
		postGroup.GET("/pending", adminOnly, post.Pending)
		postGroup.POST("/:id/approve", adminOnly, post.Approve)
		postGroup.DELETE("/:id/reject", adminOnly, post.Reject)
	}

	messageGroup := r.Group("/api/messages")
	messageGroup.Use(middleware.AuthMiddleware())
	{
		messageGroup.POST("", message.Send)
		messageGroup.GET("/inbox", message.Inbox)
		messageGroup.GET("/sent", message.Sent)
		messageGroup.POST("/:id/read", message.MarkRead)
	}

	eventGroup := r.Group("/api/events")
	eventGroup.Use(middleware.AuthMiddleware())
	{
		eventGroup.POST("", staffOnly, event.Create)
		eventGroup.GET("", event.List)
		eventGroup.DELETE("/:id", event.Delete)
	}

	logGroup := r.Group("/api/logs")
	logGroup.Use(middleware.AuthMiddleware())
	{
		logGroup.POST("", staffOnly, dailyLog.Create)
		logGroup.GET("", dailyLog.List)
		logGroup.GET("/:id", dailyLog.Get)
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(), adminOnly)
	{
		adminGroup.GET("/settings", admin.GetSettings)
		adminGroup.PUT("/settings", admin.UpdateSetting)
		adminGroup.POST("/invite", email.SendInvite)
		adminGroup.PUT("/users/:id/moderation", admin.SetOverride)
	}

	return r
}
