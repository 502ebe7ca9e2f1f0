package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/dto"
	"taskflow-api/internal/handler"
	"taskflow-api/internal/metrics"
	"taskflow-api/internal/middleware"
	"taskflow-api/internal/repository"
	"taskflow-api/internal/service"
)

// Config carries everything the router needs to wire the application.
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	S3Client       service.S3Client
	JWTSecret      string
	AllowedOrigins []string
}

// Setup builds the gin engine with all routes and middleware attached.
func Setup(cfg Config) *gin.Engine {
	if err := dto.RegisterValidators(); err != nil {
		cfg.Logger.Fatal("failed to register custom validators", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	profileRepo := repository.NewProfileRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	subtaskRepo := repository.NewSubtaskRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)

	profileService := service.NewProfileService(profileRepo, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, profileRepo, taskRepo, cfg.Redis, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, tagRepo, attachmentRepo, cfg.Metrics, cfg.Logger)
	subtaskService := service.NewSubtaskService(subtaskRepo, taskRepo, cfg.Logger)
	tagService := service.NewTagService(tagRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, cfg.Logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, taskRepo, cfg.S3Client, cfg.Metrics, cfg.Logger)

	profileHandler := handler.NewProfileHandler(profileService, cfg.Logger)
	projectHandler := handler.NewProjectHandler(projectService, cfg.Logger)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)
	subtaskHandler := handler.NewSubtaskHandler(subtaskService, cfg.Logger)
	tagHandler := handler.NewTagHandler(tagService, cfg.Logger)
	commentHandler := handler.NewCommentHandler(commentService, cfg.Logger)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService, cfg.Logger)
	healthHandler := handler.NewHealthHandler()

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		profiles := api.Group("/profiles")
		{
			profiles.GET("/me", profileHandler.GetMe)
			profiles.PUT("/me", profileHandler.UpdateMe)
			profiles.GET("/:id", profileHandler.GetProfile)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.ArchiveProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.GET("/:id/members", projectHandler.ListMembers)
			projects.POST("/:id/members", projectHandler.AddMember)
			projects.PATCH("/:id/members/:userId", projectHandler.UpdateMemberRole)
			projects.DELETE("/:id/members/:userId", projectHandler.RemoveMember)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PUT("/:id/tags", taskHandler.SetTags)
			tasks.POST("/:id/subtasks", subtaskHandler.CreateSubtask)
			tasks.GET("/:id/subtasks", subtaskHandler.ListSubtasks)
			tasks.POST("/:id/comments", commentHandler.CreateComment)
			tasks.GET("/:id/comments", commentHandler.ListComments)
			tasks.GET("/:id/attachments", attachmentHandler.ListTaskAttachments)
		}

		subtasks := api.Group("/subtasks")
		{
			subtasks.PATCH("/:id", subtaskHandler.UpdateSubtask)
			subtasks.DELETE("/:id", subtaskHandler.DeleteSubtask)
		}

		tags := api.Group("/tags")
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.ListTags)
			tags.PATCH("/:id", tagHandler.UpdateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		comments := api.Group("/comments")
		{
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		attachments := api.Group("/attachments")
		{
			attachments.POST("/presigned-url", attachmentHandler.GeneratePresignedURL)
			attachments.POST("", attachmentHandler.SaveAttachment)
			attachments.DELETE("/:id", attachmentHandler.DeleteAttachment)
		}
	}

	return r
}
