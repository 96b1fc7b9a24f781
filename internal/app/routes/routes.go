package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/devforum/devforum/internal/app/controllers"
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	projectController *controllers.ProjectController,
	blogController *controllers.BlogController,
	questionController *controllers.QuestionController,
	eventController *controllers.EventController,
	discussionController *controllers.DiscussionController,
	socialController *controllers.SocialController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	staticDir string,
) {
	// Uploaded images are served as static files
	router.Static("/uploads", staticDir)

	v1 := router.Group("/api/v1")

	v1.POST("/uploads", authMiddleware.JWTAuth(), uploadController.UploadImage)

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authMiddleware.JWTAuth(), authController.Logout)
	}

	// --- User routes ---
	users := v1.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.GET("/profile", authMiddleware.JWTAuth(), userController.GetProfile)
		users.PUT("/profile", authMiddleware.JWTAuth(), userController.UpdateProfile)
		users.PUT("/password", authMiddleware.JWTAuth(), userController.ChangePassword)
		users.GET("/:id", userController.GetUser)
		users.GET("/:id/projects", projectController.GetProjectsByUser)
		users.GET("/:id/blogs", blogController.GetBlogsByUser)
		users.GET("/:id/questions", questionController.GetQuestionsByUser)
	}

	// --- Project routes ---
	projects := v1.Group("/projects")
	{
		projects.GET("", projectController.GetProjects)
		projects.GET("/:id", projectController.GetProjectByID)
		projects.GET("/:id/comments", socialController.GetComments(models.KindProject))

		protected := projects.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.POST("", projectController.CreateProject)
			protected.PUT("/:id", projectController.UpdateProject)
			protected.DELETE("/:id", projectController.DeleteProject)
			protected.POST("/:id/like", socialController.ToggleLike(models.KindProject))
			protected.POST("/:id/comments", socialController.AddComment(models.KindProject))
			protected.DELETE("/:id/comments/:commentId", socialController.DeleteComment(models.KindProject))
		}
	}

	// --- Blog routes ---
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", blogController.GetBlogs)
		blogs.GET("/:id", blogController.GetBlogByID)
		blogs.GET("/:id/comments", socialController.GetComments(models.KindBlog))

		protected := blogs.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.POST("", blogController.CreateBlog)
			protected.PUT("/:id", blogController.UpdateBlog)
			protected.DELETE("/:id", blogController.DeleteBlog)
			protected.POST("/:id/like", socialController.ToggleLike(models.KindBlog))
			protected.POST("/:id/comments", socialController.AddComment(models.KindBlog))
			protected.DELETE("/:id/comments/:commentId", socialController.DeleteComment(models.KindBlog))
		}
	}

	// --- Question routes ---
	questions := v1.Group("/questions")
	{
		questions.GET("", questionController.GetQuestions)
		questions.GET("/:id", questionController.GetQuestionByID)
		questions.GET("/:id/comments", socialController.GetComments(models.KindQuestion))

		protected := questions.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.POST("", questionController.CreateQuestion)
			protected.PUT("/:id", questionController.UpdateQuestion)
			protected.DELETE("/:id", questionController.DeleteQuestion)
			protected.POST("/:id/upvote", socialController.ToggleUpvote)
			protected.POST("/:id/comments", socialController.AddComment(models.KindQuestion))
			protected.DELETE("/:id/comments/:commentId", socialController.DeleteComment(models.KindQuestion))

			protected.POST("/:id/answers", questionController.AddAnswer)
			protected.PUT("/:id/answers/:answerId", questionController.UpdateAnswer)
			protected.DELETE("/:id/answers/:answerId", questionController.DeleteAnswer)
			protected.POST("/:id/answers/:answerId/accept", questionController.AcceptAnswer)
			protected.POST("/:id/answers/:answerId/upvote", questionController.ToggleAnswerUpvote)
		}
	}

	// --- Event routes ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/:id", eventController.GetEventByID)
		events.GET("/:id/comments", socialController.GetComments(models.KindEvent))

		protected := events.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.POST("", eventController.CreateEvent)
			protected.PUT("/:id", eventController.UpdateEvent)
			protected.DELETE("/:id", eventController.DeleteEvent)
			protected.POST("/:id/attend", socialController.ToggleAttend)
			protected.POST("/:id/comments", socialController.AddComment(models.KindEvent))
			protected.DELETE("/:id/comments/:commentId", socialController.DeleteComment(models.KindEvent))
		}
	}

	// --- Discussion routes ---
	discussions := v1.Group("/discussions")
	{
		discussions.GET("", discussionController.GetDiscussions)
		discussions.GET("/:id", discussionController.GetDiscussionByID)
		discussions.GET("/:id/comments", socialController.GetComments(models.KindDiscussion))

		protected := discussions.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.POST("", discussionController.CreateDiscussion)
			protected.PUT("/:id", discussionController.UpdateDiscussion)
			protected.DELETE("/:id", discussionController.DeleteDiscussion)
			protected.POST("/:id/like", socialController.ToggleLike(models.KindDiscussion))
			protected.POST("/:id/comments", socialController.AddComment(models.KindDiscussion))
			protected.DELETE("/:id/comments/:commentId", socialController.DeleteComment(models.KindDiscussion))
		}
	}
}
