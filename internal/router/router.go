package router

import (
	"keyblogger/internal/db"
	"keyblogger/internal/handlers"
	"keyblogger/internal/middleware"
	"keyblogger/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	users := store.NewUserStore(db.DB)
	blogs := store.NewBlogStore(db.DB)
	posts := store.NewPostStore(db.DB)

	authHandler := handlers.NewAuthHandler(users)
	userHandler := handlers.NewUserHandler(users)
	blogHandler := handlers.NewBlogHandler(blogs)
	postHandler := handlers.NewPostHandler(posts)

	// Public Routes
	r.POST("/login", authHandler.Login)
	r.POST("/users", userHandler.Register)
	r.GET("/users/:username", userHandler.Profile)

	r.GET("/blogs", blogHandler.List)
	r.GET("/blogs/:id", blogHandler.Detail)
	r.GET("/blogs/:id/posts", postHandler.ListByBlog)
	r.GET("/posts", postHandler.List)
	r.GET("/posts/:id", postHandler.Detail)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/blogs", blogHandler.Create)
		authorized.PATCH("/blogs/:id", blogHandler.Update)
		authorized.DELETE("/blogs/:id", blogHandler.Delete)
		authorized.POST("/blogs/:id/vote/:direction", blogHandler.Vote)

		authorized.POST("/posts", postHandler.Create)
		authorized.PATCH("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/vote/:direction", postHandler.Vote)
	}
}
