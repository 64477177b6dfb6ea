package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/handlers"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BookingFacade, logger *slog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	if err := registerValidators(); err != nil {
		return nil, err
	}
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	serviceHandler := handlers.NewServiceHandler(facade)
	selectionHandler := handlers.NewSelectionHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	accountHandler := handlers.NewAccountHandler(facade)
	blogHandler := handlers.NewBlogHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	api.GET("/services", serviceHandler.List)
	api.GET("/services/:id", serviceHandler.Get)
	api.GET("/blogs", blogHandler.List)
	api.GET("/blogs/latest", blogHandler.Latest)
	api.GET("/blogs/:id", blogHandler.Get)
	api.GET("/reviews", reviewHandler.List)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.POST("/services", selectionHandler.Select)
	userAuth.GET("/services", selectionHandler.List)
	userAuth.PUT("/account", accountHandler.Update)
	userAuth.POST("/contacts", contactHandler.Submit)
	userAuth.POST("/reviews", reviewHandler.Submit)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/services", serviceHandler.Create)
	admin.PUT("/services/:id", serviceHandler.Update)
	admin.DELETE("/services/:id", serviceHandler.Delete)
	admin.PUT("/selections/:id/status", selectionHandler.UpdateStatus)
	admin.POST("/blogs", blogHandler.Create)
	admin.PUT("/blogs/:id", blogHandler.Update)
	admin.DELETE("/blogs/:id", blogHandler.Delete)
	admin.GET("/contacts", contactHandler.List)

	return engine, nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}
