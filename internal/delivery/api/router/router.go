// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hive/config"
	"hive/internal/delivery/api/middleware"
	"hive/internal/delivery/api/router/handler"
	"hive/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler     *handler.AccountHandler
	RoommateHandler    *handler.RoommateHandler
	CartHandler        *handler.CartHandler
	RentalHandler      *handler.RentalHandler
	RideHandler        *handler.RideHandler
	GamePartnerHandler *handler.GamePartnerHandler
	ActivityHandler    *handler.ActivityHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler     *handler.AccountHandler
	roommateHandler    *handler.RoommateHandler
	cartHandler        *handler.CartHandler
	rentalHandler      *handler.RentalHandler
	rideHandler        *handler.RideHandler
	gamePartnerHandler *handler.GamePartnerHandler
	activityHandler    *handler.ActivityHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:     params.AccountHandler,
		roommateHandler:    params.RoommateHandler,
		cartHandler:        params.CartHandler,
		rentalHandler:      params.RentalHandler,
		rideHandler:        params.RideHandler,
		gamePartnerHandler: params.GamePartnerHandler,
		activityHandler:    params.ActivityHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes, throttled per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.RateLimit(r.config.RateLimit))
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/signin", r.accountHandler.SignIn)
		authGroup.POST("/refresh", r.accountHandler.RefreshSession)
		authGroup.POST("/password/forgot", r.accountHandler.RequestPasswordReset)
		authGroup.POST("/password/reset", r.accountHandler.ResetPassword)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	moderator := r.authMiddleware.RequireRole(entity.RoleModerator)

	accountGroup := apiV1.Group("/account")
	{
		accountGroup.POST("/signout", r.accountHandler.SignOut)
		accountGroup.GET("/session", r.accountHandler.GetSession)
		accountGroup.GET("/profile", r.accountHandler.GetProfile)
		accountGroup.PATCH("/profile", r.accountHandler.UpdateProfile)
		accountGroup.GET("/events", r.accountHandler.Events)
	}

	roommatesGroup := apiV1.Group("/roommates")
	{
		roommatesGroup.GET("", r.roommateHandler.ListCandidates)
		roommatesGroup.POST("", r.roommateHandler.AddCandidate)
		roommatesGroup.GET("/profile", r.roommateHandler.GetProfile)
		roommatesGroup.PUT("/profile", r.roommateHandler.SaveProfile)
		roommatesGroup.GET("/matches", r.roommateHandler.FindMatches)
		roommatesGroup.GET("/search", r.roommateHandler.SearchCandidates)
		roommatesGroup.POST("/reset", r.roommateHandler.Reset, moderator)
		roommatesGroup.DELETE("/:id", r.roommateHandler.RemoveCandidate)
	}

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.POST("", r.cartHandler.AddItem)
		cartGroup.DELETE("/completed", r.cartHandler.ClearCompleted)
		cartGroup.POST("/reset", r.cartHandler.Reset, moderator)
		cartGroup.DELETE("/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/:id/toggle", r.cartHandler.ToggleCompleted)
	}

	rentalsGroup := apiV1.Group("/rentals")
	{
		rentalsGroup.GET("", r.rentalHandler.List)
		rentalsGroup.GET("/options", r.rentalHandler.Options)
		rentalsGroup.POST("", r.rentalHandler.AddItem)
		rentalsGroup.POST("/reset", r.rentalHandler.Reset, moderator)
		rentalsGroup.DELETE("/:id", r.rentalHandler.RemoveItem)
		rentalsGroup.POST("/:id/toggle", r.rentalHandler.ToggleAvailable)
		rentalsGroup.GET("/:id/qrcode", r.rentalHandler.QRCode)
	}

	ridesGroup := apiV1.Group("/rides")
	{
		ridesGroup.GET("", r.rideHandler.List)
		ridesGroup.GET("/options", r.rideHandler.Options)
		ridesGroup.POST("", r.rideHandler.AddShare)
		ridesGroup.POST("/reset", r.rideHandler.Reset, moderator)
		ridesGroup.DELETE("/:id", r.rideHandler.RemoveShare)
	}

	partnersGroup := apiV1.Group("/game-partners")
	{
		partnersGroup.GET("", r.gamePartnerHandler.List)
		partnersGroup.GET("/options", r.gamePartnerHandler.Options)
		partnersGroup.POST("", r.gamePartnerHandler.AddPartner)
		partnersGroup.POST("/reset", r.gamePartnerHandler.Reset, moderator)
		partnersGroup.DELETE("/:id", r.gamePartnerHandler.RemovePartner)
		partnersGroup.POST("/:id/games", r.gamePartnerHandler.AddGame)
		partnersGroup.PUT("/:id/games/:game", r.gamePartnerHandler.SetSkill)
		partnersGroup.DELETE("/:id/games/:game", r.gamePartnerHandler.RemoveGame)
	}

	apiV1.GET("/activity", r.activityHandler.List)
}
