package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhmdhisham/eventgate/config"
	"github.com/mhmdhisham/eventgate/internal/handlers"
	"github.com/mhmdhisham/eventgate/internal/helpers"
	"github.com/mhmdhisham/eventgate/internal/middleware"
	"github.com/mhmdhisham/eventgate/internal/models"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization", "x-auth-token")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		helpers.RespondWithData(c, http.StatusOK, "Server is running", nil)
	})

	users := r.Group("/users")
	{
		users.POST("/signup", handlers.Signup)
		users.POST("/verify", handlers.VerifyOtp)
		users.POST("/resend-otp", handlers.ResendOtp)
		users.POST("/login", handlers.Login)
		users.GET("/events", handlers.ListEvents)
		users.POST("/currentUser", middleware.Authenticate(), handlers.GetCurrentUser)
	}

	events := r.Group("/events")
	{
		events.GET("", handlers.ListEvents)
		events.GET("/:id", handlers.GetEvent)
		events.POST("", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.CreateEvent)
		events.PATCH("/:id", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.UpdateEvent)
		events.DELETE("/:id", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin), handlers.DeleteEvent)
		events.GET("/:id/bookings", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.GetEventBookings)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", handlers.CreateBooking)
		bookings.GET("", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.ListBookings)
		bookings.GET("/:id", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.GetBooking)
		bookings.PATCH("/:id/payment", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.UpdateBookingPayment)
		bookings.PATCH("/:id/notes", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.UpdateBookingNotes)
		bookings.DELETE("/:id", middleware.Authenticate(), middleware.RequireRole(models.RoleAdmin), handlers.DeleteBooking)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.Authenticate())
	{
		dashboard.GET("/events", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.DashboardEvents)
		dashboard.POST("/createEvent", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.DashboardCreateEvent)
		dashboard.PATCH("/updateEvent/:id", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.DashboardUpdateEvent)
		dashboard.DELETE("/deleteEvent/:id", middleware.RequireRole(models.RoleAdmin), handlers.DashboardDeleteEvent)

		dashboard.GET("/bookings", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.ListBookings)
		dashboard.GET("/bookings/:eventId", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.DashboardEventBookings)
		dashboard.PATCH("/bookings/:id/payment", middleware.RequireRole(models.RoleAdmin, models.RoleEditor), handlers.UpdateBookingPayment)
		dashboard.DELETE("/bookings/:id", middleware.RequireRole(models.RoleAdmin), handlers.DeleteBooking)
	}
}
