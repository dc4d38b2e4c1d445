package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers to the REST surface. jwtSecret is the
// process-wide token signing key.
func SetupRouter(
	ac *controllers.AuthController,
	bc *controllers.BookingController,
	gc *controllers.GuestServiceController,
	uc *controllers.UserController,
	adc *controllers.AdminController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.RequireAuth(jwtSecret)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("/rooms", bc.GetRooms)
			bookings.POST("/book-room", authRequired, bc.BookRoom)
			bookings.GET("/my-bookings", authRequired, bc.MyBookings)
			bookings.DELETE("/cancel/:id", authRequired, bc.CancelBooking)
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("/profile", uc.Profile)
		}

		guestServices := api.Group("/guest-services", authRequired)
		{
			guestServices.POST("/add", gc.Add)
			guestServices.GET("/total/:booking_id", gc.Total)
			guestServices.GET("/charges/:booking_id", gc.Charges)

			// Must come after the literal prefixes above.
			guestServices.GET("/:id", gc.ListForBooking)
			guestServices.PUT("/:id/status", adminOnly, gc.UpdateStatus)
		}

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/users", adc.ListUsers)
			admin.POST("/add-room", adc.AddRoom)
			admin.DELETE("/rooms/:room_number", adc.DeleteRoom)
			admin.GET("/revenue", adc.Revenue)
			admin.GET("/total-revenue", adc.TotalRevenue)
			admin.GET("/user-bookings", adc.UserBookings)
			admin.GET("/user-info", adc.UserInfo)
			admin.GET("/check-room-availability", adc.CheckRoomAvailability)
			admin.GET("/booking-details/:id", adc.BookingDetails)
		}
	}

	return r
}
