package api

import (
	"log"
	stdhttp "net/http"

	"tripwise/internal/config"
	"tripwise/internal/domain"
	h "tripwise/internal/http/handlers"
	"tripwise/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env, hs *h.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.LoadSession(hs.Sessions, env.SessionCookie, env.CookieSecure),
		middleware.Logger(),
		gin.Recovery(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	signedIn := middleware.RequireSession()

	api := r.Group("/api")
	{
		api.GET("/health", hs.Health)
		api.GET("/ready", hs.ReadyCheck)

		// Auth
		auth := api.Group("/auth")
		auth.GET("/state", hs.AuthState)
		auth.POST("/signin", hs.SignIn)
		auth.POST("/signout", hs.SignOut)
		auth.POST("/refresh", signedIn, hs.Refresh)
		auth.POST("/signup", hs.SignupStart)
		auth.POST("/signup/:requestId/resend", hs.SignupResend)
		auth.POST("/signup/:requestId/verify", hs.SignupVerify)

		// Marketing
		api.GET("/plans", hs.PublicPlans)
		api.POST("/plans/:id/subscribe", signedIn, hs.SubscribePlan)
		api.GET("/hot-news", hs.HotNews)
		api.GET("/blogs", hs.Blogs)
		api.GET("/blogs/:id", hs.Blog)
		api.GET("/refund-policy", hs.RefundPolicy)

		// Tours
		tours := api.Group("/tours")
		tours.GET("", hs.ListTours)
		tours.GET("/:id", hs.GetTour)
		tours.GET("/:id/reviews", hs.ListReviews)
		tours.POST("/:id/reviews", signedIn, hs.CreateReview)

		// Itineraries
		itineraries := api.Group("/itineraries")
		itineraries.GET("/form", hs.ItineraryForm)
		itineraries.POST("", signedIn, hs.GenerateItinerary)
		itineraries.POST("/save", signedIn, hs.SaveItinerary)
		itineraries.POST("/export", hs.ExportItinerary)

		// Bookings
		bookings := api.Group("/bookings", signedIn)
		bookings.GET("", hs.ListBookings)
		bookings.POST("", hs.CreateBooking)
		bookings.GET("/:id", hs.GetBooking)
		bookings.PUT("/:id", hs.UpdateBookingGuests)
		bookings.GET("/:id/refund-preview", hs.RefundPreview)
		bookings.POST("/:id/refund", hs.ConfirmRefund)
		bookings.GET("/:id/ticket", hs.BookingTicket)

		// Payments
		payments := api.Group("/payments", signedIn)
		payments.POST("", hs.StartPayment)
		payments.GET("/return", hs.PaymentReturn)

		// Wish-list
		wishlist := api.Group("/wishlist", signedIn)
		wishlist.GET("", hs.Wishlist)
		wishlist.POST("/:tourId", hs.AddWishlist)
		wishlist.DELETE("/:tourId", hs.RemoveWishlist)

		// Profile
		profile := api.Group("/profile", signedIn)
		profile.GET("", hs.GetProfile)
		profile.PUT("", hs.UpdateProfile)
		profile.PUT("/password", hs.ChangePassword)
		profile.GET("/plan", hs.MyPlan)

		// Partner
		partner := api.Group("/partner", middleware.RequireRole(domain.RolePartner, domain.RoleAdmin))
		partner.GET("/tours", hs.PartnerTours)
		partner.POST("/tours", hs.PartnerCreateTour)
		partner.PUT("/tours/:id", hs.PartnerUpdateTour)
		partner.GET("/bookings", hs.PartnerBookings)
		partner.GET("/bookings/:id", hs.PartnerBooking)

		// Admin
		admin := api.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
		admin.GET("/stats", hs.AdminStats)

		admin.GET("/blogs", hs.AdminBlogs)
		admin.GET("/blogs/:id", hs.AdminBlog)
		admin.POST("/blogs", hs.AdminSaveBlog)
		admin.PUT("/blogs/:id", hs.AdminSaveBlog)
		admin.DELETE("/blogs/:id", hs.AdminDeleteBlog)

		admin.GET("/hot-news", hs.AdminHotNews)
		admin.POST("/hot-news", hs.AdminSaveHotNews)
		admin.PUT("/hot-news/:id", hs.AdminSaveHotNews)
		admin.DELETE("/hot-news/:id", hs.AdminDeleteHotNews)

		admin.GET("/plans", hs.AdminPlans)
		admin.GET("/plans/:id", hs.AdminPlan)
		admin.POST("/plans", hs.AdminSavePlan)
		admin.PUT("/plans/:id", hs.AdminSavePlan)
		admin.DELETE("/plans/:id", hs.AdminDeletePlan)

		admin.GET("/tours", hs.AdminTours)
		admin.PATCH("/tours/:id/approve", hs.AdminApproveTour)
		admin.PATCH("/tours/:id/reject", hs.AdminRejectTour)

		admin.GET("/users", hs.AdminUsers)
		admin.PATCH("/users/:id/active", hs.AdminSetUserActive)
	}

	return r
}
