package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-app/controllers"
	"github.com/yeremiapane/cafe-app/kds"
	"github.com/yeremiapane/cafe-app/middlewares"
	"github.com/yeremiapane/cafe-app/models"
	"github.com/yeremiapane/cafe-app/services"
)

type Options struct {
	Store          *services.CafeStore
	Hub            *kds.KDSHub
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func SetupRouter(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares(opts.AllowedOrigins))
	r.Use(middlewares.SecurityHeaders())
	if opts.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).RateLimit())
	}

	sessionCtrl := controllers.NewSessionController(opts.Store)
	tableCtrl := controllers.NewTableController(opts.Store)
	bookingCtrl := controllers.NewBookingController(opts.Store)
	selectionCtrl := controllers.NewSelectionController(opts.Store)
	menuCtrl := controllers.NewMenuController(opts.Store)
	cartCtrl := controllers.NewCartController(opts.Store)
	checkoutCtrl := controllers.NewCheckoutController(opts.Store)
	orderCtrl := controllers.NewOrderController(opts.Store)
	adminCtrl := controllers.NewAdminController(opts.Store)
	kdsCtrl := controllers.NewKDSController(opts.Hub, originChecker(opts.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/session", sessionCtrl.Login)

	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/:table_id", tableCtrl.GetTable)
		tables.GET("/:table_id/bookings", tableCtrl.GetTableBookings)
		tables.GET("/:table_id/available-slots", tableCtrl.GetAvailableSlots)
	}
	r.GET("/board", tableCtrl.GetBoard)
	r.GET("/slots", bookingCtrl.GetSlots)
	r.GET("/slots/current", bookingCtrl.GetCurrentSlot)
	r.GET("/dates", bookingCtrl.GetDates)

	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.GetMenu)
		menu.GET("/categories", menuCtrl.GetCategories)
		menu.GET("/options", menuCtrl.GetOptions)
		menu.GET("/:item_id", menuCtrl.GetMenuItem)
	}

	// Any role
	auth := r.Group("/", middlewares.AuthMiddleware(),
		middlewares.RequireRole(string(models.RoleStaff), string(models.RoleCustomer)))
	{
		auth.DELETE("/session", sessionCtrl.Logout)

		auth.POST("/bookings", bookingCtrl.CreateBooking)
		auth.DELETE("/bookings", bookingCtrl.CancelBooking)
		auth.GET("/bookings", bookingCtrl.GetBookings)
		auth.GET("/bookings/upcoming", bookingCtrl.GetUpcoming)

		auth.GET("/selection", selectionCtrl.GetSelection)
		auth.PUT("/selection", selectionCtrl.UpdateSelection)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.PUT("/checkout/address", checkoutCtrl.SetAddress)
		auth.POST("/checkout/coupon", checkoutCtrl.ApplyCoupon)
		auth.DELETE("/checkout/coupon", checkoutCtrl.RemoveCoupon)
		auth.GET("/checkout/summary", checkoutCtrl.GetSummary)
		auth.POST("/checkout/place-order", middlewares.NewStrictRateLimiter(time.Second, 5), checkoutCtrl.PlaceOrder)

		auth.GET("/orders/current", orderCtrl.GetCurrentOrder)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.GET("/orders/:order_id/tracking", orderCtrl.GetTracking)
	}

	// Staff only
	staff := r.Group("/staff", middlewares.AuthMiddleware(), middlewares.RequireRole(string(models.RoleStaff)))
	{
		staff.GET("/orders", adminCtrl.GetOrders)
		staff.GET("/orders/stats", adminCtrl.GetOrderStats)
		staff.PATCH("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)
		staff.POST("/orders/:order_id/advance", adminCtrl.AdvanceOrder)
		staff.GET("/analytics", adminCtrl.GetAnalytics)
		staff.GET("/state-machine", adminCtrl.GetStateMachine)
	}
	r.GET("/ws", middlewares.AuthMiddleware(), middlewares.RequireRole(string(models.RoleStaff)), kdsCtrl.KDSHandler)

	return r
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
