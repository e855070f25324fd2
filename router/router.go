package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pisethdev/food-delivery-app/controllers"
	"github.com/pisethdev/food-delivery-app/middlewares"
	"github.com/pisethdev/food-delivery-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, images *services.ImageService) *gin.Engine {
	r := gin.Default()

	// Only image files may be fetched from the uploads directory. This must
	// be installed before the static route is registered: gin captures a
	// route's middleware chain at registration time.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/uploads/") {
			p := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(p, ".jpg") &&
				!strings.HasSuffix(p, ".jpeg") &&
				!strings.HasSuffix(p, ".png") &&
				!strings.HasSuffix(p, ".gif") &&
				!strings.HasSuffix(p, ".webp") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Serve uploaded blobs statically
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	restaurantCtrl := controllers.NewRestaurantController(db, images)
	menuItemCtrl := controllers.NewMenuItemController(db, images)
	orderCtrl := controllers.NewOrderController(db)
	orderItemCtrl := controllers.NewOrderItemController(db)
	userCtrl := controllers.NewUserController(db)
	partnerCtrl := controllers.NewDeliveryPartnerController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// RESTAURANTS
	api.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	api.GET("/restaurants/:id", restaurantCtrl.GetRestaurantByID)
	api.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	api.PUT("/restaurants/:id", restaurantCtrl.UpdateRestaurant)
	api.DELETE("/restaurants/:id", restaurantCtrl.DeleteRestaurant)

	// MENU ITEMS
	api.GET("/restaurant/items/:id", menuItemCtrl.GetMenuByRestaurant)
	api.GET("/restaurant/items/view/:itemId", menuItemCtrl.GetMenuItemByID)
	api.POST("/restaurant/items/create/:id", menuItemCtrl.CreateMenuItem)
	api.PUT("/restaurant/items/update/:itemId", menuItemCtrl.UpdateMenuItem)
	api.DELETE("/restaurant/items/delete/:id", menuItemCtrl.RemoveMenuItem)
	api.POST("/restaurant/items/counts", menuItemCtrl.GetMenuItemCounts)

	// USERS
	public := api.Group("/users")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}
	api.GET("/users/profile", middlewares.AuthMiddleware(), userCtrl.GetProfile)
	api.GET("/users", userCtrl.GetAllUsers)
	api.GET("/users/:id", userCtrl.GetUserByID)
	api.PUT("/users/:id", userCtrl.UpdateUser)
	api.DELETE("/users/:id", userCtrl.DeleteUser)

	// ORDERS
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.GET("/orders/:id", orderCtrl.GetOrderByID)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.PUT("/orders/:id", orderCtrl.UpdateOrder)
	api.DELETE("/orders/:id", orderCtrl.DeleteOrder)

	// ORDER ITEMS
	api.GET("/orderItems", orderItemCtrl.GetAllOrderItems)
	api.GET("/orderItems/:id", orderItemCtrl.GetOrderItemByID)
	api.POST("/orderItems", orderItemCtrl.CreateOrderItem)
	api.PUT("/orderItems/:id", orderItemCtrl.UpdateOrderItem)
	api.DELETE("/orderItems/:id", orderItemCtrl.DeleteOrderItem)

	// DELIVERY PARTNERS
	api.GET("/delivery-partners", partnerCtrl.GetAllDeliveryPartners)
	api.GET("/delivery-partners/:id", partnerCtrl.GetDeliveryPartnerByID)
	api.POST("/delivery-partners", partnerCtrl.CreateDeliveryPartner)
	api.PUT("/delivery-partners/:id", partnerCtrl.UpdateDeliveryPartner)
	api.DELETE("/delivery-partners/:id", partnerCtrl.DeleteDeliveryPartner)

	// DELIVERIES
	api.GET("/deliveries", controllers.GetDeliveries)
	api.GET("/deliveries/:id", controllers.GetDelivery)
	api.POST("/deliveries", controllers.CreateDelivery)
	api.PUT("/deliveries/:id", controllers.UpdateDelivery)
	api.DELETE("/deliveries/:id", controllers.DeleteDelivery)

	return r
}
