package routes

import (
	"resto-api/controllers"
	"resto-api/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	// Public catalog for the customer-facing landing page
	r.GET("/public/menu", controllers.GetPublicMenu)
	r.GET("/public/menu/:id", controllers.GetPublicMenuItemByID)

	// Menu
	menu := r.Group("/menu")
	menu.Use(middlewares.AuthMiddleware())
	{
		menu.GET("/", controllers.GetMenuItems)
		menu.GET("/export", controllers.ExportMenuItems)
		menu.GET("/:id", controllers.GetMenuItemByID)
		menu.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateMenuItem)
		menu.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateMenuItem)
		menu.DELETE("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.DeleteMenuItem)
		menu.POST("/bulk", middlewares.RoleMiddleware("admin", "cashier"), controllers.BulkCreateMenuItems)
	}

	// Orders
	orders := r.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.POST("/", controllers.CreateOrder)
		orders.GET("/", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.PATCH("/:id/status", controllers.UpdateOrderStatus)
		orders.DELETE("/:id", controllers.DeleteOrder)
	}

	// Reports
	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/sales", controllers.GetSalesSummary)
		reports.GET("/popular", controllers.GetPopularItems)
		reports.GET("/status", controllers.GetStatusSummary)
	}

	// Dashboard
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/", controllers.GetDashboard)
	}

	// Users (admin only)
	users := r.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
	}
}
