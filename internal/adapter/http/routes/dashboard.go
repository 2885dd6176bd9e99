package routes

import (
	"ecommerce_dashboard/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("", h.GetDashboard)
	dashboard.GET("/range", h.GetDateSpan)
	dashboard.GET("/daily-orders", h.GetDailyOrders)
	dashboard.GET("/freight", h.GetFreight)
	dashboard.GET("/customers-by-state", h.GetCustomersByState)
	dashboard.GET("/order-status", h.GetOrderStatus)
	dashboard.GET("/payment-types", h.GetPaymentTypes)
	dashboard.GET("/rfm", h.GetRFM)
	dashboard.GET("/orders", h.GetOrders)
}
