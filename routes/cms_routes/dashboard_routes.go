package cms_routes

import (
	"github.com/Lumen-Ecommerce/lumen-cms-backend/controllers/cms/dashboard_controller"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
	dashboard.GET("/analysis", dashboard_controller.GetSalesAnalysis)
	dashboard.GET("/report", dashboard_controller.ExportSalesReport)
}
