package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetDashboardStats godoc
// @Summary Get dashboard summary
// @Description Returns totals, new users this month, best selling products and category revenue for the admin dashboard
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardSummary}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[admin.dashboard-stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	summary, err := services.GetDashboardSummary(ctx, config.StoreGorm)
	if err != nil {
		log.Printf("[admin.dashboard-stats] ERROR summary err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Lỗi server"))
		return
	}

	log.Printf("[admin.dashboard-stats] respond 200 orders=%d users=%d revenue=%.2f",
		summary.TotalOrders, summary.TotalUsers, summary.TotalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, summary))
}
