package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetSalesAnalysis godoc
// @Summary Get revenue/profit time series
// @Description Returns the bucketed revenue and profit series. startDate/endDate (YYYY-MM-DD, inclusive) override timeframe; absent both, defaults to the trailing year. Bad params never 400, they resolve to the default window.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Param timeframe query string false "weekly | monthly | quarterly | annually"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} models.ApiResponse{data=[]models.TimeSeriesPoint}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/analysis [get]
func GetSalesAnalysis(c *gin.Context) {
	timeframe := c.Query("timeframe")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	log.Printf("[admin.dashboard-analysis] start timeframe=%q startDate=%q endDate=%q",
		timeframe, startDate, endDate)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	series, err := services.GetSalesSeries(ctx, config.StoreGorm, timeframe, startDate, endDate)
	if err != nil {
		log.Printf("[admin.dashboard-analysis] ERROR series err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Lỗi server"))
		return
	}

	log.Printf("[admin.dashboard-analysis] respond 200 buckets=%d", len(series))

	c.JSON(http.StatusOK, models.SuccessResponse(c, series))
}
