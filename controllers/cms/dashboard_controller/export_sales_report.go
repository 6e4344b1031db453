package dashboard_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// ExportSalesReport godoc
// @Summary Download sales report PDF
// @Description Generates a PDF with the dashboard summary and the revenue/profit series for the requested window. Accepts the same query params as /dashboard/analysis.
// @Tags Admin - Dashboard
// @Produce octet-stream
// @Security BearerAuth
// @Param timeframe query string false "weekly | monthly | quarterly | annually"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/dashboard/report [get]
func ExportSalesReport(c *gin.Context) {
	timeframe := c.Query("timeframe")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	log.Printf("[admin.dashboard-report] start timeframe=%q startDate=%q endDate=%q",
		timeframe, startDate, endDate)

	ctx, cancel := config.WithCustomTimeout(20 * time.Second)
	defer cancel()

	summary, err := services.GetDashboardSummary(ctx, config.StoreGorm)
	if err != nil {
		log.Printf("[admin.dashboard-report] ERROR summary err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Lỗi server"))
		return
	}

	series, err := services.GetSalesSeries(ctx, config.StoreGorm, timeframe, startDate, endDate)
	if err != nil {
		log.Printf("[admin.dashboard-report] ERROR series err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Lỗi server"))
		return
	}

	pdfBuffer, err := generateSalesReportPDF(summary, series)
	if err != nil {
		log.Printf("[admin.dashboard-report] ERROR pdf err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Lỗi server"))
		return
	}

	filename := fmt.Sprintf("sales-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.dashboard-report] respond 200 buckets=%d bytes=%d", len(series), pdfBuffer.Len())
}

// generateSalesReportPDF lays out the summary block, the bucketed series and
// the best-sellers table.
func generateSalesReportPDF(summary *models.DashboardSummary, series []models.TimeSeriesPoint) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("SALES REPORT", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated: %s", time.Now().Format("Jan 02, 2006 15:04")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("SUMMARY", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	summaryLines := []string{
		fmt.Sprintf("Total revenue: %.2f", summary.TotalRevenue),
		fmt.Sprintf("Total orders: %d", summary.TotalOrders),
		fmt.Sprintf("Total users: %d", summary.TotalUsers),
		fmt.Sprintf("New users this month: %d", summary.NewUsersThisMonth),
	}
	for _, line := range summaryLines {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Series table
	m.Row(6, func() {
		m.Col(4, func() {
			m.Text("Period", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Revenue", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(4, func() {
			m.Text("Profit", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, point := range series {
		m.Row(5, func() {
			m.Col(4, func() {
				m.Text(point.BucketKey, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("%.2f", point.Revenue), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("%.2f", point.Profit), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("BEST SELLERS", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	for _, row := range summary.BestSellingProducts {
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(row.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%d sold", row.Sold), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%.2f", row.Revenue), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
