package dashboard_controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/controllers/cms/dashboard_controller"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDashboardTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`DROP TABLE IF EXISTS order_items`,
		`DROP TABLE IF EXISTS orders`,
		`DROP TABLE IF EXISTS products`,
		`DROP TABLE IF EXISTS categories`,
		`DROP TABLE IF EXISTS users`,
		`CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  phone TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE categories (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  order_number TEXT NOT NULL UNIQUE,
  current_status TEXT NOT NULL DEFAULT 'pending',
  address_snapshot TEXT,
  subtotal NUMERIC NOT NULL DEFAULT 0,
  shipping_fee NUMERIC NOT NULL DEFAULT 0,
  discount NUMERIC NOT NULL DEFAULT 0,
  final_total NUMERIC NOT NULL,
  customer_notes TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  image TEXT,
  variant_name TEXT,
  price NUMERIC NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME
);`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	config.StoreGorm = db

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	dashboard := admin.Group("/dashboard")
	dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
	dashboard.GET("/analysis", dashboard_controller.GetSalesAnalysis)
	dashboard.GET("/report", dashboard_controller.ExportSalesReport)

	return router
}

var orderSeq int

func seedOrder(t *testing.T, status string, createdAt time.Time, finalTotal float64, items ...models.OrderItem) {
	t.Helper()

	orderSeq++
	order := models.Order{
		UserID:        uuid.Must(uuid.NewV7()),
		OrderNumber:   fmt.Sprintf("ORD-HTTP-%06d", orderSeq),
		CurrentStatus: status,
		FinalTotal:    finalTotal,
		CreatedAt:     createdAt,
		Items:         items,
	}
	require.NoError(t, config.StoreGorm.Create(&order).Error)
}

func seedCatalog(t *testing.T, categoryName, productName string) models.Product {
	t.Helper()

	category := models.Category{Name: categoryName}
	if err := config.StoreGorm.Where("name = ?", categoryName).First(&category).Error; err != nil {
		require.NoError(t, config.StoreGorm.Create(&category).Error)
	}
	product := models.Product{Name: productName, CategoryID: category.ID}
	require.NoError(t, config.StoreGorm.Create(&product).Error)
	return product
}

type envelope struct {
	Success bool            `json:"success"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

func TestGetDashboardStatsEndpoint(t *testing.T) {
	router := setupDashboardTest(t)

	product := seedCatalog(t, "Áo", "Áo thun basic")
	seedOrder(t, models.OrderStatusDelivered, time.Now().AddDate(0, 0, -2), 250000,
		models.OrderItem{
			ProductID: product.ID,
			Name:      "Áo thun basic",
			Price:     220000,
			Quantity:  1,
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/stats", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(body.Data, &summary))
	assert.Equal(t, int64(1), summary.TotalOrders)
	assert.InDelta(t, 250000, summary.TotalRevenue, 0.001)
	require.Len(t, summary.BestSellingProducts, 1)
	assert.Equal(t, "Áo", summary.BestSellingProducts[0].Category)
}

func TestGetSalesAnalysisEndpoint(t *testing.T) {
	router := setupDashboardTest(t)

	seedOrder(t, models.OrderStatusDelivered, time.Now().AddDate(0, 0, -3), 100000)
	seedOrder(t, models.OrderStatusCancelled, time.Now().AddDate(0, 0, -3), 999999)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/analysis?timeframe=weekly", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)

	var series []models.TimeSeriesPoint
	require.NoError(t, json.Unmarshal(body.Data, &series))
	require.Len(t, series, 1)
	assert.InDelta(t, 100000, series[0].Revenue, 0.001)
	assert.InDelta(t, 30000, series[0].Profit, 0.001)
}

func TestGetSalesAnalysisBadParamsStill200(t *testing.T) {
	router := setupDashboardTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/dashboard/analysis?timeframe=bogus&startDate=garbage&endDate=2026-13-99", nil)
	router.ServeHTTP(w, req)

	// malformed params resolve to the default window, never a 400
	require.Equal(t, http.StatusOK, w.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestGetSalesAnalysisIdempotent(t *testing.T) {
	router := setupDashboardTest(t)

	seedOrder(t, models.OrderStatusDelivered, time.Now().AddDate(0, 0, -5), 420000)

	fetch := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/analysis?timeframe=monthly", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	assert.Equal(t, fetch(), fetch(), "identical params, no mutation: byte-identical body")
}

func TestExportSalesReportEndpoint(t *testing.T) {
	router := setupDashboardTest(t)

	product := seedCatalog(t, "Giày", "Sneaker trắng")
	seedOrder(t, models.OrderStatusDelivered, time.Now().AddDate(0, 0, -1), 790000,
		models.OrderItem{
			ProductID: product.ID,
			Name:      "Sneaker trắng",
			Price:     760000,
			Quantity:  1,
		})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/report?timeframe=monthly", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-report-")
	require.Greater(t, w.Body.Len(), 4)
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}
