package models

import "time"

// Bucket granularities for the revenue/profit time series.
const (
	BucketByDay   = "day"
	BucketByMonth = "month"
)

// SalesWindow is the fully-resolved query configuration for the time-series
// aggregation. It is produced in one place, before any data access, so the
// aggregator never branches on raw query input.
type SalesWindow struct {
	Start       time.Time  // inclusive lower bound
	End         *time.Time // inclusive upper bound; nil = open window to "now"
	Statuses    []string   // order statuses included in the series
	Granularity string     // BucketByDay or BucketByMonth
}

// TimeSeriesPoint is one bucket of the revenue/profit series. Profit is a
// fixed 30% heuristic of revenue; true cost of goods is not captured at
// order time. JSON keys are the ones the dashboard charts consume.
type TimeSeriesPoint struct {
	BucketKey string  `json:"bucketKey"` // YYYY-MM-DD or YYYY-MM
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
}

// TopSellerRow is one entry of the best-sellers widget.
type TopSellerRow struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
	Category  string  `json:"category"`
}

// CategorySalesSummary is a pair of parallel arrays (same order) feeding the
// category revenue pie chart. Label order is not guaranteed.
type CategorySalesSummary struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// DashboardSummary is the /dashboard/stats payload.
type DashboardSummary struct {
	TotalUsers          int64                `json:"totalUsers"`
	TotalOrders         int64                `json:"totalOrders"`
	TotalRevenue        float64              `json:"totalRevenue"`
	NewUsersThisMonth   int64                `json:"newUsersThisMonth"`
	BestSellingProducts []TopSellerRow       `json:"bestSellingProducts"`
	CategorySales       CategorySalesSummary `json:"categorySales"`
}
