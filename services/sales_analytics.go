package services

import (
	"context"
	"sort"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"gorm.io/gorm"
)

// DefaultTopSellerLimit caps the best-sellers widget.
const DefaultTopSellerLimit = 5

const profitRate = 0.3

type orderRevenueRow struct {
	CreatedAt  time.Time
	FinalTotal float64
}

// ComputeSalesSeries scans orders inside the resolved window and returns the
// revenue/profit series, ascending by bucket key.
//
// Profit is derived per order (final total × 30%) and then summed, so
// rounding stays consistent at order granularity rather than being
// recomputed on bucket totals.
func ComputeSalesSeries(ctx context.Context, db *gorm.DB, window models.SalesWindow) ([]models.TimeSeriesPoint, error) {
	q := db.WithContext(ctx).
		Model(&models.Order{}).
		Select("created_at, final_total").
		Where("current_status IN ?", window.Statuses).
		Where("created_at >= ?", window.Start)
	if window.End != nil {
		q = q.Where("created_at <= ?", *window.End)
	}

	var rows []orderRevenueRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*models.TimeSeriesPoint)
	for _, row := range rows {
		key := BucketKey(row.CreatedAt, window.Granularity)
		point, ok := buckets[key]
		if !ok {
			point = &models.TimeSeriesPoint{BucketKey: key}
			buckets[key] = point
		}
		point.Revenue += row.FinalTotal
		point.Profit += row.FinalTotal * profitRate
	}

	series := make([]models.TimeSeriesPoint, 0, len(buckets))
	for _, point := range buckets {
		series = append(series, *point)
	}
	// YYYY-MM-DD and YYYY-MM both sort correctly as strings
	sort.Slice(series, func(i, j int) bool { return series[i].BucketKey < series[j].BucketKey })

	return series, nil
}

type soldItemRow struct {
	ProductID   string
	Name        string
	Image       string
	VariantName string
	Price       float64
	Quantity    int
}

// ComputeTopSellers ranks products of non-cancelled orders by units sold and
// returns at most limit rows, category-enriched.
//
// The variant snapshot shown for a product is the first one seen in scan
// order, not the most recent. Ranking and truncation happen before the
// category lookup, so a product deleted from the catalog vacates its slot
// instead of promoting the next seller.
func ComputeTopSellers(ctx context.Context, db *gorm.DB, limit int) ([]models.TopSellerRow, error) {
	if limit <= 0 {
		limit = DefaultTopSellerLimit
	}

	var items []soldItemRow
	if err := db.WithContext(ctx).Raw(`
		SELECT oi.product_id, oi.name, oi.image, oi.variant_name, oi.price, oi.quantity
		FROM order_items oi
		INNER JOIN orders o ON oi.order_id = o.id
		WHERE o.current_status <> ?
		ORDER BY o.created_at, oi.id
	`, models.OrderStatusCancelled).
		Scan(&items).Error; err != nil {
		return nil, err
	}

	// group by product, first-seen snapshot wins
	grouped := make(map[string]*models.TopSellerRow)
	order := make([]string, 0)
	for _, item := range items {
		row, ok := grouped[item.ProductID]
		if !ok {
			row = &models.TopSellerRow{
				ProductID: item.ProductID,
				Name:      item.Name,
				Image:     item.Image,
			}
			grouped[item.ProductID] = row
			order = append(order, item.ProductID)
		}
		row.Sold += item.Quantity
		row.Revenue += item.Price * float64(item.Quantity)
	}

	ranked := make([]models.TopSellerRow, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *grouped[id])
	}
	// stable: ties keep first-seen order
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Sold > ranked[j].Sold })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if len(ranked) == 0 {
		return []models.TopSellerRow{}, nil
	}

	ids := make([]string, 0, len(ranked))
	for _, row := range ranked {
		ids = append(ids, row.ProductID)
	}

	var categories []struct {
		ID       string
		Category string
	}
	if err := db.WithContext(ctx).Raw(`
		SELECT p.id, c.name AS category
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		WHERE p.id IN ?
	`, ids).
		Scan(&categories).Error; err != nil {
		return nil, err
	}

	categoryByProduct := make(map[string]string, len(categories))
	for _, row := range categories {
		categoryByProduct[row.ID] = row.Category
	}

	// inner-join semantics: rows whose product or category is gone are dropped
	result := make([]models.TopSellerRow, 0, len(ranked))
	for _, row := range ranked {
		category, ok := categoryByProduct[row.ProductID]
		if !ok {
			continue
		}
		row.Category = category
		result = append(result, row)
	}

	return result, nil
}

type categorySaleRow struct {
	Category string
	Amount   float64
}

// ComputeCategorySales sums item revenue (price × quantity) of non-cancelled
// orders per category. Items whose product or category no longer exists are
// excluded. Label order is the grouping insertion order; callers must not
// assume sorted categories.
func ComputeCategorySales(ctx context.Context, db *gorm.DB) (models.CategorySalesSummary, error) {
	var rows []categorySaleRow
	if err := db.WithContext(ctx).Raw(`
		SELECT c.name AS category, oi.price * oi.quantity AS amount
		FROM order_items oi
		INNER JOIN orders o ON oi.order_id = o.id
		INNER JOIN products p ON oi.product_id = p.id
		INNER JOIN categories c ON p.category_id = c.id
		WHERE o.current_status <> ?
		ORDER BY o.created_at, oi.id
	`, models.OrderStatusCancelled).
		Scan(&rows).Error; err != nil {
		return models.CategorySalesSummary{}, err
	}

	totals := make(map[string]float64)
	labels := make([]string, 0)
	for _, row := range rows {
		if _, ok := totals[row.Category]; !ok {
			labels = append(labels, row.Category)
		}
		totals[row.Category] += row.Amount
	}

	summary := models.CategorySalesSummary{
		Labels: labels,
		Data:   make([]float64, 0, len(labels)),
	}
	for _, label := range labels {
		summary.Data = append(summary.Data, totals[label])
	}

	return summary, nil
}
