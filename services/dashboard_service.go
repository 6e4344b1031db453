package services

import (
	"context"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GetDashboardSummary assembles the /dashboard/stats payload. The count
// queries and the two order-scanning aggregations are independent, so all
// six run concurrently; the first failure fails the whole summary. No
// partial dashboard is ever returned.
func GetDashboardSummary(ctx context.Context, db *gorm.DB) (*models.DashboardSummary, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var summary models.DashboardSummary

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return db.WithContext(gctx).
			Model(&models.User{}).
			Count(&summary.TotalUsers).Error
	})

	g.Go(func() error {
		return db.WithContext(gctx).
			Model(&models.User{}).
			Where("created_at >= ?", monthStart).
			Count(&summary.NewUsersThisMonth).Error
	})

	g.Go(func() error {
		return db.WithContext(gctx).
			Model(&models.Order{}).
			Count(&summary.TotalOrders).Error
	})

	g.Go(func() error {
		return db.WithContext(gctx).
			Model(&models.Order{}).
			Where("current_status <> ?", models.OrderStatusCancelled).
			Select("COALESCE(SUM(final_total), 0)").
			Scan(&summary.TotalRevenue).Error
	})

	g.Go(func() error {
		rows, err := ComputeTopSellers(gctx, db, DefaultTopSellerLimit)
		if err != nil {
			return err
		}
		summary.BestSellingProducts = rows
		return nil
	})

	g.Go(func() error {
		sales, err := ComputeCategorySales(gctx, db)
		if err != nil {
			return err
		}
		summary.CategorySales = sales
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetSalesSeries resolves the requested window and computes the time series
// behind /dashboard/analysis.
func GetSalesSeries(ctx context.Context, db *gorm.DB, timeframe, startDate, endDate string) ([]models.TimeSeriesPoint, error) {
	window := ResolveSalesWindow(timeframe, startDate, endDate, time.Now())
	return ComputeSalesSeries(ctx, db, window)
}
