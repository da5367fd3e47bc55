package service

import (
	"context"
	"fmt"
	"time"

	"github.com/qamees-next/internal/cache"
	"github.com/qamees-next/internal/logger"
	"github.com/qamees-next/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardCacheTTL     = 45 * time.Second
	dashboardDefaultDays  = 7
	dashboardMaxDays      = 90
	dashboardDefaultLimit = 5
	dashboardOverviewKey  = "dashboard:overview"
)

// DashboardService 仪表盘服务
// 说明：聚合后台首页核心经营数据。
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// DashboardOverview 仪表盘总览
type DashboardOverview struct {
	TotalProducts  int64  `json:"total_products"`
	ActiveProducts int64  `json:"active_products"`
	TotalOrders    int64  `json:"total_orders"`
	PendingOrders  int64  `json:"pending_orders"`
	TotalRevenue   string `json:"total_revenue"`
	CustomDesigns  int64  `json:"custom_designs"`
	PendingDesigns int64  `json:"pending_designs"`
}

// DashboardTrendPoint 趋势点
type DashboardTrendPoint struct {
	Date        string `json:"date"`
	OrdersTotal int64  `json:"orders_total"`
	Revenue     string `json:"revenue"`
}

// DashboardProductRanking 商品排行项
type DashboardProductRanking struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Orders    int64  `json:"orders"`
	Quantity  int64  `json:"quantity"`
	Amount    string `json:"amount"`
}

// GetOverview 获取仪表盘总览
func (s *DashboardService) GetOverview(ctx context.Context, forceRefresh bool) (*DashboardOverview, error) {
	if s == nil || s.repo == nil {
		return &DashboardOverview{TotalRevenue: formatMoneyValue(0)}, nil
	}
	load := func() (*DashboardOverview, error) {
		row, err := s.repo.GetOverview()
		if err != nil {
			return nil, err
		}
		return &DashboardOverview{
			TotalProducts:  row.TotalProducts,
			ActiveProducts: row.ActiveProducts,
			TotalOrders:    row.TotalOrders,
			PendingOrders:  row.PendingOrders,
			TotalRevenue:   formatMoneyValue(row.TotalRevenue),
			CustomDesigns:  row.CustomDesigns,
			PendingDesigns: row.PendingDesigns,
		}, nil
	}
	if forceRefresh {
		if err := cache.Del(ctx, dashboardOverviewKey); err != nil {
			logger.Warnw("dashboard_cache_invalidate_failed", "error", err)
		}
	}
	return cache.Remember(ctx, dashboardOverviewKey, dashboardCacheTTL, load)
}

// GetTrends 获取最近 N 天的订单趋势（缺失日期补零）
func (s *DashboardService) GetTrends(ctx context.Context, days int) ([]DashboardTrendPoint, error) {
	startAt, endAt := s.window(days)
	cacheKey := fmt.Sprintf("dashboard:trends:%d:%d", startAt.Unix(), endAt.Unix())
	return cache.Remember(ctx, cacheKey, dashboardCacheTTL, func() ([]DashboardTrendPoint, error) {
		rows, err := s.repo.GetOrderTrends(startAt, endAt)
		if err != nil {
			return nil, err
		}
		byDay := make(map[string]repository.DashboardOrderTrendRow, len(rows))
		for _, row := range rows {
			byDay[row.Day] = row
		}
		points := make([]DashboardTrendPoint, 0)
		for cursor := startAt; cursor.Before(endAt); cursor = cursor.AddDate(0, 0, 1) {
			day := cursor.Format("2006-01-02")
			row := byDay[day]
			points = append(points, DashboardTrendPoint{
				Date:        day,
				OrdersTotal: row.OrdersTotal,
				Revenue:     formatMoneyValue(row.Revenue),
			})
		}
		return points, nil
	})
}

// GetTopProducts 获取最近 N 天的热销商品
func (s *DashboardService) GetTopProducts(ctx context.Context, days, limit int) ([]DashboardProductRanking, error) {
	if limit <= 0 || limit > 50 {
		limit = dashboardDefaultLimit
	}
	startAt, endAt := s.window(days)
	rows, err := s.repo.GetTopProducts(startAt, endAt, limit)
	if err != nil {
		return nil, err
	}
	result := make([]DashboardProductRanking, 0, len(rows))
	for _, row := range rows {
		result = append(result, DashboardProductRanking{
			ProductID: row.ProductID,
			Title:     row.Title,
			Orders:    row.Orders,
			Quantity:  row.Quantity,
			Amount:    formatMoneyValue(row.Amount),
		})
	}
	return result, nil
}

func (s *DashboardService) window(days int) (time.Time, time.Time) {
	if days <= 0 {
		days = dashboardDefaultDays
	}
	if days > dashboardMaxDays {
		days = dashboardMaxDays
	}
	now := s.now().UTC()
	endAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return endAt.AddDate(0, 0, -days), endAt
}

func formatMoneyValue(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}
