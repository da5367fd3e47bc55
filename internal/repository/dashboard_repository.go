package repository

import (
	"fmt"
	"time"

	"github.com/qamees-next/internal/constants"
	"github.com/qamees-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview() (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	TotalProducts  int64
	ActiveProducts int64
	TotalOrders    int64
	PendingOrders  int64
	TotalRevenue   float64
	CustomDesigns  int64
	PendingDesigns int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day         string
	OrdersTotal int64
	Revenue     float64
}

// DashboardProductRankingRow 商品排行原始行
type DashboardProductRankingRow struct {
	ProductID string
	Title     string
	Orders    int64
	Quantity  int64
	Amount    float64
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetOverview 获取总览
func (r *GormDashboardRepository) GetOverview() (DashboardOverviewRow, error) {
	var row DashboardOverviewRow
	if err := r.db.Model(&models.Product{}).Count(&row.TotalProducts).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&row.ActiveProducts).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Order{}).Count(&row.TotalOrders).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Order{}).Where("status = ?", constants.OrderStatusPending).Count(&row.PendingOrders).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&row.TotalRevenue).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.CustomDesign{}).Count(&row.CustomDesigns).Error; err != nil {
		return row, err
	}
	if err := r.db.Model(&models.CustomDesign{}).Where("status = ?", constants.DesignStatusPending).Count(&row.PendingDesigns).Error; err != nil {
		return row, err
	}
	return row, nil
}

// GetOrderTrends 获取订单趋势
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type trendRow struct {
		Day     string
		Total   int64
		Revenue float64
	}

	var rows []trendRow
	dayExpr := dayBucket(r.db, "created_at")
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total, COALESCE(SUM(total_amount), 0) as revenue", dayExpr)).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]DashboardOrderTrendRow, 0, len(rows))
	for _, item := range rows {
		result = append(result, DashboardOrderTrendRow{
			Day:         item.Day,
			OrdersTotal: item.Total,
			Revenue:     item.Revenue,
		})
	}
	return result, nil
}

// GetTopProducts 获取商品排行榜（不含已取消订单）
func (r *GormDashboardRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]DashboardProductRankingRow, 0)
	if err := r.db.Model(&models.OrderItem{}).
		Select(`
			order_items.product_id as product_id,
			MAX(order_items.product_title) as title,
			COUNT(DISTINCT order_items.order_id) as orders,
			COALESCE(SUM(order_items.quantity), 0) as quantity,
			COALESCE(SUM(order_items.total_price), 0) as amount
		`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status <> ?", startAt, endAt, constants.OrderStatusCancelled).
		Group("order_items.product_id").
		Order("amount DESC, quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
