package repository

import (
	"fmt"
	"time"

	"github.com/cart-it/internal/constants"
	"github.com/cart-it/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。sellerID 为 0 表示全站。
type DashboardRepository interface {
	GetOverview(sellerID uint, startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(sellerID uint, startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetTopProducts(sellerID uint, startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
	CountLowStock(sellerID uint) (int64, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	Customers         int64
	Sellers           int64
	Products          int64
	Categories        int64
	OrdersTotal       int64
	PendingOrders     int64
	PaidOrders        int64
	CancelledOrders   int64
	Revenue           float64
	PaymentsTotal     int64
	PaymentsCompleted int64
	PaymentsFailed    int64
	Reviews           int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day         string
	OrdersTotal int64
	Revenue     float64
}

// DashboardProductRankingRow 商品排行原始行
type DashboardProductRankingRow struct {
	ProductID uint
	Name      string
	Orders    int64
	Quantity  int64
	Revenue   float64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// settledOrderStatuses 计入营收的订单状态
func settledOrderStatuses() []string {
	return []string{
		constants.OrderStatusPaid,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
	}
}

func (r *GormDashboardRepository) sellerProductIDs(sellerID uint) *gorm.DB {
	return r.db.Model(&models.Product{}).Select("id").Where("seller_id = ?", sellerID)
}

func (r *GormDashboardRepository) orderBase(sellerID uint, startAt, endAt time.Time) *gorm.DB {
	query := r.db.Model(&models.Order{}).Where("orders.order_date >= ? AND orders.order_date < ?", startAt, endAt)
	if sellerID != 0 {
		query = query.Where("orders.product_id IN (?)", r.sellerProductIDs(sellerID))
	}
	return query
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(sellerID uint, startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	if sellerID == 0 {
		if err := r.db.Model(&models.Customer{}).Count(&result.Customers).Error; err != nil {
			return result, err
		}
		if err := r.db.Model(&models.Seller{}).Count(&result.Sellers).Error; err != nil {
			return result, err
		}
		if err := r.db.Model(&models.Category{}).Count(&result.Categories).Error; err != nil {
			return result, err
		}
	}

	productQuery := r.db.Model(&models.Product{})
	if sellerID != 0 {
		productQuery = productQuery.Where("seller_id = ?", sellerID)
	}
	if err := productQuery.Count(&result.Products).Error; err != nil {
		return result, err
	}

	if err := r.orderBase(sellerID, startAt, endAt).Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := r.orderBase(sellerID, startAt, endAt).
		Where("orders.status = ?", constants.OrderStatusPending).
		Count(&result.PendingOrders).Error; err != nil {
		return result, err
	}
	if err := r.orderBase(sellerID, startAt, endAt).
		Where("orders.status IN ?", settledOrderStatuses()).
		Count(&result.PaidOrders).Error; err != nil {
		return result, err
	}
	if err := r.orderBase(sellerID, startAt, endAt).
		Where("orders.status = ?", constants.OrderStatusCancelled).
		Count(&result.CancelledOrders).Error; err != nil {
		return result, err
	}
	if err := r.orderBase(sellerID, startAt, endAt).
		Where("orders.status IN ?", settledOrderStatuses()).
		Select("COALESCE(SUM(orders.total_amount), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}

	paymentBase := func() *gorm.DB {
		query := r.db.Model(&models.Payment{}).
			Where("payment_date >= ? AND payment_date < ?", startAt, endAt)
		if sellerID != 0 {
			query = query.Where("order_id IN (?)",
				r.db.Model(&models.Order{}).Select("id").Where("product_id IN (?)", r.sellerProductIDs(sellerID)))
		}
		return query
	}
	if err := paymentBase().Count(&result.PaymentsTotal).Error; err != nil {
		return result, err
	}
	if err := paymentBase().Where("payment_status = ?", constants.PaymentStatusCompleted).Count(&result.PaymentsCompleted).Error; err != nil {
		return result, err
	}
	if err := paymentBase().Where("payment_status = ?", constants.PaymentStatusFailed).Count(&result.PaymentsFailed).Error; err != nil {
		return result, err
	}

	reviewQuery := r.db.Model(&models.Review{})
	if sellerID != 0 {
		reviewQuery = reviewQuery.Where("product_id IN (?)", r.sellerProductIDs(sellerID))
	}
	if err := reviewQuery.Count(&result.Reviews).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetOrderTrends 获取订单趋势
func (r *GormDashboardRepository) GetOrderTrends(sellerID uint, startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	type trendRow struct {
		Day     string
		Total   int64
		Revenue float64
	}
	dayExpr := dayExprByDialect(dbDialectName(r.db), "orders.order_date")
	revenueExpr := "COALESCE(SUM(CASE WHEN orders.status IN ? THEN orders.total_amount ELSE 0 END), 0)"

	var rows []trendRow
	if err := r.orderBase(sellerID, startAt, endAt).
		Select(fmt.Sprintf("%s as day, COUNT(*) as total, %s as revenue", dayExpr, revenueExpr), settledOrderStatuses()).
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

// GetTopProducts 获取商品排行榜
func (r *GormDashboardRepository) GetTopProducts(sellerID uint, startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows := make([]DashboardProductRankingRow, 0)
	if err := r.orderBase(sellerID, startAt, endAt).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.status IN ?", settledOrderStatuses()).
		Select("orders.product_id as product_id, products.name as name, COUNT(*) as orders, " +
			"COALESCE(SUM(orders.quantity), 0) as quantity, COALESCE(SUM(orders.total_amount), 0) as revenue").
		Group("orders.product_id, products.name").
		Order("revenue desc, orders.product_id asc").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountLowStock 统计库存低于阈值的库存记录
func (r *GormDashboardRepository) CountLowStock(sellerID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.ProductInventory{}).Where("current_stock <= minimum_stock")
	if sellerID != 0 {
		query = query.Where("product_id IN (?)", r.sellerProductIDs(sellerID))
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
