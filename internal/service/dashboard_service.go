package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cart-it/internal/cache"
	"github.com/cart-it/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	dashboardCacheTTL     = 45 * time.Second
	dashboardDefaultDays  = 7
	dashboardMaxDays      = 90
	dashboardTopProductsN = 5
)

// DashboardService 仪表盘服务
// 说明：sellerID 为 0 时统计全站（管理员），否则只统计该卖家的商品。
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// DashboardQueryInput 仪表盘查询输入
type DashboardQueryInput struct {
	SellerID     uint
	Days         int
	ForceRefresh bool
}

// DashboardOverview 仪表盘响应
type DashboardOverview struct {
	SellerID    uint                      `json:"seller_id,omitempty"`
	Days        int                       `json:"days"`
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	KPI         DashboardKPI              `json:"kpi"`
	Trends      []DashboardTrendPoint     `json:"trends"`
	TopProducts []DashboardProductRanking `json:"top_products"`
}

// DashboardKPI 仪表盘核心指标
type DashboardKPI struct {
	Customers          int64  `json:"customers,omitempty"`
	Sellers            int64  `json:"sellers,omitempty"`
	Products           int64  `json:"products"`
	Categories         int64  `json:"categories,omitempty"`
	OrdersTotal        int64  `json:"orders_total"`
	PendingOrders      int64  `json:"pending_orders"`
	PaidOrders         int64  `json:"paid_orders"`
	CancelledOrders    int64  `json:"cancelled_orders"`
	Revenue            string `json:"revenue"`
	PaymentsTotal      int64  `json:"payments_total"`
	PaymentsCompleted  int64  `json:"payments_completed"`
	PaymentsFailed     int64  `json:"payments_failed"`
	PaymentSuccessRate string `json:"payment_success_rate"`
	Reviews            int64  `json:"reviews"`
	LowStockItems      int64  `json:"low_stock_items"`
}

// DashboardTrendPoint 趋势点
type DashboardTrendPoint struct {
	Date        string `json:"date"`
	OrdersTotal int64  `json:"orders_total"`
	Revenue     string `json:"revenue"`
}

// DashboardProductRanking 商品排行项
type DashboardProductRanking struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Orders    int64  `json:"orders"`
	Quantity  int64  `json:"quantity"`
	Revenue   string `json:"revenue"`
}

// GetOverview 获取仪表盘总览、趋势与商品排行
func (s *DashboardService) GetOverview(ctx context.Context, input DashboardQueryInput) (*DashboardOverview, error) {
	days := input.Days
	if days <= 0 {
		days = dashboardDefaultDays
	}
	if days > dashboardMaxDays {
		return nil, ErrInvalidInput
	}
	now := s.now()
	endAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	startAt := endAt.AddDate(0, 0, -days)

	cacheKey := fmt.Sprintf("dashboard:overview:%d:%d:%d", input.SellerID, days, startAt.Unix())
	if !input.ForceRefresh {
		var cached DashboardOverview
		if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	overview, err := s.repo.GetOverview(input.SellerID, startAt, endAt)
	if err != nil {
		return nil, err
	}
	trends, err := s.repo.GetOrderTrends(input.SellerID, startAt, endAt)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.GetTopProducts(input.SellerID, startAt, endAt, dashboardTopProductsN)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.CountLowStock(input.SellerID)
	if err != nil {
		return nil, err
	}

	successRate := 0.0
	if overview.PaymentsTotal > 0 {
		successRate = float64(overview.PaymentsCompleted) / float64(overview.PaymentsTotal) * 100
	}
	response := &DashboardOverview{
		SellerID: input.SellerID,
		Days:     days,
		From:     startAt.Format(time.RFC3339),
		To:       endAt.Add(-time.Second).Format(time.RFC3339),
		KPI: DashboardKPI{
			Customers:          overview.Customers,
			Sellers:            overview.Sellers,
			Products:           overview.Products,
			Categories:         overview.Categories,
			OrdersTotal:        overview.OrdersTotal,
			PendingOrders:      overview.PendingOrders,
			PaidOrders:         overview.PaidOrders,
			CancelledOrders:    overview.CancelledOrders,
			Revenue:            formatMoneyValue(overview.Revenue),
			PaymentsTotal:      overview.PaymentsTotal,
			PaymentsCompleted:  overview.PaymentsCompleted,
			PaymentsFailed:     overview.PaymentsFailed,
			PaymentSuccessRate: formatPercentValue(successRate),
			Reviews:            overview.Reviews,
			LowStockItems:      lowStock,
		},
		Trends:      make([]DashboardTrendPoint, 0, len(trends)),
		TopProducts: make([]DashboardProductRanking, 0, len(top)),
	}
	for _, row := range trends {
		response.Trends = append(response.Trends, DashboardTrendPoint{
			Date:        row.Day,
			OrdersTotal: row.OrdersTotal,
			Revenue:     formatMoneyValue(row.Revenue),
		})
	}
	for _, row := range top {
		response.TopProducts = append(response.TopProducts, DashboardProductRanking{
			ProductID: row.ProductID,
			Name:      row.Name,
			Orders:    row.Orders,
			Quantity:  row.Quantity,
			Revenue:   formatMoneyValue(row.Revenue),
		})
	}

	_ = cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL)
	return response, nil
}

func formatMoneyValue(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}

func formatPercentValue(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}
