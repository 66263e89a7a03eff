package repository

import "time"

// CustomerListFilter 查询顾客列表的过滤条件
type CustomerListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// SellerListFilter 查询卖家列表的过滤条件
type SellerListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// AdministratorListFilter 查询管理员列表的过滤条件
type AdministratorListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	SellerID     uint
	Search       string
	InStockOnly  bool
	WithCategory bool
}

// InventoryListFilter 查询库存记录的过滤条件
type InventoryListFilter struct {
	Page         int
	PageSize     int
	ProductID    uint
	SellerID     uint
	LowStockOnly bool
}

// CartListFilter 查询购物车的过滤条件
type CartListFilter struct {
	Page       int
	PageSize   int
	CustomerID uint
	ProductID  uint
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	ProductID   uint
	SellerID    uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PaymentListFilter 查询支付列表的过滤条件
type PaymentListFilter struct {
	Page          int
	PageSize      int
	CustomerID    uint
	OrderID       uint
	PaymentStatus string
	PaymentMethod string
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page       int
	PageSize   int
	CustomerID uint
	ProductID  uint
	MinRating  int
}
