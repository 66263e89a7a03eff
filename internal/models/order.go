package models

import "time"

// Order 订单表（单商品订单）
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                      // 主键
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`                         // 顾客ID
	ProductID       uint      `gorm:"index;not null" json:"product_id"`                          // 商品ID
	Quantity        int       `gorm:"not null" json:"quantity"`                                  // 数量
	UnitPrice       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`   // 下单时单价
	TotalAmount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	ShippingAddress string    `gorm:"type:varchar(500)" json:"shipping_address"`                 // 收货地址
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`             // 订单状态
	OrderDate       time.Time `gorm:"index" json:"order_date"`                                   // 下单时间
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                                // 更新时间

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"` // 顾客
	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`              // 商品
	Products []Product `gorm:"many2many:order_products;" json:"products,omitempty"`        // 订单商品（关联表）
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
