package models

import "time"

// Cart 购物车行（每个顾客每个商品一行）
type Cart struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                              // 主键
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"customer_id"` // 顾客ID
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"product_id"`  // 商品ID
	Quantity   int       `gorm:"not null" json:"quantity"`                                          // 数量
	Amount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`               // 金额（单价 × 数量）
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                                        // 更新时间

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}
