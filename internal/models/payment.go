package models

import "time"

// Payment 支付记录表
type Payment struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID       uint      `gorm:"index;not null" json:"order_id"`                             // 订单ID
	CustomerID    uint      `gorm:"index;not null" json:"customer_id"`                          // 顾客ID
	AmountToPay   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount_to_pay"` // 应付金额（等于订单总额）
	PaymentMethod string    `gorm:"type:varchar(30);not null" json:"payment_method"`            // 支付方式
	PaymentStatus string    `gorm:"type:varchar(20);index;not null" json:"payment_status"`      // 支付状态
	PaymentDate   time.Time `gorm:"index" json:"payment_date"`                                  // 支付时间
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                                 // 更新时间

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"` // 关联订单
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
