package models

import "time"

// ProductInventory 商品库存记录
type ProductInventory struct {
	ID              uint       `gorm:"primarykey" json:"id"`                    // 主键
	ProductID       uint       `gorm:"not null;index" json:"product_id"`        // 商品ID
	CurrentStock    int        `gorm:"not null;default:0" json:"current_stock"` // 当前库存
	MinimumStock    int        `gorm:"not null;default:0" json:"minimum_stock"` // 最低库存
	LastRestockDate *time.Time `json:"last_restock_date"`                       // 上次补货时间
	NextRestockDate *time.Time `json:"next_restock_date"`                       // 下次补货时间
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt       time.Time  `json:"updated_at"`                              // 更新时间

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductInventory) TableName() string {
	return "product_inventories"
}

// IsLowStock 当前库存不高于最低库存
func (p ProductInventory) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
