package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name        string    `gorm:"type:varchar(200);not null;index" json:"name"`       // 名称
	Description string    `gorm:"type:text" json:"description"`                       // 描述
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Stock       int       `gorm:"not null;default:0" json:"stock"`                    // 库存数量
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`                 // 图片地址
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`                  // 分类ID
	SellerID    uint      `gorm:"not null;index" json:"seller_id"`                    // 卖家ID
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                         // 更新时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"` // 分类信息
	Seller   *Seller   `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"seller,omitempty"`      // 卖家信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
