package models

import "time"

// Review 商品评价表
type Review struct {
	ID         uint      `gorm:"primarykey" json:"id"`              // 主键
	CustomerID uint      `gorm:"index;not null" json:"customer_id"` // 顾客ID
	ProductID  uint      `gorm:"index;not null" json:"product_id"`  // 商品ID
	Rating     int       `gorm:"not null" json:"rating"`            // 评分 1-5
	ReviewText string    `gorm:"type:text" json:"review_text"`      // 评价内容
	ReviewDate time.Time `gorm:"index" json:"review_date"`          // 评价时间
	CreatedAt  time.Time `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                        // 更新时间

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"` // 顾客
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`  // 商品
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
