package models

import "time"

// Customer 顾客表
type Customer struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                // 主键
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`        // 名
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`         // 姓
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash string    `gorm:"not null" json:"-"`                                   // 密码哈希（不返回给前端）
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`                       // 电话
	Address      string    `gorm:"type:varchar(255)" json:"address"`                    // 地址
	City         string    `gorm:"type:varchar(100)" json:"city"`                       // 城市
	State        string    `gorm:"type:varchar(100)" json:"state"`                      // 州/省
	PostalCode   string    `gorm:"type:varchar(20)" json:"postal_code"`                 // 邮编
	Country      string    `gorm:"type:varchar(100)" json:"country"`                    // 国家
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// FullName 返回姓名
func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
