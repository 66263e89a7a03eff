package models

import "time"

// Seller 卖家表
type Seller struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                // 主键
	CompanyName       string    `gorm:"type:varchar(200);not null" json:"company_name"`      // 公司名称
	ContactName       string    `gorm:"type:varchar(100)" json:"contact_name"`               // 联系人
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash      string    `gorm:"not null" json:"-"`                                   // 密码哈希（不返回给前端）
	Phone             string    `gorm:"type:varchar(50)" json:"phone"`                       // 电话
	Address           string    `gorm:"type:varchar(255)" json:"address"`                    // 地址
	BankAccountNumber string    `gorm:"type:varchar(64)" json:"bank_account_number"`         // 银行账号
	BankName          string    `gorm:"type:varchar(100)" json:"bank_name"`                  // 开户行
	TaxID             string    `gorm:"type:varchar(64)" json:"tax_id"`                      // 税号
	CreatedAt         time.Time `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Seller) TableName() string {
	return "sellers"
}
