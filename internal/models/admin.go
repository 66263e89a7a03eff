package models

import "time"

// Administrator 管理员表
type Administrator struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                // 主键
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`              // 名称
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"` // 登录邮箱
	PasswordHash string     `gorm:"not null" json:"-"`                                   // 密码哈希（不返回给前端）
	LastLoginAt  *time.Time `json:"last_login_at"`                                       // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                                          // 更新时间
}

// TableName 指定表名
func (Administrator) TableName() string {
	return "administrators"
}
