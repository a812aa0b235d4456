package model

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// 顧客アカウント
type Customer struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"customerid"`
	FullName string `gorm:"type:varchar(255);not null" json:"fullname"`

	//デフォルトの配送先（チェックアウト時に上書き可能）
	Address string `gorm:"type:varchar(255)" json:"address"`

	ContactNumber string `gorm:"type:varchar(30);not null" json:"contactnumber"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null;column:email_address" json:"emailaddress"`
	PasswordHash  string `gorm:"column:password_hash;not null" json:"-"`
	Role          Role   `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
