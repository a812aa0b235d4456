package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "Placed"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusOutForDelivery OrderStatus = "OutForDelivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentGCash PaymentMethod = "gcash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentGCash
}

// 注文。注文確定トランザクションだけが作成する。
type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"orderid"`

	//同じチェックアウトの注文をまとめる人間向け識別子
	TrackingNumber string `gorm:"type:varchar(32);not null;uniqueIndex" json:"tracking_number"`

	CustomerID int64 `gorm:"not null;index" json:"customerid"`

	//明細数量の合計
	Quantity int64 `gorm:"not null" json:"quantity"`

	//配送料込みの合計（センタボ建て）
	TotalAmount int64 `gorm:"not null" json:"total_amount"`

	PaymentMethod   PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	DeliveryAddress string        `gorm:"type:varchar(255);not null" json:"delivery_address"`
	Status          OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"date"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
