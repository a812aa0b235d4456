package model

import "time"

// 注文明細。kindに応じてどちらか一方の商品FKだけが入る。
type OrderItem struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64       `gorm:"not null;index" json:"orderid"`
	ProductKind ProductKind `gorm:"type:varchar(10);not null" json:"product_type"`

	LechonProductID *int64 `gorm:"index" json:"productlechon_id,omitempty"`
	ViandProductID  *int64 `gorm:"index" json:"productviands_id,omitempty"`

	Quantity int64 `gorm:"not null" json:"quantity"`

	//注文時点の単価。カタログ価格が変わっても固定
	PriceAtTime int64 `gorm:"not null;column:price_at_time" json:"price_at_time"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
