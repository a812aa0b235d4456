package model

import "time"

// 在庫変動の履歴。注文確定の減算を同一トランザクション内で記録する。
type StockMovement struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductKind ProductKind `gorm:"type:varchar(10);not null;index" json:"product_type"`
	ProductID   int64       `gorm:"not null;index" json:"product_id"`
	OrderID     int64       `gorm:"not null;index" json:"order_id"`

	//減算は負の値
	Delta int64 `gorm:"not null" json:"delta"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
