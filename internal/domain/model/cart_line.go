package model

import "time"

// 永続化されたカート明細。顧客ごとに (kind, product) で1行。
type CartLine struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64       `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"customerid"`
	ProductKind ProductKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_customer_product" json:"product_type"`
	ProductID   int64       `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"priceid"`

	Quantity int64 `gorm:"not null" json:"quantity"`

	//追加/検証時点の在庫スナップショット
	AvailableQty int64 `gorm:"not null" json:"availableQuantity"`

	//追加時点の表示用スナップショット
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	ImageURL  string `gorm:"type:varchar(255);column:image_url" json:"imageUrl"`
	UnitPrice int64  `gorm:"not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
