package model

import (
	"time"

	"gorm.io/gorm"
)

// 商品種別（レチョン丸焼き / ビアンド惣菜）
type ProductKind string

const (
	KindLechon ProductKind = "lechon"
	KindViand  ProductKind = "viands"
)

// 種別が正しいか
func (k ProductKind) Valid() bool {
	return k == KindLechon || k == KindViand
}

// レチョン（丸焼き）商品。重さ単位で価格が決まる。
type LechonProduct struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"productid"`
	Type        string `gorm:"type:varchar(255);not null" json:"name"`
	Weight      string `gorm:"type:varchar(50);not null" json:"weight"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:varchar(255);column:image_url" json:"imageUrl"`

	//価格はセンタボ建て（₱1 = 100）
	Price int64 `gorm:"not null" json:"price"`

	//販売可能数。注文確定でのみ減算される
	Quantity int64 `gorm:"not null" json:"quantity"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ビアンド（惣菜）商品。人前単位。
type ViandProduct struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:varchar(255);column:image_url" json:"imageSrc"`

	//何人前か
	Serves int `gorm:"not null" json:"servings"`

	Price    int64 `gorm:"not null" json:"price"`
	Quantity int64 `gorm:"not null" json:"quantity"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
