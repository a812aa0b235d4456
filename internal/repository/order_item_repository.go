package repository

import (
	"app/internal/domain/model"
	"context"
)

// 明細の表示用ビュー。kindに応じて名前/画像を解決済み。
type OrderItemView struct {
	ProductKind model.ProductKind `json:"product_type"`
	Name        string            `json:"name"`
	Weight      string            `json:"weight,omitempty"`
	ImageURL    string            `json:"imageUrl"`
	Quantity    int64             `json:"quantity"`
	PriceAtTime int64             `json:"price_at_time"`
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error

	//商品名・画像を種別ごとのテーブルから解決して返す
	ListViewsByOrderID(ctx context.Context, orderID int64) ([]OrderItemView, error)
}
