package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の種別横断ビュー。カート検証・注文確定・明細解決で使う。
type ProductSnapshot struct {
	ID       int64
	Kind     model.ProductKind
	Name     string
	Price    int64
	Quantity int64
	ImageURL string

	//lechonのみ
	Weight string
	//viandsのみ
	Serves int
}

// 商品の取得だけを約束。削除済み（soft delete）は見えない。
type ProductRepository interface {
	//レチョン商品の一覧
	ListLechon(ctx context.Context) ([]model.LechonProduct, error)

	//ビアンド商品の一覧
	ListViands(ctx context.Context) ([]model.ViandProduct, error)

	//種別＋IDで1件取得
	FindByKind(ctx context.Context, kind model.ProductKind, id int64) (ProductSnapshot, error)
}
