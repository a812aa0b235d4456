package repository

import (
	"app/internal/cart"
	"context"
)

// カートの永続化（load/save/clear）。
// 集約ロジックを保存媒体から切り離すための窓口。
type CartStore interface {
	//保存済みのカートを復元する。無ければ空のカート
	Load(ctx context.Context, customerID int64) (*cart.Cart, error)

	//カート全体を置き換えて保存する
	Save(ctx context.Context, customerID int64, c *cart.Cart) error

	//保存済みカートを消す
	Clear(ctx context.Context, customerID int64) error
}
