package repository

import (
	"app/internal/domain/model"
	"context"
)

type InventoryRepository interface {
	// 在庫行をロックして現在値を返す（SELECT ... FOR UPDATE）。
	// commit/rollbackまでロックは保持される。
	LockStock(ctx context.Context, kind model.ProductKind, productID int64) (int64, error)

	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, kind model.ProductKind, productID int64, qty int64) (bool, error)

	// 変動履歴作成
	CreateMovement(ctx context.Context, m model.StockMovement) error
}
