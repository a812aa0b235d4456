package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫行をSELECT ... FOR UPDATEでロックして現在値を返す。
// トランザクション内で呼ぶこと。ロックはcommit/rollbackまで保持される。
func (r *InventoryGormRepository) LockStock(ctx context.Context, kind model.ProductKind, productID int64) (int64, error) {
	switch kind {
	case model.KindLechon:
		var p model.LechonProduct
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repo.ErrNotFound
		}
		if err != nil {
			return 0, err
		}
		return p.Quantity, nil

	case model.KindViand:
		var p model.ViandProduct
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repo.ErrNotFound
		}
		if err != nil {
			return 0, err
		}
		return p.Quantity, nil

	default:
		return 0, repo.ErrNotFound
	}
}

// 在庫が足りるときだけ減らす
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, kind model.ProductKind, productID int64, qty int64) (bool, error) {
	var res *gorm.DB

	switch kind {
	case model.KindLechon:
		res = r.db.WithContext(ctx).
			Model(&model.LechonProduct{}).
			Where("id = ? AND quantity >= ?", productID, qty).
			Update("quantity", gorm.Expr("quantity - ?", qty))
	case model.KindViand:
		res = r.db.WithContext(ctx).
			Model(&model.ViandProduct{}).
			Where("id = ? AND quantity >= ?", productID, qty).
			Update("quantity", gorm.Expr("quantity - ?", qty))
	default:
		return false, repo.ErrNotFound
	}

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 変動履歴作成
func (r *InventoryGormRepository) CreateMovement(ctx context.Context, m model.StockMovement) error {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	return nil
}
