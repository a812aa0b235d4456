package repository

import (
	"context"

	"app/internal/cart"
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// CartStoreのGORM実装。顧客ごとにcart_linesの行として永続化する。
type CartGormStore struct {
	db *gorm.DB
}

// DI
func NewCartGormStore(db *gorm.DB) *CartGormStore {
	return &CartGormStore{db: db}
}

// 保存済みの行から集約を復元する。無ければ空のカート
func (s *CartGormStore) Load(ctx context.Context, customerID int64) (*cart.Cart, error) {
	var rows []model.CartLine
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, cart.Line{
			ProductID:    row.ProductID,
			ProductKind:  row.ProductKind,
			Name:         row.Name,
			ImageURL:     row.ImageURL,
			UnitPrice:    row.UnitPrice,
			Quantity:     row.Quantity,
			AvailableQty: row.AvailableQty,
		})
	}

	return cart.FromLines(lines), nil
}

// カート全体を置き換えて保存する（delete → insertを1トランザクションで）
func (s *CartGormStore) Save(ctx context.Context, customerID int64, c *cart.Cart) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", customerID).Delete(&model.CartLine{}).Error; err != nil {
			return err
		}

		if len(c.Lines) == 0 {
			return nil
		}

		rows := make([]model.CartLine, 0, len(c.Lines))
		for _, l := range c.Lines {
			rows = append(rows, model.CartLine{
				CustomerID:   customerID,
				ProductKind:  l.ProductKind,
				ProductID:    l.ProductID,
				Quantity:     l.Quantity,
				AvailableQty: l.AvailableQty,
				Name:         l.Name,
				ImageURL:     l.ImageURL,
				UnitPrice:    l.UnitPrice,
			})
		}
		return tx.Create(&rows).Error
	})
}

// 保存済みカートを消す
func (s *CartGormStore) Clear(ctx context.Context, customerID int64) error {
	return s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartLine{}).Error
}
