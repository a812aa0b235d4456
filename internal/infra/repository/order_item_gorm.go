package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

// 明細を種別ごとのテーブルとLEFT JOINして、名前・重さ・画像を解決する
func (r *OrderItemGormRepository) ListViewsByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemView, error) {
	var views []repo.OrderItemView
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select(`order_items.product_kind,
			order_items.quantity,
			order_items.price_at_time,
			CASE
				WHEN order_items.product_kind = 'lechon' THEN pl.type
				ELSE pv.name
			END AS name,
			CASE
				WHEN order_items.product_kind = 'lechon' THEN pl.weight
				ELSE ''
			END AS weight,
			CASE
				WHEN order_items.product_kind = 'lechon' THEN pl.image_url
				ELSE pv.image_url
			END AS image_url`).
		Joins("LEFT JOIN lechon_products pl ON pl.id = order_items.lechon_product_id").
		Joins("LEFT JOIN viand_products pv ON pv.id = order_items.viand_product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Find(&views).Error
	if err != nil {
		return []repo.OrderItemView{}, err
	}
	return views, nil
}
