package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		//追跡番号のユニーク制約（呼び出し側が番号を引き直して再試行する）
		if isUniqueViolation(err) {
			return 0, repo.ErrDuplicateTracking
		}
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 顧客の注文を新しい順に、表示用の顧客項目をJOINして返す
func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]repo.OrderWithCustomer, error) {
	var rows []repo.OrderWithCustomer
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("orders.*, customers.full_name, customers.email_address AS email, customers.contact_number").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.customer_id = ?", customerID).
		Order("orders.created_at desc").
		Order("orders.id desc").
		Find(&rows).Error
	if err != nil {
		return []repo.OrderWithCustomer{}, err
	}
	return rows, nil
}

func (r *OrderGormRepository) ListByTrackingNumber(ctx context.Context, trackingNumber string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// PostgresのSQLSTATE 23505（unique_violation）か
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
