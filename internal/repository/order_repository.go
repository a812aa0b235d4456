package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// tracking_numberのユニーク制約に当たったとき
var ErrDuplicateTracking = errors.New("duplicate tracking number")

// 注文一覧用の顧客表示項目付きビュー
type OrderWithCustomer struct {
	model.Order
	FullName      string
	Email         string
	ContactNumber string
}

type OrderRepository interface {
	//追跡番号が重複していたら ErrDuplicateTracking
	Create(ctx context.Context, order model.Order) (int64, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//顧客の注文を新しい順で返す
	ListByCustomerID(ctx context.Context, customerID int64) ([]OrderWithCustomer, error)

	//同じチェックアウトの注文をまとめて返す
	ListByTrackingNumber(ctx context.Context, trackingNumber string) ([]model.Order, error)
}
