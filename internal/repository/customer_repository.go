package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// 顧客が見つかりませんを統一
var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository interface {
	//新規顧客作成
	Create(ctx context.Context, customer *model.Customer) error

	// emailから1件取得。見つからなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)

	// IDから1件取得
	FindByID(ctx context.Context, customerID int64) (*model.Customer, error)

	//プロフィール更新
	Update(ctx context.Context, customer *model.Customer) error
}
