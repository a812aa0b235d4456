package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type customerGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでnewしてusecaseに注入する。
func NewCustomerGormRepository(db *gorm.DB) domainrepo.CustomerRepository {
	return &customerGormRepository{db: db}
}

// 顧客を新規作成
func (r *customerGormRepository) Create(ctx context.Context, customer *model.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return err
	}
	return nil
}

// emailで1件取得。見つからなければ (nil, nil)
func (r *customerGormRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Where("email_address = ?", email).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// IDで1件取得
func (r *customerGormRepository) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Where("id = ?", customerID).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrCustomerNotFound
		}
		return nil, err
	}

	return &c, nil
}

// 顧客を更新
func (r *customerGormRepository) Update(ctx context.Context, customer *model.Customer) error {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return err
	}
	return nil
}
