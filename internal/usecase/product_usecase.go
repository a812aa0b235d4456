package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 公開カタログの業務ロジック
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /lechon-products。削除済みはrepo側で外れる
func (u *ProductUsecase) ListLechonProducts(ctx context.Context) ([]model.LechonProduct, error) {
	products, err := u.productRepo.ListLechon(ctx)
	if err != nil {
		return []model.LechonProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// GET /viands-products
func (u *ProductUsecase) ListViandProducts(ctx context.Context) ([]model.ViandProduct, error) {
	products, err := u.productRepo.ListViands(ctx)
	if err != nil {
		return []model.ViandProduct{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}
