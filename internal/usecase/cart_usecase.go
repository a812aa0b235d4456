package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecaseは /cart の業務ロジック。
// 集約の容量チェックはあくまで助言的で、確定時の在庫チェックが正
type CartUsecase struct {
	store       repo.CartStore
	productRepo repo.ProductRepository
}

func NewCartUsecase(store repo.CartStore, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{store: store, productRepo: productRepo}
}

type CartResponse struct {
	Items []cart.Line `json:"items"`
	Total int64       `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Kind      model.ProductKind
	Quantity  int64
}

type UpdateCartLineInput struct {
	ProductID int64
	Kind      model.ProductKind
	Quantity  int64
}

// カート取得（無ければ空）
func (u *CartUsecase) GetCart(ctx context.Context, customerID int64) (CartResponse, error) {
	if customerID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	c, err := u.store.Load(ctx, customerID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{Items: c.Lines, Total: c.Total}, nil
}

// カートに追加。同一商品は数量加算。在庫超過なら拒否してカートは変えない
func (u *CartUsecase) AddToCart(ctx context.Context, customerID int64, in AddCartInput) (CartResponse, error) {
	if customerID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if !in.Kind.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_type")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品と最新在庫のスナップショット
	snap, err := u.productRepo.FindByKind(ctx, in.Kind, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c, err := u.store.Load(ctx, customerID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ok := c.Add(cart.Line{
		ProductID:    snap.ID,
		ProductKind:  snap.Kind,
		Name:         snap.Name,
		ImageURL:     snap.ImageURL,
		UnitPrice:    snap.Price,
		Quantity:     in.Quantity,
		AvailableQty: snap.Quantity,
	})
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("only %d available for %s", snap.Quantity, snap.Name))
	}

	if err := u.store.Save(ctx, customerID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{Items: c.Lines, Total: c.Total}, nil
}

// 数量変更。記録済みの在庫スナップショットを上限とする
func (u *CartUsecase) UpdateCartLine(ctx context.Context, customerID int64, in UpdateCartLineInput) (CartResponse, error) {
	if customerID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 || !in.Kind.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	c, err := u.store.Load(ctx, customerID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	line, found := c.Find(in.Kind, in.ProductID)
	if !found {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if !c.UpdateQuantity(in.Kind, in.ProductID, in.Quantity) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("only %d available for %s", line.AvailableQty, line.Name))
	}

	if err := u.store.Save(ctx, customerID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{Items: c.Lines, Total: c.Total}, nil
}

// 行の削除。無ければ何もしないで現状を返す
func (u *CartUsecase) RemoveFromCart(ctx context.Context, customerID int64, kind model.ProductKind, productID int64) (CartResponse, error) {
	if customerID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 || !kind.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.store.Load(ctx, customerID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Remove(kind, productID)

	if err := u.store.Save(ctx, customerID, c); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartResponse{Items: c.Lines, Total: c.Total}, nil
}

// カートを空にする
func (u *CartUsecase) ClearCart(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.store.Clear(ctx, customerID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
