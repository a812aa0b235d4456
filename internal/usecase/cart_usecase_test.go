package usecase_test

import (
	"context"
	"testing"

	"app/internal/cart"
	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Load(ctx context.Context, customerID int64) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *CartStoreMock) Save(ctx context.Context, customerID int64, c *cart.Cart) error {
	args := m.Called(ctx, customerID, c)
	return args.Error(0)
}

func (m *CartStoreMock) Clear(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) ListLechon(ctx context.Context) ([]model.LechonProduct, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) ListViands(ctx context.Context) ([]model.ViandProduct, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByKind(ctx context.Context, kind model.ProductKind, id int64) (repo.ProductSnapshot, error) {
	args := m.Called(ctx, kind, id)
	snap, _ := args.Get(0).(repo.ProductSnapshot)
	return snap, args.Error(1)
}

func newCartFixture() (*CartStoreMock, *CartProductRepoMock, *usecase.CartUsecase) {
	store := new(CartStoreMock)
	products := new(CartProductRepoMock)
	return store, products, usecase.NewCartUsecase(store, products)
}

func TestCartUsecase_GetCart_Empty(t *testing.T) {
	store, _, uc := newCartFixture()
	store.On("Load", mock.Anything, int64(42)).Return(cart.New(), nil)

	out, err := uc.GetCart(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, int64(0), out.Total)
}

func TestCartUsecase_AddToCart_Success(t *testing.T) {
	store, products, uc := newCartFixture()

	products.On("FindByKind", mock.Anything, model.KindViand, int64(7)).
		Return(repo.ProductSnapshot{ID: 7, Kind: model.KindViand, Name: "Dinuguan", Price: 25000, Quantity: 9}, nil)
	store.On("Load", mock.Anything, int64(42)).Return(cart.New(), nil)
	store.On("Save", mock.Anything, int64(42), mock.Anything).Return(nil)

	out, err := uc.AddToCart(context.Background(), 42, usecase.AddCartInput{
		ProductID: 7, Kind: model.KindViand, Quantity: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(2*25000), out.Total)
	store.AssertExpectations(t)
}

func TestCartUsecase_AddToCart_AccumulatesSameProduct(t *testing.T) {
	store, products, uc := newCartFixture()

	products.On("FindByKind", mock.Anything, model.KindViand, int64(7)).
		Return(repo.ProductSnapshot{ID: 7, Kind: model.KindViand, Name: "Dinuguan", Price: 25000, Quantity: 9}, nil)

	existing := cart.FromLines([]cart.Line{
		{ProductID: 7, ProductKind: model.KindViand, Name: "Dinuguan", UnitPrice: 25000, Quantity: 1, AvailableQty: 9},
	})
	store.On("Load", mock.Anything, int64(42)).Return(existing, nil)
	store.On("Save", mock.Anything, int64(42), mock.Anything).Return(nil)

	out, err := uc.AddToCart(context.Background(), 42, usecase.AddCartInput{
		ProductID: 7, Kind: model.KindViand, Quantity: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(3), out.Items[0].Quantity)
}

func TestCartUsecase_AddToCart_DeclinesOverStock(t *testing.T) {
	store, products, uc := newCartFixture()

	products.On("FindByKind", mock.Anything, model.KindLechon, int64(1)).
		Return(repo.ProductSnapshot{ID: 1, Kind: model.KindLechon, Name: "Whole Lechon", Price: 450000, Quantity: 2}, nil)

	existing := cart.FromLines([]cart.Line{
		{ProductID: 1, ProductKind: model.KindLechon, Name: "Whole Lechon", UnitPrice: 450000, Quantity: 2, AvailableQty: 2},
	})
	store.On("Load", mock.Anything, int64(42)).Return(existing, nil)

	_, err := uc.AddToCart(context.Background(), 42, usecase.AddCartInput{
		ProductID: 1, Kind: model.KindLechon, Quantity: 1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Equal(t, "only 2 available for Whole Lechon", he.Message)

	//拒否時は保存しない
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_UnknownProduct(t *testing.T) {
	_, products, uc := newCartFixture()

	products.On("FindByKind", mock.Anything, model.KindLechon, int64(99)).
		Return(repo.ProductSnapshot{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 42, usecase.AddCartInput{
		ProductID: 99, Kind: model.KindLechon, Quantity: 1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_UpdateCartLine_DeclinesOverSnapshot(t *testing.T) {
	store, _, uc := newCartFixture()

	existing := cart.FromLines([]cart.Line{
		{ProductID: 1, ProductKind: model.KindLechon, Name: "Whole Lechon", UnitPrice: 450000, Quantity: 2, AvailableQty: 3},
	})
	store.On("Load", mock.Anything, int64(42)).Return(existing, nil)

	_, err := uc.UpdateCartLine(context.Background(), 42, usecase.UpdateCartLineInput{
		ProductID: 1, Kind: model.KindLechon, Quantity: 4,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_UpdateCartLine_LineNotFound(t *testing.T) {
	store, _, uc := newCartFixture()
	store.On("Load", mock.Anything, int64(42)).Return(cart.New(), nil)

	_, err := uc.UpdateCartLine(context.Background(), 42, usecase.UpdateCartLineInput{
		ProductID: 1, Kind: model.KindLechon, Quantity: 1,
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestCartUsecase_RemoveFromCart_MissingLineIsNoop(t *testing.T) {
	store, _, uc := newCartFixture()

	existing := cart.FromLines([]cart.Line{
		{ProductID: 7, ProductKind: model.KindViand, Name: "Dinuguan", UnitPrice: 25000, Quantity: 1, AvailableQty: 9},
	})
	store.On("Load", mock.Anything, int64(42)).Return(existing, nil)
	store.On("Save", mock.Anything, int64(42), mock.Anything).Return(nil)

	out, err := uc.RemoveFromCart(context.Background(), 42, model.KindLechon, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(25000), out.Total)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	store, _, uc := newCartFixture()
	store.On("Clear", mock.Anything, int64(42)).Return(nil)

	err := uc.ClearCart(context.Background(), 42)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCartUsecase_GetCart_Unauthorized(t *testing.T) {
	_, _, uc := newCartFixture()

	_, err := uc.GetCart(context.Background(), 0)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}
