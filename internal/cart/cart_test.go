package cart_test

import (
	"testing"

	"app/internal/cart"
	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func lechonLine(id int64, price int64, qty int64, available int64) cart.Line {
	return cart.Line{
		ProductID:    id,
		ProductKind:  model.KindLechon,
		Name:         "Whole Lechon",
		UnitPrice:    price,
		Quantity:     qty,
		AvailableQty: available,
	}
}

func TestCart_Add_NewLine(t *testing.T) {
	c := cart.New()

	ok := c.Add(lechonLine(1, 450000, 2, 5))
	assert.True(t, ok)
	assert.Equal(t, 1, len(c.Lines))
	assert.Equal(t, int64(900000), c.Total)
}

func TestCart_Add_SameProductAccumulates(t *testing.T) {
	c := cart.New()

	assert.True(t, c.Add(lechonLine(1, 450000, 2, 5)))
	assert.True(t, c.Add(lechonLine(1, 450000, 1, 5)))

	//行は増えず、数量だけ加算される
	assert.Equal(t, 1, len(c.Lines))
	assert.Equal(t, int64(3), c.Lines[0].Quantity)
	assert.Equal(t, int64(1350000), c.Total)
}

func TestCart_Add_DeclinedWhenExceedsStock(t *testing.T) {
	c := cart.New()

	assert.True(t, c.Add(lechonLine(1, 450000, 2, 2)))

	//在庫2に対して合計3は拒否。カートは変わらない
	ok := c.Add(lechonLine(1, 450000, 1, 2))
	assert.False(t, ok)
	assert.Equal(t, int64(2), c.Lines[0].Quantity)
	assert.Equal(t, int64(900000), c.Total)
}

func TestCart_Add_DeclinedNewLineOverStock(t *testing.T) {
	c := cart.New()

	ok := c.Add(lechonLine(1, 450000, 3, 2))
	assert.False(t, ok)
	assert.Equal(t, 0, len(c.Lines))
	assert.Equal(t, int64(0), c.Total)
}

func TestCart_Add_DeclinedZeroQuantity(t *testing.T) {
	c := cart.New()

	assert.False(t, c.Add(lechonLine(1, 450000, 0, 5)))
	assert.Equal(t, 0, len(c.Lines))
}

func TestCart_Add_RefreshesAvailabilitySnapshot(t *testing.T) {
	c := cart.New()

	assert.True(t, c.Add(lechonLine(1, 450000, 1, 2)))

	//再追加時は新しい在庫スナップショットに置き換わる
	assert.True(t, c.Add(lechonLine(1, 450000, 2, 5)))
	assert.Equal(t, int64(3), c.Lines[0].Quantity)
	assert.Equal(t, int64(5), c.Lines[0].AvailableQty)
}

func TestCart_UpdateQuantity_Success(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Add(lechonLine(1, 450000, 1, 5)))

	ok := c.UpdateQuantity(model.KindLechon, 1, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(4), c.Lines[0].Quantity)
	assert.Equal(t, int64(1800000), c.Total)
}

func TestCart_UpdateQuantity_DeclinedBelowOne(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Add(lechonLine(1, 450000, 2, 5)))

	assert.False(t, c.UpdateQuantity(model.KindLechon, 1, 0))
	assert.Equal(t, int64(2), c.Lines[0].Quantity)
}

func TestCart_UpdateQuantity_DeclinedOverSnapshot(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Add(lechonLine(1, 450000, 2, 3)))

	assert.False(t, c.UpdateQuantity(model.KindLechon, 1, 4))
	assert.Equal(t, int64(2), c.Lines[0].Quantity)
	assert.Equal(t, int64(900000), c.Total)
}

func TestCart_UpdateQuantity_DeclinedUnknownLine(t *testing.T) {
	c := cart.New()

	assert.False(t, c.UpdateQuantity(model.KindViand, 9, 1))
}

func TestCart_Remove(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Add(lechonLine(1, 450000, 1, 5)))
	assert.True(t, c.Add(cart.Line{
		ProductID:    7,
		ProductKind:  model.KindViand,
		Name:         "Dinuguan",
		UnitPrice:    25000,
		Quantity:     2,
		AvailableQty: 10,
	}))

	c.Remove(model.KindLechon, 1)
	assert.Equal(t, 1, len(c.Lines))
	assert.Equal(t, int64(50000), c.Total)

	//無い行の削除は何もしない
	c.Remove(model.KindLechon, 1)
	assert.Equal(t, 1, len(c.Lines))
}

func TestCart_SameIDDifferentKindAreSeparateLines(t *testing.T) {
	c := cart.New()

	assert.True(t, c.Add(lechonLine(1, 450000, 1, 5)))
	assert.True(t, c.Add(cart.Line{
		ProductID:    1,
		ProductKind:  model.KindViand,
		Name:         "Lumpia",
		UnitPrice:    15000,
		Quantity:     1,
		AvailableQty: 5,
	}))

	assert.Equal(t, 2, len(c.Lines))
}

func TestCart_Clear(t *testing.T) {
	c := cart.New()
	assert.True(t, c.Add(lechonLine(1, 450000, 2, 5)))

	c.Clear()
	assert.Equal(t, 0, len(c.Lines))
	assert.Equal(t, int64(0), c.Total)
}

func TestCart_FromLines_RecomputesTotal(t *testing.T) {
	c := cart.FromLines([]cart.Line{
		lechonLine(1, 450000, 2, 5),
		{ProductID: 2, ProductKind: model.KindViand, UnitPrice: 25000, Quantity: 3, AvailableQty: 8},
	})

	assert.Equal(t, int64(975000), c.Total)
}

// P3: どの操作列の後でも quantity <= availableQty を保つ
func TestCart_CapacityInvariantHeldAfterMixedOps(t *testing.T) {
	c := cart.New()

	c.Add(lechonLine(1, 450000, 2, 3))
	c.Add(lechonLine(1, 450000, 2, 3)) //decline
	c.UpdateQuantity(model.KindLechon, 1, 3)
	c.UpdateQuantity(model.KindLechon, 1, 5) //decline
	c.Add(cart.Line{ProductID: 2, ProductKind: model.KindViand, UnitPrice: 100, Quantity: 1, AvailableQty: 1})

	for _, l := range c.Lines {
		assert.True(t, l.Quantity >= 1)
		assert.True(t, l.Quantity <= l.AvailableQty)
	}
}
