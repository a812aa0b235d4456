package cart

import "app/internal/domain/model"

// カート明細。identityは (kind, productID) で、1商品につき1行。
type Line struct {
	ProductID   int64             `json:"priceid"`
	ProductKind model.ProductKind `json:"product_type"`

	//追加時点の表示用スナップショット
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	UnitPrice int64  `json:"price"`

	Quantity int64 `json:"quantity"`

	//追加/検証時点の在庫スナップショット。quantityの上限
	AvailableQty int64 `json:"availableQuantity"`
}

// チェックアウト前の明細集合。全明細で 0 < quantity <= availableQty を保つ。
// 容量超過は falseで拒否し、状態は一切変えない。
type Cart struct {
	Lines []Line `json:"lines"`
	Total int64  `json:"total"`
}

func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// 永続化済みの明細からカートを復元する。
func FromLines(lines []Line) *Cart {
	c := &Cart{Lines: lines}
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	c.recalc()
	return c
}

// Addはカートに追加。同一商品は数量加算。
// item.Quantityが追加したい数量、item.AvailableQtyが最新の在庫スナップショット。
func (c *Cart) Add(item Line) bool {
	if item.Quantity < 1 || !item.ProductKind.Valid() {
		return false
	}

	for i := range c.Lines {
		l := &c.Lines[i]
		if l.ProductKind != item.ProductKind || l.ProductID != item.ProductID {
			continue
		}

		newQty := l.Quantity + item.Quantity
		if newQty > item.AvailableQty {
			return false
		}

		l.Quantity = newQty
		l.AvailableQty = item.AvailableQty
		c.recalc()
		return true
	}

	//新規行
	if item.Quantity > item.AvailableQty {
		return false
	}
	c.Lines = append(c.Lines, item)
	c.recalc()
	return true
}

// 数量を置き換える。1未満・在庫超過・行が無いときは拒否。
func (c *Cart) UpdateQuantity(kind model.ProductKind, productID int64, newQty int64) bool {
	if newQty < 1 {
		return false
	}

	for i := range c.Lines {
		l := &c.Lines[i]
		if l.ProductKind != kind || l.ProductID != productID {
			continue
		}
		if newQty > l.AvailableQty {
			return false
		}
		l.Quantity = newQty
		c.recalc()
		return true
	}

	return false
}

// 行を削除。無ければ何もしない。
func (c *Cart) Remove(kind model.ProductKind, productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductKind == kind && c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.recalc()
			return
		}
	}
}

// 全行を空にする。
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.Total = 0
}

func (c *Cart) Find(kind model.ProductKind, productID int64) (Line, bool) {
	for _, l := range c.Lines {
		if l.ProductKind == kind && l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}

// 合計は変更のたびに再計算する。
func (c *Cart) recalc() {
	var total int64 = 0
	for _, l := range c.Lines {
		total += l.UnitPrice * l.Quantity
	}
	c.Total = total
}
