package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 配送料は全注文一律（センタボ建て、₱50）
const DeliveryFee int64 = 5000

// 追跡番号の引き直し上限
const maxTrackingAttempts = 3

// 在庫不足。対象の商品を必ず名指しする
type InsufficientStockError struct {
	Kind      model.ProductKind
	ProductID int64
	Name      string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s product %d (%s): have %d, want %d",
		e.Kind, e.ProductID, e.Name, e.Available, e.Requested)
}

func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ie *InsufficientStockError
	ok := errors.As(err, &ie)
	return ie, ok
}

// OrderUsecaseは注文確定と注文照会の業務ロジック。
// Order/OrderItem行の作成と在庫減算はここだけが行う。
type OrderUsecase struct {
	tx       repo.TransactionManager
	tracking TrackingNumberGenerator
}

func NewOrderUsecase(tx repo.TransactionManager, tracking TrackingNumberGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, tracking: tracking}
}

type GCashDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Reference     string `json:"reference"`
}

type PlaceOrderLine struct {
	ProductID int64
	Kind      model.ProductKind
	Quantity  int64
	UnitPrice int64
}

type PlaceOrderInput struct {
	Lines           []PlaceOrderLine
	TotalAmount     int64
	PaymentMethod   model.PaymentMethod
	DeliveryAddress string
	GCash           *GCashDetails
}

type PlaceOrderOutput struct {
	OrderID        int64  `json:"orderid"`
	TrackingNumber string `json:"tracking_number"`
}

// PlaceOrderは注文確定トランザクション。
// 全明細の在庫確認・減算・明細作成を1トランザクションで行い、
// 途中で失敗したら全体をrollbackする。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, customerID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if customerID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Lines) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery address required")
	}
	if !in.PaymentMethod.Valid() {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	// gcashは擬似キャプチャの入力必須（決済ゲートウェイには繋がない）
	if in.PaymentMethod == model.PaymentGCash {
		if in.GCash == nil ||
			strings.TrimSpace(in.GCash.AccountName) == "" ||
			strings.TrimSpace(in.GCash.AccountNumber) == "" {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "gcash details required")
		}
	}

	var subtotal int64 = 0
	var totalQty int64 = 0
	for _, l := range in.Lines {
		if !l.Kind.Valid() {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product kind")
		}
		if l.ProductID <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if l.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if l.UnitPrice < 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		subtotal += l.UnitPrice * l.Quantity
		totalQty += l.Quantity
	}

	//クライアントの合計は信用しない
	if in.TotalAmount != subtotal+DeliveryFee {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "total mismatch")
	}

	//追跡番号の衝突はDBのユニーク制約で検知して引き直す
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		trackingNumber := u.tracking.New()

		var out PlaceOrderOutput
		err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
			orderID, err := u.placeWithinTx(ctx, r, customerID, in, trackingNumber, totalQty)
			if err != nil {
				return err
			}
			out = PlaceOrderOutput{OrderID: orderID, TrackingNumber: trackingNumber}
			return nil
		})

		if errors.Is(err, repo.ErrDuplicateTracking) {
			continue
		}
		if err != nil {
			return PlaceOrderOutput{}, err
		}
		return out, nil
	}

	return PlaceOrderOutput{}, NewHTTPError(http.StatusConflict, "could not allocate tracking number")
}

func (u *OrderUsecase) placeWithinTx(
	ctx context.Context,
	r repo.TxRepos,
	customerID int64,
	in PlaceOrderInput,
	trackingNumber string,
	totalQty int64,
) (int64, error) {
	//注文行を先に作る（status=Placed）
	orderID, err := r.Orders().Create(ctx, model.Order{
		TrackingNumber:  trackingNumber,
		CustomerID:      customerID,
		Quantity:        totalQty,
		TotalAmount:     in.TotalAmount,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Status:          model.OrderStatusPlaced,
	})
	if err != nil {
		// ErrDuplicateTrackingはそのまま上へ（引き直しさせる）
		return 0, err
	}

	items := make([]model.OrderItem, 0, len(in.Lines))

	for _, l := range in.Lines {
		snap, err := r.Products().FindByKind(ctx, l.Kind, l.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return 0, NewHTTPError(http.StatusBadRequest, "unknown product")
		}
		if err != nil {
			return 0, err
		}

		//在庫行をロックしてから比較・減算する（同時注文のlost update防止）
		current, err := r.Inventory().LockStock(ctx, l.Kind, l.ProductID)
		if err != nil {
			return 0, err
		}
		if current < l.Quantity {
			return 0, &InsufficientStockError{
				Kind:      l.Kind,
				ProductID: l.ProductID,
				Name:      snap.Name,
				Available: current,
				Requested: l.Quantity,
			}
		}

		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, l.Kind, l.ProductID, l.Quantity)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, &InsufficientStockError{
				Kind:      l.Kind,
				ProductID: l.ProductID,
				Name:      snap.Name,
				Available: current,
				Requested: l.Quantity,
			}
		}

		//減算の履歴を同一トランザクションで残す
		if err := r.Inventory().CreateMovement(ctx, model.StockMovement{
			ProductKind: l.Kind,
			ProductID:   l.ProductID,
			OrderID:     orderID,
			Delta:       -l.Quantity,
		}); err != nil {
			return 0, err
		}

		//単価は注文時点で固定
		item := model.OrderItem{
			ProductKind: l.Kind,
			Quantity:    l.Quantity,
			PriceAtTime: l.UnitPrice,
		}
		id := l.ProductID
		switch l.Kind {
		case model.KindLechon:
			item.LechonProductID = &id
		case model.KindViand:
			item.ViandProductID = &id
		}
		items = append(items, item)
	}

	if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
		return 0, err
	}

	//チェックアウトでカートを消費する
	if err := r.CartLines().Clear(ctx, customerID); err != nil {
		return 0, err
	}

	return orderID, nil
}

type OrderView struct {
	OrderID         int64                `json:"orderid"`
	TrackingNumber  string               `json:"tracking_number"`
	Date            time.Time            `json:"date"`
	TotalAmount     int64                `json:"total_amount"`
	Status          model.OrderStatus    `json:"status"`
	PaymentMethod   model.PaymentMethod  `json:"payment_method"`
	DeliveryAddress string               `json:"delivery_address"`
	FullName        string               `json:"fullname,omitempty"`
	Email           string               `json:"emailaddress,omitempty"`
	ContactNumber   string               `json:"contactnumber,omitempty"`
	Items           []repo.OrderItemView `json:"items"`
}

// 自分の注文を新しい順に、明細付きで返す
func (u *OrderUsecase) ListMyOrders(ctx context.Context, customerID int64) ([]OrderView, error) {
	if customerID <= 0 {
		return []OrderView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByCustomerID(ctx, customerID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListViewsByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			outs = append(outs, OrderView{
				OrderID:         o.ID,
				TrackingNumber:  o.TrackingNumber,
				Date:            o.CreatedAt,
				TotalAmount:     o.TotalAmount,
				Status:          o.Status,
				PaymentMethod:   o.PaymentMethod,
				DeliveryAddress: o.DeliveryAddress,
				FullName:        o.FullName,
				Email:           o.Email,
				ContactNumber:   o.ContactNumber,
				Items:           items,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderView{}, err
	}
	return outs, nil
}

// 追跡番号で同じチェックアウトの注文をまとめて返す
func (u *OrderUsecase) TrackOrder(ctx context.Context, customerID int64, trackingNumber string) ([]OrderView, error) {
	if customerID <= 0 {
		return []OrderView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(trackingNumber) == "" {
		return []OrderView{}, NewHTTPError(http.StatusBadRequest, "invalid tracking number")
	}

	var outs []OrderView

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(orders) == 0 {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		outs = make([]OrderView, 0, len(orders))
		for _, o := range orders {
			//他人の注文は「存在しない扱い」にする
			if o.CustomerID != customerID {
				return NewHTTPError(http.StatusNotFound, "not found")
			}

			items, err := r.OrderItems().ListViewsByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			outs = append(outs, OrderView{
				OrderID:         o.ID,
				TrackingNumber:  o.TrackingNumber,
				Date:            o.CreatedAt,
				TotalAmount:     o.TotalAmount,
				Status:          o.Status,
				PaymentMethod:   o.PaymentMethod,
				DeliveryAddress: o.DeliveryAddress,
				Items:           items,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderView{}, err
	}
	return outs, nil
}
