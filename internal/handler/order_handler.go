package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderLineRequest struct {
	ProductID   int64             `json:"priceid"`
	ProductKind model.ProductKind `json:"product_type"`
	Quantity    int64             `json:"quantity"`
	UnitPrice   int64             `json:"price"`
}

type PlaceOrderRequest struct {
	Items           []OrderLineRequest    `json:"items"`
	TotalAmount     int64                 `json:"total_amount"`
	PaymentMethod   model.PaymentMethod   `json:"payment_method"`
	DeliveryAddress string                `json:"delivery_address"`
	GCashDetails    *usecase.GCashDetails `json:"gcash_details,omitempty"`
}

type PlaceOrderResponse struct {
	Success        bool   `json:"success"`
	OrderID        int64  `json:"orderid"`
	TrackingNumber string `json:"tracking_number"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.place)
	g.GET("", h.list)
	g.GET("/track/:tracking", h.track)
}

func (h *OrderHandler) place(c echo.Context) error {
	customerID, ok := getCustomerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	lines := make([]usecase.PlaceOrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, usecase.PlaceOrderLine{
			ProductID: it.ProductID,
			Kind:      it.ProductKind,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), customerID, usecase.PlaceOrderInput{
		Lines:           lines,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		GCash:           req.GCashDetails,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, PlaceOrderResponse{
		Success:        true,
		OrderID:        out.OrderID,
		TrackingNumber: out.TrackingNumber,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	customerID, ok := getCustomerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListMyOrders(c.Request().Context(), customerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) track(c echo.Context) error {
	customerID, ok := getCustomerIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.TrackOrder(c.Request().Context(), customerID, c.Param("tracking"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
