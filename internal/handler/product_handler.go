package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if ie, ok := usecase.AsInsufficientStock(err); ok {
		//在庫不足は商品を名指しした400
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ie.Error()})
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getCustomerIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get("customer_id")
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// 公開カタログのHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 認証なしの公開ルート
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/lechon-products", h.listLechon)
	e.GET("/viands-products", h.listViands)
}

func (h *ProductHandler) listLechon(c echo.Context) error {
	out, err := h.uc.ListLechonProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) listViands(c echo.Context) error {
	out, err := h.uc.ListViandProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
