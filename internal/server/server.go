package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlersはルート登録に必要なハンドラ一式
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Profile *handler.ProfileHandler
}

// Newはechoを組み立ててルートを登録する
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//リクエストログとpanic回復
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Profile.RegisterRoutes(e, cfg)

	return e
}

// Startはサーバーを起動する
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
