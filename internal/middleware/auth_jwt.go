package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxCustomerIDKey   = "customer_id"   // int64
	CtxCustomerRoleKey = "customer_role" // string

	//セッショントークンを載せるcookie名
	TokenCookieName = "token"
)

// cookieのJWTを検証するミドルウェア。
// 失敗したら401で止める。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customerID, role, ok := customerFromCookie(c, cfg)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//contextへ保存
			c.Set(CtxCustomerIDKey, customerID)
			c.Set(CtxCustomerRoleKey, role)

			return next(c)
		}
	}
}

// CustomerFromCookieはcookieから顧客IDを取り出す。
// check-auth用：検証失敗を401にせず okで返す。
func CustomerFromCookie(c echo.Context, cfg config.Config) (int64, bool) {
	id, _, ok := customerFromCookie(c, cfg)
	return id, ok
}

func customerFromCookie(c echo.Context, cfg config.Config) (int64, string, bool) {
	cookie, err := c.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return 0, "", false
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	//customeridを取り出す
	customerID, err := parseCustomerID(claims["customerid"])
	if err != nil || customerID <= 0 {
		return 0, "", false
	}

	role, _ := claims["role"].(string)

	return customerID, role, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// customeridをint64に変換する
func parseCustomerID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid customerid")
	}
}
