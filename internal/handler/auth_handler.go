package handler

import (
	"net/http"
	"time"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cfg          config.Config
	cookieSecure bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		uc:  uc,
		cfg: cfg,
		//devではhttpで動かすのでSecureにしない
		cookieSecure: cfg.GoEnv == "prod",
	}
}

type SignupRequest struct {
	FullName      string `json:"fullname"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactnumber"`
	Email         string `json:"emailaddress"`
	Password      string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"emailaddress"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success    bool                `json:"success"`
	CustomerID int64               `json:"customerid"`
	User       usecase.CustomerDTO `json:"user"`
}

type CheckAuthResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	CustomerID      int64  `json:"customerid,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/signup", h.signup)
	e.POST("/login", h.login)
	e.POST("/logout", h.logout)
	e.GET("/check-auth", h.checkAuth)
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		FullName:      req.FullName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Password:      req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	//セッションはHttpOnly cookieで運ぶ
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, LoginResponse{
		Success:    true,
		CustomerID: out.Customer.CustomerID,
		User:       out.Customer,
	})
}

func (h *AuthHandler) logout(c echo.Context) error {
	//cookieを失効させる
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// check-authは未ログインでも401にしない（フロントの表示切り替え用）
func (h *AuthHandler) checkAuth(c echo.Context) error {
	customerID, ok := middleware.CustomerFromCookie(c, h.cfg)
	if !ok {
		return c.JSON(http.StatusOK, CheckAuthResponse{IsAuthenticated: false})
	}

	out, err := h.uc.CheckAuth(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(http.StatusOK, CheckAuthResponse{IsAuthenticated: false})
	}

	return c.JSON(http.StatusOK, CheckAuthResponse{
		IsAuthenticated: true,
		CustomerID:      out.CustomerID,
		CustomerAddress: out.Address,
	})
}
