package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//409 emailが既に使用済み
	ErrEmailAlreadyUsed = errors.New("email already used")
)

// サインアップ入力の検証の約束。validatorパッケージが実装する
type AuthValidator interface {
	ValidateSignup(ctx context.Context, in SignupInput) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

// 平文パスワードからハッシュへ
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ハッシュと平文の比較
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// セッショントークン（cookieに載せるJWT）を発行する約束
type TokenIssuer interface {
	Issue(customerID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}

// AuthUsecaseはサインアップ・ログイン・セッション確認の処理
type AuthUsecase struct {
	customers repo.CustomerRepository
	validator AuthValidator
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    TokenIssuer
	clock     Clock
}

// DI
func NewAuthUsecase(
	customers repo.CustomerRepository,
	validator AuthValidator,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		customers: customers,
		validator: validator,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

type SignupInput struct {
	FullName      string
	Address       string
	ContactNumber string
	Email         string
	Password      string
}

type SignupOutput struct {
	CustomerID int64 `json:"userId"`
}

// サインアップ実行
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (SignupOutput, error) {
	if err := u.validator.ValidateSignup(ctx, in); err != nil {
		if errors.Is(err, ErrEmailAlreadyUsed) {
			return SignupOutput{}, NewHTTPError(http.StatusConflict, "user already exists")
		}
		return SignupOutput{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return SignupOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	customer := &model.Customer{
		FullName:      in.FullName,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Email:         in.Email,
		PasswordHash:  hashed, //平文は保存しない
		Role:          model.RoleCustomer,
	}

	if err := u.customers.Create(ctx, customer); err != nil {
		//同時登録でユニーク制約に当たった場合
		return SignupOutput{}, NewHTTPError(http.StatusConflict, "user already exists")
	}

	return SignupOutput{CustomerID: customer.ID}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type CustomerDTO struct {
	CustomerID int64      `json:"customerid"`
	FullName   string     `json:"fullname"`
	Email      string     `json:"emailaddress"`
	Role       model.Role `json:"role"`
}

type LoginOutput struct {
	Customer  CustomerDTO
	Token     string
	ExpiresAt time.Time
}

// ログイン実行。成功したらcookie用のトークンを返す
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	customer, err := u.customers.FindByEmail(ctx, in.Email)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//存在しない場合もパスワード不一致と同じ応答にする
	if customer == nil || !u.verifier.Verify(in.Password, customer.PasswordHash) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, expiresAt, err := u.issuer.Issue(customer.ID, customer.Role, u.clock.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		Customer: CustomerDTO{
			CustomerID: customer.ID,
			FullName:   customer.FullName,
			Email:      customer.Email,
			Role:       customer.Role,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

type CheckAuthOutput struct {
	CustomerID int64  `json:"customerid"`
	Address    string `json:"customerAddress"`
}

// セッション確認。デフォルト配送先も一緒に返す
func (u *AuthUsecase) CheckAuth(ctx context.Context, customerID int64) (CheckAuthOutput, error) {
	customer, err := u.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			return CheckAuthOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return CheckAuthOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CheckAuthOutput{
		CustomerID: customer.ID,
		Address:    customer.Address,
	}, nil
}
