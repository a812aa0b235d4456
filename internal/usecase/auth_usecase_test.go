package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	if args.Error(0) == nil {
		customer.ID = 42
	}
	return args.Error(0)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(*model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// 検証は本物のvalidatorパッケージで別途テストするので、ここではスタブ
type validatorStub struct {
	signupErr error
	loginErr  error
}

func (s *validatorStub) ValidateSignup(ctx context.Context, in usecase.SignupInput) error {
	return s.signupErr
}

func (s *validatorStub) ValidateLogin(ctx context.Context, email string, password string) error {
	return s.loginErr
}

type hasherStub struct{}

func (hasherStub) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type verifierStub struct{ ok bool }

func (s verifierStub) Verify(plain string, hashed string) bool { return s.ok }

type issuerStub struct{}

func (issuerStub) Issue(customerID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return "token-abc", now.Add(5 * time.Hour), nil
}

type clockStub struct{ t time.Time }

func (s clockStub) Now() time.Time { return s.t }

func fixedClock() clockStub {
	return clockStub{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func newAuthFixture(v *validatorStub, verify bool) (*CustomerRepoMock, *usecase.AuthUsecase) {
	customers := new(CustomerRepoMock)
	uc := usecase.NewAuthUsecase(customers, v, hasherStub{}, verifierStub{ok: verify}, issuerStub{}, fixedClock())
	return customers, uc
}

func TestAuthUsecase_Signup_Success(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		//平文ではなくハッシュが保存される
		return c.PasswordHash == "hashed:password123" &&
			c.Role == model.RoleCustomer &&
			c.Email == "juan@example.com"
	})).Return(nil)

	out, err := uc.Signup(context.Background(), usecase.SignupInput{
		FullName:      "Juan Dela Cruz",
		Address:       "123 Mabini St",
		ContactNumber: "09171234567",
		Email:         "juan@example.com",
		Password:      "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.CustomerID)
	customers.AssertExpectations(t)
}

func TestAuthUsecase_Signup_DuplicateEmail(t *testing.T) {
	_, uc := newAuthFixture(&validatorStub{signupErr: usecase.ErrEmailAlreadyUsed}, true)

	_, err := uc.Signup(context.Background(), usecase.SignupInput{Email: "juan@example.com"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestAuthUsecase_Signup_ValidationError(t *testing.T) {
	_, uc := newAuthFixture(&validatorStub{signupErr: usecase.ErrValidation}, true)

	_, err := uc.Signup(context.Background(), usecase.SignupInput{})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestAuthUsecase_Signup_RaceOnUniqueEmail(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

	_, err := uc.Signup(context.Background(), usecase.SignupInput{
		FullName:      "Juan Dela Cruz",
		ContactNumber: "09171234567",
		Email:         "juan@example.com",
		Password:      "password123",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("FindByEmail", mock.Anything, "juan@example.com").Return(&model.Customer{
		ID:           42,
		FullName:     "Juan Dela Cruz",
		Email:        "juan@example.com",
		PasswordHash: "stored-hash",
		Role:         model.RoleCustomer,
	}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "juan@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", out.Token)
	assert.Equal(t, int64(42), out.Customer.CustomerID)
	assert.Equal(t, fixedClock().Now().Add(5*time.Hour), out.ExpiresAt)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, false)

	customers.On("FindByEmail", mock.Anything, "juan@example.com").Return(&model.Customer{
		ID:           42,
		PasswordHash: "stored-hash",
	}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "juan@example.com",
		Password: "wrong",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestAuthUsecase_Login_UnknownEmailSameResponse(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	//存在しないemailでも資格情報エラーと区別できない応答
	assert.Equal(t, 401, he.Status)
	assert.Equal(t, "invalid email or password", he.Message)
}

func TestAuthUsecase_CheckAuth_Success(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("FindByID", mock.Anything, int64(42)).Return(&model.Customer{
		ID:      42,
		Address: "123 Mabini St",
	}, nil)

	out, err := uc.CheckAuth(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.CustomerID)
	assert.Equal(t, "123 Mabini St", out.Address)
}

func TestAuthUsecase_CheckAuth_UnknownCustomer(t *testing.T) {
	customers, uc := newAuthFixture(&validatorStub{}, true)

	customers.On("FindByID", mock.Anything, int64(42)).Return(nil, repo.ErrCustomerNotFound)

	_, err := uc.CheckAuth(context.Background(), 42)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := usecase.NewBcryptPasswordHasher(4)
	verifier := usecase.NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	assert.True(t, verifier.Verify("password123", hashed))
	assert.False(t, verifier.Verify("password124", hashed))
}
