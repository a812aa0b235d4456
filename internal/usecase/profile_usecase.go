package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	repo "app/internal/repository"
)

// プロフィール照会・更新の業務ロジック
type ProfileUsecase struct {
	customers repo.CustomerRepository
	hasher    PasswordHasher
}

func NewProfileUsecase(customers repo.CustomerRepository, hasher PasswordHasher) *ProfileUsecase {
	return &ProfileUsecase{customers: customers, hasher: hasher}
}

type ProfileOutput struct {
	CustomerID    int64  `json:"customerid"`
	FullName      string `json:"fullname"`
	Email         string `json:"emailaddress"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactnumber"`
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, customerID int64) (ProfileOutput, error) {
	if customerID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	customer, err := u.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProfileOutput{
		CustomerID:    customer.ID,
		FullName:      customer.FullName,
		Email:         customer.Email,
		Address:       customer.Address,
		ContactNumber: customer.ContactNumber,
	}, nil
}

type UpdateProfileInput struct {
	FullName      string
	Email         string
	Address       string
	ContactNumber string

	//空なら変更しない
	Password string
}

// プロフィール更新。パスワードは新しい値が来たときだけハッシュし直す
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, customerID int64, in UpdateProfileInput) (ProfileOutput, error) {
	if customerID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)

	if in.FullName == "" || in.Email == "" || in.ContactNumber == "" {
		return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	customer, err := u.customers.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// email変更は他の顧客との重複を拒否
	if in.Email != customer.Email {
		existing, err := u.customers.FindByEmail(ctx, in.Email)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if existing != nil && existing.ID != customerID {
			return ProfileOutput{}, NewHTTPError(http.StatusConflict, "email already used")
		}
	}

	customer.FullName = in.FullName
	customer.Email = in.Email
	customer.Address = in.Address
	customer.ContactNumber = in.ContactNumber

	if in.Password != "" {
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		customer.PasswordHash = hashed
	}

	if err := u.customers.Update(ctx, customer); err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProfileOutput{
		CustomerID:    customer.ID,
		FullName:      customer.FullName,
		Email:         customer.Email,
		Address:       customer.Address,
		ContactNumber: customer.ContactNumber,
	}, nil
}
