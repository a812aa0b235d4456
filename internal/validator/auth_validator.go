package validator

import (
	"context"
	"net/mail"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

type authValidator struct {
	customers repository.CustomerRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(customers repository.CustomerRepository) usecase.AuthValidator {
	return &authValidator{customers: customers}
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignup(ctx context.Context, in usecase.SignupInput) error {
	fullName := strings.TrimSpace(in.FullName)
	contact := strings.TrimSpace(in.ContactNumber)
	email := strings.TrimSpace(in.Email)

	// 必須チェック（住所はプロフィールで後から入れられる）
	if fullName == "" || contact == "" || email == "" || in.Password == "" {
		return usecase.ErrValidation
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.ErrValidation
	}

	// パスワード最低文字数（MVP: 8）
	if len(in.Password) < 8 {
		return usecase.ErrValidation
	}

	// email重複チェック（DBが必要）
	existing, err := v.customers.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return usecase.ErrEmailAlreadyUsed
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.ErrValidation
	}

	if !isEmailLike(email) {
		return usecase.ErrValidation
	}

	return nil
}

func isEmailLike(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
