package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// cookieセッション用のJWT issuer
type jwtIssuer struct {
	secret     []byte
	sessionTTL time.Duration
}

func (i *jwtIssuer) Issue(customerID int64, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.sessionTTL)

	claims := jwt.MapClaims{
		"customerid": customerID,
		"role":       string(role),
		"iat":        now.Unix(),
		"exp":        expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.LechonProduct{},
		&model.ViandProduct{},
		&model.CartLine{},
		&model.Order{},
		&model.OrderItem{},
		&model.StockMovement{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartStore := infraRepo.NewCartGormStore(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(10)
	verifier := usecase.NewBcryptPasswordVerifier()
	tracking := usecase.NewTrackingNumberGenerator()

	//セッションは5時間（cookieの期限と揃える）
	issuer := &jwtIssuer{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: 5 * time.Hour,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(
		customerRepo,
		validator.NewAuthValidator(customerRepo),
		hasher,
		verifier,
		issuer,
		clock,
	)
	profileUC := usecase.NewProfileUsecase(customerRepo, hasher)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, tracking)

	//Handler生成
	h := server.Handlers{
		Auth:    handler.NewAuthHandler(authUC, cfg),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
		Profile: handler.NewProfileHandler(profileUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, h)
	if err := server.Start(e, addr); err != nil {
		e.Logger.Fatal(err)
	}
}
