// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gestor-app/backend/config"
	"github.com/gestor-app/backend/internal/application/usecase/account"
	"github.com/gestor-app/backend/internal/application/usecase/auth"
	"github.com/gestor-app/backend/internal/application/usecase/category"
	creditcard "github.com/gestor-app/backend/internal/application/usecase/credit_card"
	"github.com/gestor-app/backend/internal/application/usecase/ledger"
	"github.com/gestor-app/backend/internal/application/usecase/transaction"
	"github.com/gestor-app/backend/internal/domain/entity"
	"github.com/gestor-app/backend/internal/infra/server/router"
	"github.com/gestor-app/backend/internal/integration/adapters"
	"github.com/gestor-app/backend/internal/integration/cache"
	"github.com/gestor-app/backend/internal/integration/entrypoint/controller"
	"github.com/gestor-app/backend/internal/integration/entrypoint/middleware"
	"github.com/gestor-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker, redisHealthChecker func() bool) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	ledgerCache := cache.NewLedgerCache(redisClient, cfg.Ledger.CacheTTL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create ledger use case
	listLedgerUseCase := ledger.NewListLedgerUseCase(transactionRepo, cardRepo, ledgerCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, cardRepo, ledgerCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, cardRepo, ledgerCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, ledgerCache)
	togglePaidUseCase := transaction.NewTogglePaidUseCase(transactionRepo, ledgerCache)

	// Create credit card use cases
	createCardUseCase := creditcard.NewCreateCardUseCase(cardRepo, ledgerCache)
	listCardsUseCase := creditcard.NewListCardsUseCase(cardRepo, transactionRepo)
	updateCardUseCase := creditcard.NewUpdateCardUseCase(cardRepo, ledgerCache)
	deleteCardUseCase := creditcard.NewDeleteCardUseCase(cardRepo, ledgerCache)
	getInvoicesUseCase := creditcard.NewGetInvoicesUseCase(cardRepo, transactionRepo)
	settleInvoiceUseCase := creditcard.NewSettleInvoiceUseCase(getInvoicesUseCase, transactionRepo, ledgerCache)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)
	defaultMode := entity.ParseAccountingMode(cfg.Ledger.DefaultMode)
	ledgerController := controller.NewLedgerController(listLedgerUseCase, defaultMode)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		togglePaidUseCase,
	)
	creditCardController := controller.NewCreditCardController(
		createCardUseCase,
		listCardsUseCase,
		updateCardUseCase,
		deleteCardUseCase,
		getInvoicesUseCase,
		settleInvoiceUseCase,
	)
	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		transactionController,
		creditCardController,
		accountController,
		categoryController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
