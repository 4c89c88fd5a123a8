package service

import (
	"testing"
	"time"

	"fintrack/config"
	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against an in-memory SQLite
// database so lifecycle and aggregation behavior is exercised against
// real SQL, constraints included.
type testEnv struct {
	db           *gorm.DB
	auth         *AuthService
	categories   *CategoryService
	transactions *TransactionService
	dashboards   *DashboardService
	insights     *InsightService

	walletRepo      *repository.WalletRepository
	categoryRepo    *repository.CategoryRepository
	transactionRepo *repository.TransactionRepository
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: time.Hour,
			Issuer: "fintrack-test",
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// A pooled :memory: database is one database per connection; pin
	// the pool to a single connection so every query sees the same
	// schema and data.
	sqlDB.SetMaxOpenConns(1)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestEnv(t *testing.T, generator TextGenerator) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := testConfig()

	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	return &testEnv{
		db:              db,
		auth:            NewAuthService(cfg, db, userRepo, walletRepo, categoryRepo),
		categories:      NewCategoryService(categoryRepo),
		transactions:    NewTransactionService(db, transactionRepo, walletRepo, categoryRepo),
		dashboards:      NewDashboardService(dashboardRepo, categoryRepo),
		insights:        NewInsightService(dashboardRepo, categoryRepo, generator),
		walletRepo:      walletRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// signup creates a user through the real signup path so the default
// wallet and category seed exist, and returns the user with their
// wallet and a seeded category to transact against.
func (e *testEnv) signup(t *testing.T, email string) (*models.User, *models.Wallet, *models.Category) {
	t.Helper()
	u, _, err := e.auth.Signup("Test User", email, "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	w, err := e.walletRepo.GetDefault(u.ID)
	if err != nil {
		t.Fatalf("default wallet: %v", err)
	}
	var cat models.Category
	if err := e.db.Where("user_id = ? AND name = ?", u.ID, "Food").First(&cat).Error; err != nil {
		t.Fatalf("seeded category: %v", err)
	}
	return u, w, &cat
}

func (e *testEnv) balance(t *testing.T, walletID uint) string {
	t.Helper()
	w, err := e.walletRepo.GetByID(walletID)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	return w.Balance.String()
}
