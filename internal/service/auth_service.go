package service

import (
	"errors"
	"strings"

	"fintrack/config"
	"fintrack/internal/apperr"
	"fintrack/internal/auth"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultCategories is the fixed seed list created for every new user.
var defaultCategories = []string{
	"Food",
	"Transport",
	"Rent",
	"Utilities",
	"Health",
	"Entertainment",
	"Shopping",
	"Salary",
	"Investments",
	"Miscellaneous",
}

const defaultWalletName = "Main Wallet"

type AuthService struct {
	cfg        *config.Config
	db         *gorm.DB
	users      *repository.UserRepository
	wallets    *repository.WalletRepository
	categories *repository.CategoryRepository
}

func NewAuthService(cfg *config.Config, db *gorm.DB, users *repository.UserRepository, wallets *repository.WalletRepository, categories *repository.CategoryRepository) *AuthService {
	return &AuthService{cfg: cfg, db: db, users: users, wallets: wallets, categories: categories}
}

// Signup creates the user, their default wallet and the default
// category set in a single database transaction, then issues a JWT.
// Either all three exist afterwards or none do.
func (s *AuthService) Signup(name, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.GetByEmail(email)
	if err == nil {
		return nil, "", apperr.Conflict("email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	var token string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Create(tx, u); err != nil {
			return err
		}
		w := &models.Wallet{UserID: u.ID, Name: defaultWalletName, IsDefault: true}
		if err := s.wallets.Create(tx, w); err != nil {
			return err
		}
		if err := s.categories.SeedDefaults(tx, u.ID, defaultCategories); err != nil {
			return err
		}
		// Issue the token inside the transaction so a signing failure
		// rolls the account back instead of leaving a user who was
		// told their signup failed.
		t, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		// Backstop for the race the pre-check cannot close: the unique
		// index on email decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperr.Conflict("email already registered")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies the credentials and issues a JWT. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("invalid credentials")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}

	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Me(userID uint) (*models.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}
