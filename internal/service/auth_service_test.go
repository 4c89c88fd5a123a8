package service

import (
	"testing"

	"fintrack/internal/apperr"
	"fintrack/internal/auth"
	"fintrack/internal/models"
)

func TestSignupSeedsWalletAndCategories(t *testing.T) {
	env := newTestEnv(t, nil)

	u, token, err := env.auth.Signup("Alice", "Alice@Example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" {
		t.Error("signup should return a token")
	}
	// The account and its token are issued as one unit; the token must
	// be usable immediately and name the new user.
	claims, err := auth.ParseToken(&testConfig().JWT, token)
	if err != nil {
		t.Fatalf("signup token should parse: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, u.ID)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email should be lowercased, got %q", u.Email)
	}

	w, err := env.walletRepo.GetDefault(u.ID)
	if err != nil {
		t.Fatalf("default wallet should exist after signup: %v", err)
	}
	if !w.IsDefault {
		t.Error("seeded wallet should be the default wallet")
	}
	if !w.Balance.IsZero() {
		t.Errorf("new wallet balance should be zero, got %s", w.Balance)
	}

	cats, err := env.categories.List(u.ID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != len(defaultCategories) {
		t.Fatalf("expected %d seeded categories, got %d", len(defaultCategories), len(cats))
	}
	for _, c := range cats {
		if !c.IsDefault {
			t.Errorf("seeded category %q should be marked default", c.Name)
		}
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, nil)

	if _, _, err := env.auth.Signup("Alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, _, err := env.auth.Signup("Other Alice", "alice@example.com", "password456")
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("duplicate email should be a conflict, got %v", err)
	}

	var count int64
	env.db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one user for the email, got %d", count)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	env.signup(t, "alice@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		u, token, err := env.auth.Login("alice@example.com", "password123")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if token == "" {
			t.Error("login should return a token")
		}
		if u.Email != "alice@example.com" {
			t.Errorf("unexpected user %q", u.Email)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := env.auth.Login("alice@example.com", "wrong-password")
		if apperr.KindOf(err) != apperr.KindUnauthorized {
			t.Fatalf("wrong password should be unauthorized, got %v", err)
		}
	})

	t.Run("unknown email matches wrong password", func(t *testing.T) {
		_, _, unknownErr := env.auth.Login("nobody@example.com", "password123")
		_, _, wrongErr := env.auth.Login("alice@example.com", "wrong-password")
		if unknownErr == nil || wrongErr == nil {
			t.Fatal("both logins should fail")
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Errorf("unknown email and wrong password must be indistinguishable: %q vs %q", unknownErr, wrongErr)
		}
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t, nil)
	u, _, _ := env.signup(t, "alice@example.com")

	got, err := env.auth.Me(u.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if got.ID != u.ID || got.Email != u.Email {
		t.Errorf("unexpected user %+v", got)
	}

	_, err = env.auth.Me(u.ID + 1000)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("unknown user should be not found, got %v", err)
	}
}
