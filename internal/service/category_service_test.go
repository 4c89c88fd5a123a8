package service

import (
	"testing"
	"time"

	"fintrack/internal/apperr"
)

func TestCategoryCreateAndList(t *testing.T) {
	env := newTestEnv(t, nil)
	u, _, _ := env.signup(t, "alice@example.com")

	cat, err := env.categories.Create(u.ID, "Coffee")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cat.IsDefault {
		t.Error("user-created categories must not be default")
	}

	time.Sleep(5 * time.Millisecond) // distinct created_at for ordering
	if _, err := env.categories.Create(u.ID, "Books"); err != nil {
		t.Fatalf("create: %v", err)
	}

	cats, err := env.categories.List(u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cats) != len(defaultCategories)+2 {
		t.Fatalf("expected %d categories, got %d", len(defaultCategories)+2, len(cats))
	}
	if cats[0].Name != "Books" {
		t.Errorf("list should be newest first, got %q", cats[0].Name)
	}
}

func TestCategoryDuplicateName(t *testing.T) {
	env := newTestEnv(t, nil)
	u, _, _ := env.signup(t, "alice@example.com")

	tests := []struct {
		name     string
		category string
	}{
		{"duplicate of seeded default", "Food"},
		{"duplicate of user category", "Coffee"},
	}
	if _, err := env.categories.Create(u.ID, "Coffee"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.categories.Create(u.ID, tt.category)
			if apperr.KindOf(err) != apperr.KindConflict {
				t.Fatalf("duplicate name should be a conflict, got %v", err)
			}
		})
	}

	// The same name under a different user is fine.
	other, _, _ := env.signup(t, "bob@example.com")
	if _, err := env.categories.Create(other.ID, "Coffee"); err != nil {
		t.Fatalf("same name for another user should succeed: %v", err)
	}
}

func TestCategoryDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	u, _, defaultCat := env.signup(t, "alice@example.com")

	t.Run("default category is protected", func(t *testing.T) {
		_, err := env.categories.Delete(u.ID, defaultCat.ID)
		if apperr.KindOf(err) != apperr.KindForbidden {
			t.Fatalf("deleting a default category should be forbidden, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := env.categories.Delete(u.ID, 99999)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Fatalf("unknown category should be not found, got %v", err)
		}
	})

	t.Run("other user's category", func(t *testing.T) {
		other, _, otherCat := env.signup(t, "bob@example.com")
		_ = other
		_, err := env.categories.Delete(u.ID, otherCat.ID)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Fatalf("foreign category should be not found, got %v", err)
		}
	})

	t.Run("soft delete archives", func(t *testing.T) {
		cat, err := env.categories.Create(u.ID, "Coffee")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		deleted, err := env.categories.Delete(u.ID, cat.ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if !deleted.IsArchived {
			t.Error("deleted category should be archived")
		}

		cats, _ := env.categories.List(u.ID)
		for _, c := range cats {
			if c.ID == cat.ID {
				t.Error("archived category should not be listed")
			}
		}

		// Archived rows still occupy the name.
		_, err = env.categories.Create(u.ID, "Coffee")
		if apperr.KindOf(err) != apperr.KindConflict {
			t.Fatalf("archived name should still conflict, got %v", err)
		}

		// Deleting again reports not found.
		_, err = env.categories.Delete(u.ID, cat.ID)
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Fatalf("re-deleting archived category should be not found, got %v", err)
		}
	})
}
