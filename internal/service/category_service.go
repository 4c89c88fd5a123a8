package service

import (
	"errors"

	"fintrack/internal/apperr"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repository.CategoryRepository
}

func NewCategoryService(categories *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns the user's non-archived categories, newest first. An
// empty slice is a valid result, not an error.
func (s *CategoryService) List(userID uint) ([]models.Category, error) {
	return s.categories.ListActive(userID)
}

// Create inserts a user category. Duplicate names are detected by the
// database unique constraint, so concurrent creates of the same name
// yield exactly one success and one Conflict.
func (s *CategoryService) Create(userID uint, name string) (*models.Category, error) {
	cat := &models.Category{UserID: userID, Name: name, IsDefault: false}
	if err := s.categories.Create(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("category name already exists")
		}
		return nil, err
	}
	return cat, nil
}

// Delete archives the category. Default categories are protected, and
// archival keeps historical transactions pointing at a live row.
func (s *CategoryService) Delete(userID, id uint) (*models.Category, error) {
	cat, err := s.categories.GetActive(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	if cat.IsDefault {
		return nil, apperr.Forbidden("default categories cannot be deleted")
	}
	if err := s.categories.Archive(cat); err != nil {
		return nil, err
	}
	return cat, nil
}
