package repository

import (
	"fintrack/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListActive returns the user's non-archived categories, newest first.
func (r *CategoryRepository) ListActive(userID uint) ([]models.Category, error) {
	var cats []models.Category
	err := r.db.Where("user_id = ? AND is_archived = ?", userID, false).
		Order("created_at DESC").
		Find(&cats).Error
	return cats, err
}

// Create inserts the category relying on the (user_id, name) unique
// index for duplicate detection. There is deliberately no existence
// pre-check: two concurrent creates of the same name race through a
// check-then-insert window, while the constraint guarantees exactly one
// of them fails.
func (r *CategoryRepository) Create(cat *models.Category) error {
	return r.db.Create(cat).Error
}

// GetActive returns the category only when it belongs to the user and
// is not archived.
func (r *CategoryRepository) GetActive(id, userID uint) (*models.Category, error) {
	var cat models.Category
	err := r.db.Where("id = ? AND user_id = ? AND is_archived = ?", id, userID, false).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Archive soft-deletes the category so historical transactions keep a
// valid reference.
func (r *CategoryRepository) Archive(cat *models.Category) error {
	return r.db.Model(cat).Update("is_archived", true).Error
}

// NamesByIDs resolves category names for a set of ids in one query.
func (r *CategoryRepository) NamesByIDs(ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	var cats []models.Category
	if err := r.db.Select("id", "name").Where("id IN ?", ids).Find(&cats).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

// SeedDefaults creates the fixed default category set for a new user on
// the signup transaction handle.
func (r *CategoryRepository) SeedDefaults(tx *gorm.DB, userID uint, names []string) error {
	cats := make([]models.Category, 0, len(names))
	for _, name := range names {
		cats = append(cats, models.Category{UserID: userID, Name: name, IsDefault: true})
	}
	return tx.Create(&cats).Error
}
