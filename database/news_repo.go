package database

import (
	"errors"

	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type NewsRepo struct {
	db *gorm.DB
}

func NewNewsRepo(db *gorm.DB) *NewsRepo {
	return &NewsRepo{db}
}

// FindAll returns all news entries, newest first
func (r *NewsRepo) FindAll() ([]*models.News, error) {
	var news []*models.News
	err := r.db.Order("created_at DESC, id DESC").Find(&news).Error
	return news, err
}

// FindByID returns a news entry by its ID, or nil when no row exists
func (r *NewsRepo) FindByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.First(&news, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// Add inserts a new news entry into the database
func (r *NewsRepo) Add(news *models.News) error {
	return r.db.Create(news).Error
}

// Update replaces the mutable fields of an existing news entry
func (r *NewsRepo) Update(news *models.News) error {
	return r.db.Save(news).Error
}

// Delete removes a news entry by id and reports how many rows were affected
func (r *NewsRepo) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.News{}, id)
	return result.RowsAffected, result.Error
}
