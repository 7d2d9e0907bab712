package database

import (
	"errors"

	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns all blogs, newest first
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Order("created_at DESC, id DESC").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID, or nil when no row exists
func (r *BlogRepo) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update replaces the mutable fields of an existing blog
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog by id and reports how many rows were affected
func (r *BlogRepo) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Blog{}, id)
	return result.RowsAffected, result.Error
}
