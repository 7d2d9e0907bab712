package database

import (
	"errors"

	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC, id DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row exists
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces the mutable fields of an existing project
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id and reports how many rows were affected
func (r *ProjectRepo) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Project{}, id)
	return result.RowsAffected, result.Error
}
