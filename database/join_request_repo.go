package database

import (
	"github.com/blockwavenation/gtn-backend/models"
	"gorm.io/gorm"
)

type JoinRequestRepo struct {
	db *gorm.DB
}

func NewJoinRequestRepo(db *gorm.DB) *JoinRequestRepo {
	return &JoinRequestRepo{db}
}

// FindAll returns all join requests, newest first
func (r *JoinRequestRepo) FindAll() ([]*models.JoinRequest, error) {
	var requests []*models.JoinRequest
	err := r.db.Order("created_at DESC, id DESC").Find(&requests).Error
	return requests, err
}

// Add inserts a new join request into the database
func (r *JoinRequestRepo) Add(request *models.JoinRequest) error {
	return r.db.Create(request).Error
}
