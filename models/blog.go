package models

import "time"

// Blog is a long-form post shown on the blog page.
type Blog struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:text;not null" validate:"required"`
	Excerpt   string    `json:"excerpt" gorm:"type:text;not null" validate:"required"`
	Author    string    `json:"author" gorm:"type:text;not null" validate:"required"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Blog) Normalize() {
	b.Title = trim(b.Title)
	b.Excerpt = trim(b.Excerpt)
	b.Author = trim(b.Author)
	b.ImageURL = trimPtr(b.ImageURL)
}
