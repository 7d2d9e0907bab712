package models

import "time"

// News is a site announcement.
type News struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"type:text;not null" validate:"required"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	Images      ImageList `json:"images" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the table singular-proof; "news" is uncountable.
func (News) TableName() string {
	return "news"
}

func (n *News) Normalize() {
	n.Title = trim(n.Title)
	n.Description = trim(n.Description)
}
