package models

import "time"

// Project is a single entry on the ongoing-projects wall.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:text;not null" validate:"required"`
	LogoURL   *string   `json:"logo_url,omitempty" gorm:"type:text"`
	Link      *string   `json:"link,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// Normalize trims user-supplied text so required-field validation treats
// whitespace-only input as empty.
func (p *Project) Normalize() {
	p.Name = trim(p.Name)
	p.LogoURL = trimPtr(p.LogoURL)
	p.Link = trimPtr(p.Link)
}
