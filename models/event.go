package models

import "time"

// Event is an announced or past community event. Images holds the ordered
// gallery; rows written before the gallery existed carry a single legacy
// image_url, which ImageList folds into a one-element list on scan.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"type:text;not null" validate:"required"`
	EventDate   *string   `json:"event_date,omitempty" gorm:"type:text" validate:"omitempty,datetime=2006-01-02"`
	Location    *string   `json:"location,omitempty" gorm:"type:text"`
	Link        *string   `json:"link,omitempty" gorm:"type:text"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Images      ImageList `json:"images" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Event) Normalize() {
	e.Name = trim(e.Name)
	e.EventDate = trimPtr(e.EventDate)
	e.Location = trimPtr(e.Location)
	e.Link = trimPtr(e.Link)
	e.Description = trimPtr(e.Description)
}
