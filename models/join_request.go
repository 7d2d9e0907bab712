package models

import "time"

// JoinRequest is a lead captured by the public join form.
type JoinRequest struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName  string    `json:"full_name" gorm:"type:text;not null" validate:"required"`
	Email     *string   `json:"email,omitempty" gorm:"type:text" validate:"omitempty,email"`
	Whatsapp  *string   `json:"whatsapp,omitempty" gorm:"type:text"`
	Country   *string   `json:"country,omitempty" gorm:"type:text"`
	Company   *string   `json:"company,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (j *JoinRequest) Normalize() {
	j.FullName = trim(j.FullName)
	j.Email = trimPtr(j.Email)
	j.Whatsapp = trimPtr(j.Whatsapp)
	j.Country = trimPtr(j.Country)
	j.Company = trimPtr(j.Company)
}
