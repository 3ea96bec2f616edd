package models

import "time"

type StaffUser struct {
	Username     string    `gorm:"primaryKey;size:50" json:"username" bson:"_id"`
	PasswordHash string    `gorm:"size:255;not null" json:"-" bson:"password_hash"`
	BarberID     *BarberID `json:"barber_id" bson:"barber_id,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
