package models

import "time"

type DeviceToken struct {
	Token        string `gorm:"primaryKey;size:128" json:"token" bson:"_id"`
	BookingCount int    `gorm:"not null;default:0" json:"booking_count" bson:"booking_count"`

	// The rolling window is measured from CreatedAt, so it is written
	// explicitly on every reset.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at" bson:"updated_at"`
}
