package models

import "time"

type ClosedDateRange struct {
	ID string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`

	StartDate string `gorm:"size:10;not null;index" json:"start_date" bson:"start_date"`
	EndDate   string `gorm:"size:10;not null" json:"end_date" bson:"end_date"`
	Reason    string `gorm:"size:255" json:"reason" bson:"reason"`

	CreatedBy string    `gorm:"size:50" json:"created_by" bson:"created_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
