package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id" bson:"_id"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name" bson:"name"`
	DurationMin int     `gorm:"not null" json:"duration" bson:"duration"`
	Price       float64 `gorm:"not null" json:"price" bson:"price"`
	Active      bool    `gorm:"default:true" json:"active" bson:"active"`
}
