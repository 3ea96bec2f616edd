package models

type Barber struct {
	ID         BarberID `gorm:"primaryKey;autoIncrement:false" json:"id" bson:"_id"`
	Name       string   `gorm:"size:100;not null" json:"name" bson:"name"`
	Experience string   `gorm:"size:100" json:"experience" bson:"experience"`
	Specialty  string   `gorm:"size:255" json:"specialty" bson:"specialty"`
	ImageURL   string   `gorm:"size:255" json:"image_url" bson:"image_url"`
	Active     bool     `gorm:"default:true" json:"active" bson:"active"`
}
