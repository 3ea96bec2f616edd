package models

import "time"

type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`

	Actor  string `gorm:"size:50;index" json:"actor" bson:"actor"`
	Action string `gorm:"size:50;not null;index" json:"action" bson:"action"`

	Entity   string `gorm:"size:50" json:"entity" bson:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id" bson:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata" bson:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"created_at" bson:"created_at"`
}
