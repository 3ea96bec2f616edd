package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id" bson:"_id"`

	BarberID   BarberID `gorm:"not null;index:idx_bookings_barber_date,priority:1" json:"barber_id" bson:"barber_id"`
	BarberName string   `gorm:"size:100" json:"barber_name" bson:"barber_name"`

	ServiceName  string  `gorm:"size:100;not null" json:"service_name" bson:"service_name"`
	ServicePrice float64 `gorm:"not null" json:"service_price" bson:"service_price"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name" bson:"customer_name"`
	CustomerPhone string `gorm:"size:30;not null" json:"customer_phone" bson:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email,omitempty" bson:"customer_email,omitempty"`

	AppointmentDate string `gorm:"size:10;not null;index:idx_bookings_barber_date,priority:2" json:"appointment_date" bson:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time" bson:"appointment_time"`

	Status      string  `gorm:"size:20;not null;index" json:"status" bson:"status"`
	DeviceToken *string `gorm:"size:128" json:"device_token,omitempty" bson:"device_token,omitempty"`

	ReminderSent      bool       `json:"reminder_sent" bson:"reminder_sent"`
	ReminderScheduled bool       `json:"reminder_scheduled" bson:"reminder_scheduled"`
	ReminderSentAt    *time.Time `json:"reminder_sent_at,omitempty" bson:"reminder_sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`

	// Set only while the booking holds its slot; the document store keeps a
	// unique sparse index on it.
	SlotKey *string `gorm:"-" json:"-" bson:"slot_key,omitempty"`
}
