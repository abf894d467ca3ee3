package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Date time.Time `gorm:"type:date;index" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"` // HH:MM

	PackageType   string   `gorm:"size:30" json:"package_type"`
	PackageQty    string   `gorm:"size:30" json:"package_qty"`
	PaymentMethod string   `gorm:"size:30" json:"payment_method"`
	Amount        *float64 `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
