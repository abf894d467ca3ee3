package models

import "time"

// Um registro de presença por agendamento. O uniqueIndex em
// AppointmentID garante a cardinalidade 1:1 no banco.
type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Present bool `gorm:"default:false" json:"present"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
