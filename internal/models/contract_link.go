package models

import "time"

type ContractLink struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Token   string `gorm:"size:10;uniqueIndex;not null" json:"token"`
	FullURL string `gorm:"size:255" json:"full_url"`

	CreatedAt time.Time `json:"created_at"`
}
