package models

import "time"

// Cliente do estúdio, sem login. NameKey guarda o nome normalizado
// (minúsculas, sem espaços nas pontas) e é a chave natural do upsert.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	NameKey string `gorm:"size:100;uniqueIndex;not null" json:"-"`
	Phone   string `gorm:"size:20" json:"phone"`
	Area    string `gorm:"size:100;default:'Geral'" json:"area"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
