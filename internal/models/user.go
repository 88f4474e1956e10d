package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Tipo         string `gorm:"size:20;default:'cliente'" json:"tipo"`
	Telefone     string `gorm:"size:20" json:"telefone"`
	Foto         string `gorm:"size:255" json:"foto"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
