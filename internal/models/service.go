package models

import "time"

type Service struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"size:100;not null" json:"nome"`
	Descricao string  `gorm:"size:255" json:"descricao"`
	Preco     float64 `gorm:"not null" json:"preco"`

	// Duração em minutos.
	Duracao int `gorm:"not null" json:"duracao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
