package models

import "time"

// Perfil de barbeiro, sempre vinculado a um usuário do tipo 'barbeiro'.
type Barber struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"usuario_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"usuario"`

	Especialidades string `gorm:"size:255" json:"especialidades"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
