package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint `gorm:"not null" json:"cliente_id"`
	Cliente   User `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	BarbeiroID uint   `gorm:"not null" json:"barbeiro_id"`
	Barbeiro   Barber `gorm:"foreignKey:BarbeiroID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbeiro"`

	ServicoID uint    `gorm:"not null" json:"servico_id"`
	Servico   Service `gorm:"foreignKey:ServicoID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	// Data "2006-01-02" e Hora "15:04"; juntas com BarbeiroID formam o slot.
	Data string `gorm:"size:10;not null" json:"data"`
	Hora string `gorm:"size:5;not null" json:"hora"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	// Preenchido apenas na conclusão, com o preço do serviço naquele momento.
	ValorFinal *float64 `json:"valor_final"`

	// Contador para concorrência otimista; toda mutação incrementa em 1.
	Version int `gorm:"not null;default:1" json:"version"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
