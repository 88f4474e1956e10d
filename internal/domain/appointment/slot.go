package appointment

import (
	"context"
	"fmt"
)

// Slot é a chave (barbeiro, data, hora); no máximo um agendamento vivo pode
// ocupá-la.
type Slot struct {
	BarberID uint
	Data     string // "2006-01-02"
	Hora     string // "15:04"
}

func (s Slot) Key() string {
	return fmt.Sprintf("slot:%d:%s:%s", s.BarberID, s.Data, s.Hora)
}

// SlotConflictError indica que o slot já está ocupado. HolderID é o
// agendamento conflitante quando conhecido, zero caso contrário.
type SlotConflictError struct {
	Slot     Slot
	HolderID uint
}

func (e *SlotConflictError) Error() string {
	if e.HolderID != 0 {
		return fmt.Sprintf("%s ocupado pelo agendamento %d", e.Slot.Key(), e.HolderID)
	}
	return fmt.Sprintf("%s ocupado", e.Slot.Key())
}

// SlotIndex é a autoridade sobre conflitos de reserva. Reserve é atômico por
// chave: de tentativas concorrentes para o mesmo slot, exatamente uma vence.
type SlotIndex interface {
	// Reserve ocupa o slot para o agendamento dado, ou devolve
	// *SlotConflictError. O id pode ser zero quando ainda não existe
	// (criação); Bind grava o id definitivo depois do insert.
	Reserve(ctx context.Context, s Slot, appointmentID uint) error

	// Bind associa o id do agendamento a um slot já reservado.
	Bind(ctx context.Context, s Slot, appointmentID uint) error

	// Release libera o slot; liberar um slot já livre é um no-op.
	Release(ctx context.Context, s Slot) error
}
