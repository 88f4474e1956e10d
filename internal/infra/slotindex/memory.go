package slotindex

import (
	"context"
	"sync"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
)

// MemoryIndex é o SlotIndex em memória, usado em desenvolvimento sem Redis e
// nos testes. Um único mutex serializa reserve/release; as operações são
// curtas o bastante para não valer um lock por chave.
type MemoryIndex struct {
	mu    sync.Mutex
	slots map[string]uint
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{slots: make(map[string]uint)}
}

func (i *MemoryIndex) Reserve(ctx context.Context, s domain.Slot, appointmentID uint) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if holder, taken := i.slots[s.Key()]; taken {
		return &domain.SlotConflictError{Slot: s, HolderID: holder}
	}
	i.slots[s.Key()] = appointmentID
	return nil
}

func (i *MemoryIndex) Bind(ctx context.Context, s domain.Slot, appointmentID uint) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, taken := i.slots[s.Key()]; taken {
		i.slots[s.Key()] = appointmentID
	}
	return nil
}

func (i *MemoryIndex) Release(ctx context.Context, s domain.Slot) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.slots, s.Key())
	return nil
}

// Holder devolve o ocupante atual do slot (zero se livre); usado nos testes.
func (i *MemoryIndex) Holder(s domain.Slot) uint {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.slots[s.Key()]
}

// Compile-time check
var _ domain.SlotIndex = (*MemoryIndex)(nil)
