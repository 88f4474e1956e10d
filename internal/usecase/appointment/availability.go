package appointment

import (
	"context"
	"time"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
)

type AvailabilityInput struct {
	BarbeiroID uint
	ServicoID  uint
	Data       string
}

type TimeSlot struct {
	Hora string `json:"hora"`
}

type GetAvailability struct {
	repo domain.Repository

	open        string
	close       string
	slotMinutes int
}

func NewGetAvailability(repo domain.Repository, open, close string, slotMinutes int) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		open:        open,
		close:       close,
		slotMinutes: slotMinutes,
	}
}

// Execute monta a grade de horários do dia e remove os já ocupados por
// agendamentos vivos do barbeiro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	if !validDate(in.Data) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarbeiroID); err != nil {
		return nil, err
	}
	if in.ServicoID != 0 {
		if _, err := uc.repo.GetService(ctx, in.ServicoID); err != nil {
			return nil, err
		}
	}

	occupied, err := uc.repo.ListOccupiedHoras(ctx, in.BarbeiroID, in.Data)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(occupied))
	for _, h := range occupied {
		taken[h] = true
	}

	open, err := time.Parse(timeLayout, uc.open)
	if err != nil {
		return nil, err
	}
	close, err := time.Parse(timeLayout, uc.close)
	if err != nil {
		return nil, err
	}

	step := time.Duration(uc.slotMinutes) * time.Minute
	slots := []TimeSlot{}

	for cur := open; cur.Before(close); cur = cur.Add(step) {
		hora := cur.Format(timeLayout)
		if taken[hora] {
			continue
		}
		slots = append(slots, TimeSlot{Hora: hora})
	}

	return slots, nil
}
