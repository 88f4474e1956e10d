package appointment

import (
	"context"

	"github.com/barberflow/barberflow-api/internal/audit"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor domain.Actor

	BarbeiroID uint
	ServicoID  uint
	Data       string
	Hora       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	slots domain.SlotIndex
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	slots domain.SlotIndex,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Campos obrigatórios e formato
	// --------------------------------------------------
	if in.BarbeiroID == 0 || in.ServicoID == 0 || in.Data == "" || in.Hora == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if err := validateSlotFields(in.Data, in.Hora); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Barbeiro e serviço existem no catálogo
	// --------------------------------------------------
	if _, err := uc.repo.GetBarber(ctx, in.BarbeiroID); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetService(ctx, in.ServicoID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Reserva do slot (check-and-reserve atômico)
	// --------------------------------------------------
	slot := domain.Slot{BarberID: in.BarbeiroID, Data: in.Data, Hora: in.Hora}
	if err := uc.slots.Reserve(ctx, slot, 0); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Persistência; falha libera a reserva para não
	//    vazar um slot fantasma
	// --------------------------------------------------
	ap := &models.Appointment{
		ClienteID:  in.Actor.UserID,
		BarbeiroID: in.BarbeiroID,
		ServicoID:  in.ServicoID,
		Data:       in.Data,
		Hora:       in.Hora,
		Status:     string(domain.InitialStatus()),
		Version:    1,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		_ = uc.slots.Release(ctx, slot)
		return nil, err
	}

	_ = uc.slots.Bind(ctx, slot, ap.ID)

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "agendamento_criado",
		Entity:   "agendamento",
		EntityID: &ap.ID,
	})

	return ap, nil
}
