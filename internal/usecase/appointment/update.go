package appointment

import (
	"context"

	"github.com/barberflow/barberflow-api/internal/audit"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
	"github.com/barberflow/barberflow-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Mutação parcial: só os ponteiros não-nulos são aplicados. Version, quando
// presente, é a versão que o chamador observou; uma versão defasada devolve
// version_conflict sem tocar no agendamento.
type UpdateAppointmentInput struct {
	ID    uint
	Actor domain.Actor

	Status     *string
	Data       *string
	Hora       *string
	ServicoID  *uint
	BarbeiroID *uint
	Version    *int
}

func (in UpdateAppointmentInput) hasReschedule() bool {
	return in.Data != nil || in.Hora != nil || in.ServicoID != nil || in.BarbeiroID != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	slots domain.SlotIndex
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	slots domain.SlotIndex,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		slots: slots,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if !domain.VisibleTo(ap, in.Actor) {
		// Não vaza existência de agendamento alheio.
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if in.Version != nil && *in.Version != ap.Version {
		return nil, httperr.ErrBusiness(httperr.CodeVersionConflict)
	}
	expected := ap.Version

	if in.Status == nil && !in.hasReschedule() {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 1. Reagendamento (campos de agenda)
	// --------------------------------------------------
	oldSlot := domain.SlotOf(ap)
	newSlot := oldSlot
	slotMoved := false

	if in.hasReschedule() {
		if err := domain.AuthorizeReschedule(ap, in.Actor); err != nil {
			return nil, err
		}

		if in.Data != nil {
			newSlot.Data = *in.Data
		}
		if in.Hora != nil {
			newSlot.Hora = *in.Hora
		}
		if in.BarbeiroID != nil {
			newSlot.BarberID = *in.BarbeiroID
		}
		if err := validateSlotFields(newSlot.Data, newSlot.Hora); err != nil {
			return nil, err
		}

		if in.BarbeiroID != nil && *in.BarbeiroID != ap.BarbeiroID {
			if _, err := uc.repo.GetBarber(ctx, *in.BarbeiroID); err != nil {
				return nil, err
			}
		}
		if in.ServicoID != nil && *in.ServicoID != ap.ServicoID {
			if _, err := uc.repo.GetService(ctx, *in.ServicoID); err != nil {
				return nil, err
			}
			ap.ServicoID = *in.ServicoID
		}

		// Troca de slot: reserva o novo antes de soltar o antigo, assim um
		// conflito no destino deixa a reserva original intacta.
		slotMoved = newSlot != oldSlot
		if slotMoved {
			if err := uc.slots.Reserve(ctx, newSlot, ap.ID); err != nil {
				return nil, err
			}
			ap.BarbeiroID = newSlot.BarberID
			ap.Data = newSlot.Data
			ap.Hora = newSlot.Hora
		}
	}

	// --------------------------------------------------
	// 2. Transição de status
	// --------------------------------------------------
	released := domain.Slot{}
	toCancelled := false

	if in.Status != nil {
		to, ok := domain.ParseStatus(*in.Status)
		if !ok {
			uc.rollbackSlot(ctx, slotMoved, newSlot)
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}

		// O diálogo de edição do front reenvia o status corrente junto com
		// os campos de agenda; reatribuir o mesmo status é no-op, não
		// transição, e não passa pelo guard.
		if to != domain.Status(ap.Status) {
			if err := domain.Authorize(ap, to, in.Actor); err != nil {
				uc.rollbackSlot(ctx, slotMoved, newSlot)
				return nil, err
			}

			now := timezone.Now()
			switch to {
			case domain.StatusConfirmed:
				domain.Confirm(ap)
			case domain.StatusCompleted:
				svc, err := uc.repo.GetService(ctx, ap.ServicoID)
				if err != nil {
					uc.rollbackSlot(ctx, slotMoved, newSlot)
					return nil, err
				}
				domain.Complete(ap, svc, now)
			case domain.StatusCancelled:
				domain.Cancel(ap, now)
				toCancelled = true
			}
		}
	}

	// --------------------------------------------------
	// 3. Commit com CAS de versão; falha desfaz a reserva
	// --------------------------------------------------
	if err := uc.repo.UpdateAppointment(ctx, ap, expected); err != nil {
		uc.rollbackSlot(ctx, slotMoved, newSlot)
		return nil, err
	}

	if slotMoved {
		_ = uc.slots.Release(ctx, oldSlot)
	}
	if toCancelled {
		// Cancelamento é terminal e libera o slot para nova reserva.
		_ = uc.slots.Release(ctx, domain.SlotOf(ap))
		released = domain.SlotOf(ap)
	}

	// --------------------------------------------------
	// 4. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "agendamento_atualizado",
		Entity:   "agendamento",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"status":        ap.Status,
			"version":       ap.Version,
			"slot_liberado": released != domain.Slot{},
		},
	})

	return ap, nil
}

func (uc *UpdateAppointment) rollbackSlot(ctx context.Context, moved bool, s domain.Slot) {
	if moved {
		_ = uc.slots.Release(ctx, s)
	}
}
