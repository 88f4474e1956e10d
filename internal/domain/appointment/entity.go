package appointment

import (
	"time"

	"github.com/barberflow/barberflow-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// As ações mutam o modelo já autorizado pelo guard; o incremento de versão
// fica a cargo do repositório, no mesmo write.

func Confirm(ap *models.Appointment) {
	ap.Status = string(StatusConfirmed)
}

// Complete conclui o atendimento e grava o valor liquidado.
func Complete(ap *models.Appointment, svc *models.Service, now time.Time) {
	valor := Settle(svc)
	ap.Status = string(StatusCompleted)
	ap.ValorFinal = &valor
	ap.CompletedAt = &now
}

func Cancel(ap *models.Appointment, now time.Time) {
	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
}

// SlotOf devolve a chave de reserva do agendamento.
func SlotOf(ap *models.Appointment) Slot {
	return Slot{BarberID: ap.BarbeiroID, Data: ap.Data, Hora: ap.Hora}
}
