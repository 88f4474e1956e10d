package appointment

import (
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

// ===============================
// Guard de transições
// ===============================

// Authorize decide se o ator pode mover o agendamento para o status pedido.
// Primeiro verifica se a aresta existe no grafo (invalid_transition vale para
// qualquer ator); só então verifica papel e posse (permission_denied).
// O gerente passa por qualquer verificação de posse.
func Authorize(ap *models.Appointment, to Status, actor Actor) error {
	from := Status(ap.Status)

	if !CanTransition(from, to) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	if actor.Role == RoleManager {
		return nil
	}

	ownsAsBarber := actor.Role == RoleBarber && actor.BarberID != 0 && actor.BarberID == ap.BarbeiroID
	ownsAsClient := actor.Role == RoleClient && actor.UserID == ap.ClienteID

	switch {
	case from == StatusPending && to == StatusConfirmed:
		if ownsAsBarber {
			return nil
		}
	case from == StatusPending && to == StatusCancelled:
		if ownsAsBarber || ownsAsClient {
			return nil
		}
	case from == StatusConfirmed && to == StatusCompleted:
		if ownsAsBarber {
			return nil
		}
	case from == StatusConfirmed && to == StatusCancelled:
		// Cliente não cancela agendamento já confirmado; precisa do
		// barbeiro ou do gerente.
		if ownsAsBarber {
			return nil
		}
	}

	return httperr.ErrBusiness(httperr.CodePermission)
}

// AuthorizeReschedule decide se o ator pode editar os campos de agenda
// (data, hora, serviço, barbeiro). Só o cliente dono ou o gerente podem, e
// apenas enquanto o agendamento está pendente.
func AuthorizeReschedule(ap *models.Appointment, actor Actor) error {
	if Status(ap.Status) != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if actor.Role == RoleManager {
		return nil
	}
	if actor.Role == RoleClient && actor.UserID == ap.ClienteID {
		return nil
	}
	return httperr.ErrBusiness(httperr.CodePermission)
}

// VisibleTo espelha o filtro de visibilidade aplicado pelo repositório:
// cliente vê os próprios agendamentos, barbeiro vê a própria agenda,
// gerente vê tudo.
func VisibleTo(ap *models.Appointment, actor Actor) bool {
	switch actor.Role {
	case RoleManager:
		return true
	case RoleBarber:
		return actor.BarberID != 0 && ap.BarbeiroID == actor.BarberID
	case RoleClient:
		return ap.ClienteID == actor.UserID
	}
	return false
}
