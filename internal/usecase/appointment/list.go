package appointment

import (
	"context"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute devolve os agendamentos visíveis ao ator, mais recentes primeiro.
// O recorte por papel é feito no store; aqui só se projeta o DTO.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]dto.AgendamentoDTO, error) {

	appointments, err := uc.repo.ListForActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendamentoDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.FromAppointment(&appointments[i]))
	}

	return out, nil
}
