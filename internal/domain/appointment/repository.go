package appointment

import (
	"context"

	"github.com/barberflow/barberflow-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateAppointment persiste as mutações com compare-and-swap na versão:
	// o write só acontece se a versão armazenada ainda for expectedVersion, e
	// então vira expectedVersion+1. Versão defasada devolve version_conflict.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		expectedVersion int,
	) error

	// ListForActor aplica o filtro de visibilidade por papel no próprio
	// store; é fronteira de segurança, não conveniência de UI.
	ListForActor(
		ctx context.Context,
		actor Actor,
	) ([]models.Appointment, error)

	// -------- Disponibilidade --------
	ListOccupiedHoras(
		ctx context.Context,
		barberID uint,
		data string,
	) ([]string, error)
}
