package appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/barberflow/barberflow-api/internal/audit"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/models"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment, expectedVersion int) error {
	args := m.Called(ctx, ap, expectedVersion)
	if args.Error(0) == nil {
		ap.Version = expectedVersion + 1
	}
	return args.Error(0)
}

func (m *mockRepository) ListForActor(ctx context.Context, actor domain.Actor) ([]models.Appointment, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepository) ListOccupiedHoras(ctx context.Context, barberID uint, data string) ([]string, error) {
	args := m.Called(ctx, barberID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ domain.Repository = (*mockRepository)(nil)

// Dispatcher sem logger: drena a fila e descarta, suficiente para os testes.
func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}
