package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/infra/slotindex"
	"github.com/barberflow/barberflow-api/internal/models"
)

var (
	testBarber  = &models.Barber{ID: 20, UserID: 99}
	testService = &models.Service{ID: 30, Nome: "Corte", Preco: 45.0, Duracao: 30}
	testClient  = domain.Actor{UserID: 10, Role: domain.RoleClient}
)

func validCreateInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Actor:      testClient,
		BarbeiroID: 20,
		ServicoID:  30,
		Data:       "2024-06-01",
		Hora:       "10:00",
	}
}

func TestCreateAppointment_Sucesso(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewCreateAppointment(repo, slots, testDispatcher())

	repo.On("GetBarber", mock.Anything, uint(20)).Return(testBarber, nil)
	repo.On("GetService", mock.Anything, uint(30)).Return(testService, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Appointment).ID = 55
		}).
		Return(nil)

	ap, err := uc.Execute(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(55), ap.ID)
	assert.Equal(t, uint(10), ap.ClienteID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, 1, ap.Version)
	assert.Nil(t, ap.ValorFinal)

	// Slot fica reservado com o id definitivo.
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(ap)))
	repo.AssertExpectations(t)
}

func TestCreateAppointment_CamposObrigatorios(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	tests := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
	}{
		{"sem barbeiro", func(in *CreateAppointmentInput) { in.BarbeiroID = 0 }},
		{"sem servico", func(in *CreateAppointmentInput) { in.ServicoID = 0 }},
		{"sem data", func(in *CreateAppointmentInput) { in.Data = "" }},
		{"sem hora", func(in *CreateAppointmentInput) { in.Hora = "" }},
		{"data invalida", func(in *CreateAppointmentInput) { in.Data = "01/06/2024" }},
		{"hora invalida", func(in *CreateAppointmentInput) { in.Hora = "10h00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)

			assert.Equal(t, httperr.CodeValidation, httperr.CodeOf(err))
		})
	}

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_BarbeiroInexistente(t *testing.T) {
	repo := new(mockRepository)
	uc := NewCreateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	repo.On("GetBarber", mock.Anything, uint(20)).
		Return(nil, httperr.ErrBusiness(httperr.CodeNotFound))

	_, err := uc.Execute(context.Background(), validCreateInput())

	assert.Equal(t, httperr.CodeNotFound, httperr.CodeOf(err))
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_SlotOcupado(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewCreateAppointment(repo, slots, testDispatcher())

	repo.On("GetBarber", mock.Anything, uint(20)).Return(testBarber, nil)
	repo.On("GetService", mock.Anything, uint(30)).Return(testService, nil)

	slot := domain.Slot{BarberID: 20, Data: "2024-06-01", Hora: "10:00"}
	assert.NoError(t, slots.Reserve(context.Background(), slot, 7))

	_, err := uc.Execute(context.Background(), validCreateInput())

	var conflict *domain.SlotConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint(7), conflict.HolderID)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_FalhaNoInsertLiberaSlot(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewCreateAppointment(repo, slots, testDispatcher())

	repo.On("GetBarber", mock.Anything, uint(20)).Return(testBarber, nil)
	repo.On("GetService", mock.Anything, uint(30)).Return(testService, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness(httperr.CodeStoreUnavailable))

	_, err := uc.Execute(context.Background(), validCreateInput())

	assert.Equal(t, httperr.CodeStoreUnavailable, httperr.CodeOf(err))

	// Reserva compensada: o slot volta a aceitar agendamento.
	slot := domain.Slot{BarberID: 20, Data: "2024-06-01", Hora: "10:00"}
	assert.NoError(t, slots.Reserve(context.Background(), slot, 8))
}

func TestCreateAppointment_DoisClientesMesmoSlot(t *testing.T) {
	// O segundo pedido para o mesmo slot perde, mesmo vindo de outro cliente.
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewCreateAppointment(repo, slots, testDispatcher())

	repo.On("GetBarber", mock.Anything, uint(20)).Return(testBarber, nil)
	repo.On("GetService", mock.Anything, uint(30)).Return(testService, nil)

	var nextID uint = 100
	repo.On("CreateAppointment", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*models.Appointment).ID = nextID
		}).
		Return(nil)

	first, err := uc.Execute(context.Background(), validCreateInput())
	assert.NoError(t, err)

	in2 := validCreateInput()
	in2.Actor = domain.Actor{UserID: 11, Role: domain.RoleClient}
	_, err = uc.Execute(context.Background(), in2)

	var conflict *domain.SlotConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.HolderID)
}
