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
	ownerClient = domain.Actor{UserID: 10, Role: domain.RoleClient}
	ownerBarber = domain.Actor{UserID: 99, BarberID: 20, Role: domain.RoleBarber}
	manager     = domain.Actor{UserID: 1, Role: domain.RoleManager}
)

func storedAppointment(status domain.Status) *models.Appointment {
	return &models.Appointment{
		ID:         55,
		ClienteID:  10,
		BarbeiroID: 20,
		ServicoID:  30,
		Data:       "2024-06-01",
		Hora:       "10:00",
		Status:     string(status),
		Version:    1,
	}
}

// seedSlot reserva no índice o slot que o agendamento armazenado ocupa.
func seedSlot(t *testing.T, slots *slotindex.MemoryIndex, ap *models.Appointment) {
	t.Helper()
	assert.NoError(t, slots.Reserve(context.Background(), domain.SlotOf(ap), ap.ID))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateAppointment_BarbeiroConfirma(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerBarber,
		Status: strPtr("confirmado"),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
	assert.Equal(t, 2, out.Version)
	// Confirmação não mexe na reserva.
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(out)))
	repo.AssertExpectations(t)
}

func TestUpdateAppointment_VersaoDefasada(t *testing.T) {
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	ap.Version = 3
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:      55,
		Actor:   ownerClient,
		Status:  strPtr("cancelado"),
		Version: intPtr(2),
	})

	assert.Equal(t, httperr.CodeVersionConflict, httperr.CodeOf(err))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_CancelamentoLiberaSlot(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)
	slot := domain.SlotOf(ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerClient,
		Status: strPtr("cancelado"),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), out.Status)
	assert.NotNil(t, out.CancelledAt)
	assert.Nil(t, out.ValorFinal)

	// Slot liberado: outro agendamento pode ocupar o mesmo horário.
	assert.NoError(t, slots.Reserve(context.Background(), slot, 77))
}

func TestUpdateAppointment_ConclusaoCongelaValor(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusConfirmed)
	seedSlot(t, slots, ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("GetService", mock.Anything, uint(30)).Return(testService, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerBarber,
		Status: strPtr("realizado"),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	assert.Equal(t, 45.0, *out.ValorFinal)
	assert.NotNil(t, out.CompletedAt)

	// Atendimento realizado mantém o slot ocupado no histórico do dia.
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(out)))
}

func TestUpdateAppointment_TransicaoInvalida(t *testing.T) {
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusCompleted)
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  manager,
		Status: strPtr("cancelado"),
	})

	assert.Equal(t, httperr.CodeInvalidTransition, httperr.CodeOf(err))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_ClienteNaoCancelaConfirmado(t *testing.T) {
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusConfirmed)
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerClient,
		Status: strPtr("cancelado"),
	})

	assert.Equal(t, httperr.CodePermission, httperr.CodeOf(err))
}

func TestUpdateAppointment_AgendamentoAlheioVira404(t *testing.T) {
	// Cliente não dono recebe not_found, não permission_denied: a API não
	// revela a existência de agendamento de terceiro.
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  domain.Actor{UserID: 999, Role: domain.RoleClient},
		Status: strPtr("cancelado"),
	})

	assert.Equal(t, httperr.CodeNotFound, httperr.CodeOf(err))
}

func TestUpdateAppointment_MutacaoVazia(t *testing.T) {
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    55,
		Actor: ownerClient,
	})

	assert.Equal(t, httperr.CodeValidation, httperr.CodeOf(err))
}

func TestUpdateAppointment_Reagendamento(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)
	oldSlot := domain.SlotOf(ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    55,
		Actor: ownerClient,
		Hora:  strPtr("11:00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "11:00", out.Hora)
	assert.Equal(t, 2, out.Version)

	// Novo slot ocupado, antigo liberado.
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(out)))
	assert.NoError(t, slots.Reserve(context.Background(), oldSlot, 77))
}

func TestUpdateAppointment_ReagendamentoComStatusAtual(t *testing.T) {
	// O diálogo de edição reenvia o status corrente junto com os campos de
	// agenda; o reagendamento passa e o status fica como está.
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)
	oldSlot := domain.SlotOf(ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerClient,
		Status: strPtr("pendente"),
		Hora:   strPtr("11:00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), out.Status)
	assert.Equal(t, "11:00", out.Hora)
	assert.Equal(t, 2, out.Version)

	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(out)))
	assert.NoError(t, slots.Reserve(context.Background(), oldSlot, 77))
}

func TestUpdateAppointment_MesmoStatusEhNoOp(t *testing.T) {
	// Reatribuir o status corrente não é transição: nem o guard roda, então
	// o cliente pode reenviar "confirmado" sem permission_denied.
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusConfirmed)
	seedSlot(t, slots, ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).Return(nil)

	out, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:     55,
		Actor:  ownerClient,
		Status: strPtr("confirmado"),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
	assert.Nil(t, out.ValorFinal)
	// O slot permanece ocupado.
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(out)))
}

func TestUpdateAppointment_ReagendamentoConflitoPreservaOriginal(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)
	oldSlot := domain.SlotOf(ap)

	// Destino já ocupado por outro agendamento.
	destino := domain.Slot{BarberID: 20, Data: "2024-06-01", Hora: "11:00"}
	assert.NoError(t, slots.Reserve(context.Background(), destino, 77))

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    55,
		Actor: ownerClient,
		Hora:  strPtr("11:00"),
	})

	var conflict *domain.SlotConflictError
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, uint(77), conflict.HolderID)

	// A reserva original continua de pé.
	assert.Equal(t, uint(55), slots.Holder(oldSlot))
	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAppointment_ReagendamentoSoPendente(t *testing.T) {
	repo := new(mockRepository)
	uc := NewUpdateAppointment(repo, slotindex.NewMemoryIndex(), testDispatcher())

	ap := storedAppointment(domain.StatusConfirmed)
	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    55,
		Actor: ownerClient,
		Hora:  strPtr("11:00"),
	})

	assert.Equal(t, httperr.CodeInvalidTransition, httperr.CodeOf(err))
}

func TestUpdateAppointment_TrocaDeBarbeiroValidaDestino(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("GetBarber", mock.Anything, uint(21)).
		Return(nil, httperr.ErrBusiness(httperr.CodeNotFound))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:         55,
		Actor:      ownerClient,
		BarbeiroID: uintPtr(21),
	})

	assert.Equal(t, httperr.CodeNotFound, httperr.CodeOf(err))
	assert.Equal(t, uint(55), slots.Holder(domain.SlotOf(ap)))
}

func TestUpdateAppointment_CASFalhaDesfazReserva(t *testing.T) {
	repo := new(mockRepository)
	slots := slotindex.NewMemoryIndex()
	uc := NewUpdateAppointment(repo, slots, testDispatcher())

	ap := storedAppointment(domain.StatusPending)
	seedSlot(t, slots, ap)
	oldSlot := domain.SlotOf(ap)

	repo.On("GetAppointment", mock.Anything, uint(55)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap, 1).
		Return(httperr.ErrBusiness(httperr.CodeVersionConflict))

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:    55,
		Actor: ownerClient,
		Hora:  strPtr("11:00"),
	})

	assert.Equal(t, httperr.CodeVersionConflict, httperr.CodeOf(err))

	// O slot de destino não fica vazando depois do rollback.
	destino := domain.Slot{BarberID: 20, Data: "2024-06-01", Hora: "11:00"}
	assert.NoError(t, slots.Reserve(context.Background(), destino, 88))
	// E a reserva original permanece.
	assert.Equal(t, uint(55), slots.Holder(oldSlot))
}

func TestListAppointments(t *testing.T) {
	repo := new(mockRepository)
	uc := NewListAppointments(repo)

	stored := []models.Appointment{
		{
			ID:         55,
			ClienteID:  10,
			Cliente:    models.User{ID: 10, Nome: "João"},
			BarbeiroID: 20,
			Barbeiro:   models.Barber{ID: 20, User: models.User{Nome: "Carlos"}},
			ServicoID:  30,
			Servico:    models.Service{ID: 30, Nome: "Corte"},
			Data:       "2024-06-01",
			Hora:       "10:00",
			Status:     "pendente",
			Version:    1,
		},
	}
	repo.On("ListForActor", mock.Anything, ownerClient).Return(stored, nil)

	out, err := uc.Execute(context.Background(), ownerClient)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, uint(55), out[0].ID)
	assert.Equal(t, "João", out[0].ClienteNome)
	assert.Equal(t, "Carlos", out[0].BarbeiroNome)
	assert.Equal(t, "Corte", out[0].ServicoNome)
}
