package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catálogo
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, id).Error; err != nil {
		return nil, translate(err)
	}
	return &barber, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return &domain.SlotConflictError{Slot: domain.SlotOf(ap)}
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbeiro.User").
		Preload("Servico").
		First(&ap, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

// UpdateAppointment grava as mutações com CAS na coluna version. Quando
// nenhuma linha é afetada, outra escrita venceu a corrida desde a leitura do
// chamador (a linha existe, só mudou de versão).
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	expectedVersion int,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND version = ?", ap.ID, expectedVersion).
		Updates(map[string]any{
			"barbeiro_id":  ap.BarbeiroID,
			"servico_id":   ap.ServicoID,
			"data":         ap.Data,
			"hora":         ap.Hora,
			"status":       ap.Status,
			"valor_final":  ap.ValorFinal,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"version":      expectedVersion + 1,
			"updated_at":   time.Now(),
		})

	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return &domain.SlotConflictError{Slot: domain.SlotOf(ap)}
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeVersionConflict)
	}

	ap.Version = expectedVersion + 1
	return nil
}

func (r *AppointmentGormRepository) ListForActor(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbeiro.User").
		Preload("Servico")

	if cond, args := actorFilter(actor); cond != "" {
		q = q.Where(cond, args...)
	}

	var aps []models.Appointment
	if err := q.
		Order("data DESC, hora DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// actorFilter monta a cláusula de visibilidade por papel: cliente só enxerga
// os próprios agendamentos, barbeiro só a própria agenda, gerente tudo.
// Um papel desconhecido não enxerga nada.
func actorFilter(actor domain.Actor) (string, []any) {
	switch actor.Role {
	case domain.RoleManager:
		return "", nil
	case domain.RoleBarber:
		return "barbeiro_id = ?", []any{actor.BarberID}
	case domain.RoleClient:
		return "cliente_id = ?", []any{actor.UserID}
	}
	return "1 = 0", nil
}

// --------------------------------------------------
// Disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupiedHoras(
	ctx context.Context,
	barberID uint,
	data string,
) ([]string, error) {

	var horas []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barbeiro_id = ? AND data = ? AND status <> ?",
			barberID, data, string(domain.StatusCancelled),
		).
		Order("hora ASC").
		Pluck("hora", &horas).Error; err != nil {
		return nil, err
	}
	return horas, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
