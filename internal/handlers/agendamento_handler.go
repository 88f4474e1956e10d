package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/httpresp"
	"github.com/barberflow/barberflow-api/internal/middleware"
	usecase "github.com/barberflow/barberflow-api/internal/usecase/appointment"
)

type AgendamentoHandler struct {
	createUC *usecase.CreateAppointment
	updateUC *usecase.UpdateAppointment
	listUC   *usecase.ListAppointments
}

func NewAgendamentoHandler(createUC *usecase.CreateAppointment, updateUC *usecase.UpdateAppointment, listUC *usecase.ListAppointments) *AgendamentoHandler {
	return &AgendamentoHandler{createUC: createUC, updateUC: updateUC, listUC: listUC}
}

type CreateAgendamentoRequest struct {
	BarbeiroID uint   `json:"barbeiro_id" binding:"required"`
	ServicoID  uint   `json:"servico_id" binding:"required"`
	Data       string `json:"data" binding:"required"`
	Hora       string `json:"hora" binding:"required"`
}

type UpdateAgendamentoRequest struct {
	Status     *string `json:"status"`
	Data       *string `json:"data"`
	Hora       *string `json:"hora"`
	BarbeiroID *FlexID `json:"barbeiro_id"`
	ServicoID  *FlexID `json:"servico_id"`
	Version    *int    `json:"version"`
}

// FlexID aceita o id como número ou string; os selects do cliente web enviam
// o valor com toString().
type FlexID uint

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*f = FlexID(n)
	return nil
}

func (f *FlexID) Uint() *uint {
	if f == nil {
		return nil
	}
	u := uint(*f)
	return &u
}

// List devolve os agendamentos visíveis ao ator: gerente vê tudo, barbeiro a
// própria agenda, cliente os próprios pedidos.
func (h *AgendamentoHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	items, err := h.listUC.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, items)
}

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	actor := middleware.ActorFromContext(c)

	out, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		Actor:      actor,
		BarbeiroID: req.BarbeiroID,
		ServicoID:  req.ServicoID,
		Data:       req.Data,
		Hora:       req.Hora,
	})
	if err != nil {
		var conflict *domain.SlotConflictError
		if errors.As(err, &conflict) {
			httperr.Conflict(c, httperr.CodeSlotConflict)
			return
		}
		httperr.Handle(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, out)
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id")
		return
	}

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	actor := middleware.ActorFromContext(c)

	out, err := h.updateUC.Execute(c.Request.Context(), usecase.UpdateAppointmentInput{
		ID:         uint(id),
		Actor:      actor,
		Status:     req.Status,
		Data:       req.Data,
		Hora:       req.Hora,
		BarbeiroID: req.BarbeiroID.Uint(),
		ServicoID:  req.ServicoID.Uint(),
		Version:    req.Version,
	})
	if err != nil {
		var conflict *domain.SlotConflictError
		if errors.As(err, &conflict) {
			httperr.Conflict(c, httperr.CodeSlotConflict)
			return
		}
		httperr.Handle(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, out)
}
