package dto

import "github.com/barberflow/barberflow-api/internal/models"

// AgendamentoDTO é o registro que o front-end consome; os nomes dos campos
// são contrato.
type AgendamentoDTO struct {
	ID           uint     `json:"id"`
	ClienteID    uint     `json:"cliente_id"`
	ClienteNome  string   `json:"cliente_nome"`
	BarbeiroID   uint     `json:"barbeiro_id"`
	BarbeiroNome string   `json:"barbeiro_nome"`
	ServicoID    uint     `json:"servico_id"`
	ServicoNome  string   `json:"servico_nome"`
	Data         string   `json:"data"`
	Hora         string   `json:"hora"`
	Status       string   `json:"status"`
	ValorFinal   *float64 `json:"valor_final"`
	Version      int      `json:"version"`
}

func FromAppointment(ap *models.Appointment) AgendamentoDTO {
	return AgendamentoDTO{
		ID:           ap.ID,
		ClienteID:    ap.ClienteID,
		ClienteNome:  ap.Cliente.Nome,
		BarbeiroID:   ap.BarbeiroID,
		BarbeiroNome: ap.Barbeiro.User.Nome,
		ServicoID:    ap.ServicoID,
		ServicoNome:  ap.Servico.Nome,
		Data:         ap.Data,
		Hora:         ap.Hora,
		Status:       ap.Status,
		ValorFinal:   ap.ValorFinal,
		Version:      ap.Version,
	}
}
