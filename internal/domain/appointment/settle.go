package appointment

import "github.com/barberflow/barberflow-api/internal/models"

// Settle fixa o valor de um atendimento concluído: o preço do serviço no
// momento da conclusão. O valor é persistido junto com a transição e nunca
// recalculado, então mudanças posteriores de tabela não afetam o histórico.
func Settle(svc *models.Service) float64 {
	return svc.Preco
}
