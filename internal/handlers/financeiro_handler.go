package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/models"
	"github.com/barberflow/barberflow-api/internal/timezone"
)

type FinanceiroHandler struct {
	db *gorm.DB
}

func NewFinanceiroHandler(db *gorm.DB) *FinanceiroHandler {
	return &FinanceiroHandler{db: db}
}

type statusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// Dashboard agrega a receita dos agendamentos realizados (valor_final é o
// preço congelado na conclusão) e os contadores gerais da operação.
func (h *FinanceiroHandler) Dashboard(c *gin.Context) {
	now := timezone.Now()
	hoje := now.Format("2006-01-02")
	inicioMes := now.Format("2006-01") + "-01"

	var receitaMes, receitaHoje float64

	if err := h.db.Model(&models.Appointment{}).
		Where("status = ? AND data >= ? AND data <= ?", domain.StatusCompleted, inicioMes, hoje).
		Select("COALESCE(SUM(valor_final), 0)").
		Scan(&receitaMes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_dashboard"})
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("status = ? AND data = ?", domain.StatusCompleted, hoje).
		Select("COALESCE(SUM(valor_final), 0)").
		Scan(&receitaHoje).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_dashboard"})
		return
	}

	var porStatus []statusCount
	if err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&porStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_dashboard"})
		return
	}

	var totalClientes, totalBarbeiros int64
	h.db.Model(&models.User{}).Where("tipo = ?", domain.RoleClient).Count(&totalClientes)
	h.db.Model(&models.Barber{}).Count(&totalBarbeiros)

	c.JSON(http.StatusOK, gin.H{
		"receita_mes":             receitaMes,
		"receita_hoje":            receitaHoje,
		"agendamentos_por_status": porStatus,
		"total_clientes":          totalClientes,
		"total_barbeiros":         totalBarbeiros,
	})
}
