package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/httpresp"
	"github.com/barberflow/barberflow-api/internal/models"
	usecase "github.com/barberflow/barberflow-api/internal/usecase/appointment"
)

type BarbeiroHandler struct {
	db             *gorm.DB
	availabilityUC *usecase.GetAvailability
}

func NewBarbeiroHandler(db *gorm.DB, availabilityUC *usecase.GetAvailability) *BarbeiroHandler {
	return &BarbeiroHandler{db: db, availabilityUC: availabilityUC}
}

type CreateBarbeiroRequest struct {
	UsuarioID      uint   `json:"usuario_id" binding:"required"`
	Especialidades string `json:"especialidades"`
}

func (h *BarbeiroHandler) List(c *gin.Context) {
	var barbeiros []models.Barber
	if err := h.db.Preload("User").Find(&barbeiros).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}
	httpresp.List(c, barbeiros)
}

func (h *BarbeiroHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var barbeiro models.Barber
	if err := h.db.Preload("User").First(&barbeiro, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, barbeiro)
}

// Create promove um usuário do tipo barbeiro a um perfil de barbeiro ativo.
func (h *BarbeiroHandler) Create(c *gin.Context) {
	var req CreateBarbeiroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UsuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if user.Tipo != string(domain.RoleBarber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_is_not_a_barber"})
		return
	}

	barbeiro := models.Barber{
		UserID:         user.ID,
		Especialidades: req.Especialidades,
	}

	if err := h.db.Create(&barbeiro).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "barber_already_exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	barbeiro.User = user
	c.JSON(http.StatusCreated, barbeiro)
}

// Disponibilidade lista os horários livres de um barbeiro numa data.
func (h *BarbeiroHandler) Disponibilidade(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	servicoID, _ := strconv.ParseUint(c.Query("servico_id"), 10, 32)

	slots, err := h.availabilityUC.Execute(c.Request.Context(), usecase.AvailabilityInput{
		BarbeiroID: uint(id),
		ServicoID:  uint(servicoID),
		Data:       c.Query("data"),
	})
	if err != nil {
		httperr.Handle(c, err, "failed_to_get_availability")
		return
	}

	httpresp.List(c, slots)
}
