package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/middleware"
	"github.com/barberflow/barberflow-api/internal/models"
	"github.com/barberflow/barberflow-api/internal/storage"
)

const maxAvatarBytes = 5 << 20

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.S3Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateFoto recebe um multipart "foto", normaliza para WebP 512px e sobe
// para o S3. Sem uploader configurado o endpoint fica indisponível.
func (h *MeHandler) UpdateFoto(c *gin.Context) {
	if h.uploader == nil || !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upload_unavailable"})
		return
	}

	userID := c.GetUint(middleware.ContextUserID)

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}
	defer file.Close()

	encoded, err := storage.EncodeAvatarWebP(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
		return
	}

	key := fmt.Sprintf("avatars/%d-%s.webp", userID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", userID).Update("foto", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foto": url})
}
