package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, code string) {
	c.JSON(status, HTTPError{Error: code})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

func NotFound(c *gin.Context, code string) {
	Write(c, http.StatusNotFound, code)
}

func Conflict(c *gin.Context, code string) {
	Write(c, http.StatusConflict, code)
}

func Forbidden(c *gin.Context, code string) {
	Write(c, http.StatusForbidden, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}

func Unauthorized(c *gin.Context, code string) {
	Write(c, http.StatusUnauthorized, code)
}

// Handle mapeia um erro vindo dos use cases para a resposta HTTP: erros de
// negócio seguem a taxonomia; qualquer outro vira o código de fallback (500).
func Handle(c *gin.Context, err error, fallback string) {
	if code := CodeOf(err); code != "" {
		Write(c, StatusFor(code), code)
		return
	}
	Internal(c, fallback)
}
