package httperr

import (
	"errors"
	"net/http"
)

// Códigos de erro de negócio; cada um mapeia 1:1 para um status HTTP.
const (
	CodeValidation        = "validation_error"
	CodePermission        = "permission_denied"
	CodeInvalidTransition = "invalid_transition"
	CodeSlotConflict      = "slot_conflict"
	CodeVersionConflict   = "version_conflict"
	CodeNotFound          = "not_found"
	CodeStoreUnavailable  = "store_unavailable"
)

var statusByCode = map[string]int{
	CodeValidation:        http.StatusBadRequest,
	CodePermission:        http.StatusForbidden,
	CodeInvalidTransition: http.StatusBadRequest,
	CodeSlotConflict:      http.StatusConflict,
	CodeVersionConflict:   http.StatusConflict,
	CodeNotFound:          http.StatusNotFound,
	CodeStoreUnavailable:  http.StatusServiceUnavailable,
}

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// StatusFor traduz um código de negócio para o status HTTP da taxonomia.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// CodeOf extrai o código de negócio de um erro, ou "" se não houver.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
