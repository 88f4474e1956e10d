package appointment

import (
	"time"

	"github.com/barberflow/barberflow-api/internal/httperr"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

func validateSlotFields(data, hora string) error {
	if !validDate(data) || !validTime(hora) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}
