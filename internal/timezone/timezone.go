package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Now devolve o relógio da barbearia; datas e horas de agendamento são
// interpretadas nesse fuso.
func Now() time.Time {
	return time.Now().In(Location())
}
