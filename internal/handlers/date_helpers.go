package handlers

import (
	"time"

	"github.com/essencia-estetica/agenda-api/internal/timezone"
)

// resolveDate aplica a regra das telas: parâmetro ausente ou malformado
// cai silenciosamente no dia de hoje, nunca vira erro para o usuário.
func resolveDate(tz string, raw string) time.Time {
	if raw == "" {
		return timezone.Today(tz)
	}

	date, err := timezone.ParseDate(tz, raw)
	if err != nil {
		return timezone.Today(tz)
	}

	return date
}
