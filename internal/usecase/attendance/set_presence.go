package attendance

import (
	"context"
	"time"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

type SetPresenceBulk struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetPresenceBulk(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetPresenceBulk {
	return &SetPresenceBulk{
		repo:  repo,
		audit: audit,
	}
}

// Execute compara o estado submetido com o gravado e escreve só as
// linhas que mudaram, em um único lote. Reenviar o formulário sem
// mudanças não gera escrita nenhuma.
func (uc *SetPresenceBulk) Execute(
	ctx context.Context,
	date time.Time,
	submitted map[uint]bool,
) (int, error) {

	aps, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return 0, err
	}

	ids := make([]uint, 0, len(aps))
	for _, ap := range aps {
		ids = append(ids, ap.ID)
	}

	stored, err := uc.repo.PresenceForAppointments(ctx, ids)
	if err != nil {
		return 0, err
	}

	var changed []models.Attendance
	for _, ap := range aps {
		want := submitted[ap.ID]
		if want == stored[ap.ID] {
			continue
		}
		changed = append(changed, models.Attendance{
			AppointmentID: ap.ID,
			Present:       want,
		})
	}

	if len(changed) == 0 {
		return 0, nil
	}

	if err := uc.repo.WritePresenceBatch(ctx, changed); err != nil {
		return 0, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "presence_updated",
		Entity: "attendance",
		Metadata: map[string]any{
			"date":    date.Format("2006-01-02"),
			"updated": len(changed),
		},
	})

	return len(changed), nil
}
