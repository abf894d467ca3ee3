package attendance

import (
	"context"
	"time"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/dto"
)

type ListDay struct {
	repo domain.Repository
}

func NewListDay(repo domain.Repository) *ListDay {
	return &ListDay{repo: repo}
}

// Execute junta agenda + cliente + presença do dia, em ordem de
// horário. Presença sem registro conta como falta.
func (uc *ListDay) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.DayEntryDTO, error) {

	aps, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(aps))
	for _, ap := range aps {
		ids = append(ids, ap.ID)
	}

	presence, err := uc.repo.PresenceForAppointments(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DayEntryDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.DayEntryDTO{
			ID:            ap.ID,
			ClientName:    ap.Client.Name,
			ClientPhone:   ap.Client.Phone,
			ClientArea:    ap.Client.Area,
			Date:          ap.Date.Format("02/01/2006"),
			Time:          ap.Time,
			PackageType:   ap.PackageType,
			PackageQty:    ap.PackageQty,
			PaymentMethod: ap.PaymentMethod,
			Amount:        ap.Amount,
			Present:       presence[ap.ID],
			Status:        string(domain.PresenceFromFlag(presence[ap.ID])),
		})
	}

	return out, nil
}
