package report

import (
	"context"
	"time"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/dto"
)

type SummarizeDay struct {
	repo domain.Repository
}

func NewSummarizeDay(repo domain.Repository) *SummarizeDay {
	return &SummarizeDay{repo: repo}
}

// Execute particiona o dia pelo flag de presença e soma a receita só
// de quem compareceu; valor nulo conta zero.
func (uc *SummarizeDay) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.DaySummaryDTO, error) {

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

	summary := &dto.DaySummaryDTO{
		Date:         date.Format("2006-01-02"),
		NamesPresent: []string{},
		NamesAbsent:  []string{},
	}

	for _, ap := range aps {
		if presence[ap.ID] {
			summary.TotalPresent++
			summary.NamesPresent = append(summary.NamesPresent, ap.Client.Name)
			if ap.Amount != nil {
				summary.RevenuePresent += *ap.Amount
			}
			continue
		}

		summary.TotalAbsent++
		summary.NamesAbsent = append(summary.NamesAbsent, ap.Client.Name)
	}

	return summary, nil
}
