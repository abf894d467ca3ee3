package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetAppointmentByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.ErrBusiness("agendamento_nao_encontrado")
		}
		return err
	}

	if err := uc.repo.DeleteAppointmentCascade(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
