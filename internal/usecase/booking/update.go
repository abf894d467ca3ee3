package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/models"
	"github.com/essencia-estetica/agenda-api/internal/validators"
)

type UpdateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// Execute sobrescreve todos os campos editáveis. O formulário coleta os
// dados do cliente inline, então o dono da agenda passa pelo mesmo
// upsert do cadastro.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
		}
		return nil, err
	}

	date, startTime, err := ValidateFields(uc.timezone, in)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.UpsertClientByName(
		ctx,
		in.ClientName,
		validators.NormalizePhone(in.ClientPhone),
		in.ClientArea,
	)
	if err != nil {
		return nil, err
	}

	ap.ClientID = client.ID
	ap.Date = date
	ap.Time = startTime
	ap.PackageType = in.PackageType
	ap.PackageQty = in.PackageQty
	ap.PaymentMethod = in.PaymentMethod
	ap.Amount = in.Amount

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Defensivo: garante a linha de presença sem mexer no flag.
	if err := uc.repo.EnsureAttendance(ctx, ap.ID); err != nil {
		return nil, err
	}

	ap.Client = *client

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
