package booking

import (
	"context"
	"time"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/models"
	"github.com/essencia-estetica/agenda-api/internal/timezone"
	"github.com/essencia-estetica/agenda-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ClientArea  string

	Date string // YYYY-MM-DD
	Time string // HH:mm

	PackageType   string
	PackageQty    string
	PaymentMethod string
	Amount        *float64
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	timezone string
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	date, startTime, err := ValidateFields(uc.timezone, in)
	if err != nil {
		return nil, err
	}

	// Upsert do cliente: o cadastro da agenda é o único caminho que
	// cria cliente novo.
	client, err := uc.repo.UpsertClientByName(
		ctx,
		in.ClientName,
		validators.NormalizePhone(in.ClientPhone),
		in.ClientArea,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:      client.ID,
		Date:          date,
		Time:          startTime,
		PackageType:   in.PackageType,
		PackageQty:    in.PackageQty,
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Amount,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.EnsureAttendance(ctx, ap.ID); err != nil {
		return nil, err
	}

	ap.Client = *client

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// VALIDATION
// ======================================================

func ValidateFields(
	tz string,
	in BookAppointmentInput,
) (time.Time, string, error) {

	if in.ClientName == "" {
		return time.Time{}, "", httperr.ErrBusiness("nome_obrigatorio")
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return time.Time{}, "", httperr.ErrBusiness("telefone_invalido")
	}

	date, err := timezone.ParseDate(tz, in.Date)
	if err != nil {
		return time.Time{}, "", httperr.ErrBusiness("data_invalida")
	}

	parsed, err := time.Parse("15:04", in.Time)
	if err != nil {
		return time.Time{}, "", httperr.ErrBusiness("horario_invalido")
	}
	startTime := parsed.Format("15:04")

	if !IsPackageTypeValid(in.PackageType) {
		return time.Time{}, "", httperr.ErrBusiness("tipo_pacote_invalido")
	}

	if !IsPaymentMethodValid(in.PaymentMethod) {
		return time.Time{}, "", httperr.ErrBusiness("forma_pagamento_invalida")
	}

	if in.Amount != nil && *in.Amount < 0 {
		return time.Time{}, "", httperr.ErrBusiness("valor_invalido")
	}

	return date, startTime, nil
}
