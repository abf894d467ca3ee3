package schedule

import (
	"context"
	"time"

	"github.com/essencia-estetica/agenda-api/internal/models"
)

type Repository interface {
	// -------- Cliente --------
	UpsertClientByName(
		ctx context.Context,
		name string,
		phone string,
		area string,
	) (*models.Client, error)

	SearchClientsByPrefix(
		ctx context.Context,
		term string,
		limit int,
	) ([]models.Client, error)

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Agenda --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointmentCascade(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Presença --------
	EnsureAttendance(
		ctx context.Context,
		appointmentID uint,
	) error

	PresenceForAppointments(
		ctx context.Context,
		appointmentIDs []uint,
	) (map[uint]bool, error)

	WritePresenceBatch(
		ctx context.Context,
		rows []models.Attendance,
	) error

	// -------- Contrato --------
	CreateContractLink(
		ctx context.Context,
		link *models.ContractLink,
	) error

	GetContractLinkByToken(
		ctx context.Context,
		token string,
	) (*models.ContractLink, error)

	ListContractLinks(
		ctx context.Context,
	) ([]models.ContractLink, error)

	DeleteContractLink(
		ctx context.Context,
		id uint,
	) error
}
