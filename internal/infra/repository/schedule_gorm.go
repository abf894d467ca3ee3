package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

// UpsertClientByName procura pelo nome normalizado e sobrescreve
// telefone/área. Se a inserção perder a corrida para o índice único,
// rebusca a linha vencedora e aplica os campos por cima.
func (r *ScheduleGormRepository) UpsertClientByName(
	ctx context.Context,
	name string,
	phone string,
	area string,
) (*models.Client, error) {

	key := nameKey(name)
	if area == "" {
		area = "Geral"
	}

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("name_key = ?", key).
		First(&client).Error

	if err == nil {
		client.Name = strings.TrimSpace(name)
		client.Phone = phone
		client.Area = area
		if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
			return nil, err
		}
		return &client, nil
	}

	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	client = models.Client{
		Name:    strings.TrimSpace(name),
		NameKey: key,
		Phone:   phone,
		Area:    area,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return r.refetchAndMerge(ctx, key, name, phone, area)
		}
		return nil, err
	}

	return &client, nil
}

func (r *ScheduleGormRepository) refetchAndMerge(
	ctx context.Context,
	key string,
	name string,
	phone string,
	area string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("name_key = ?", key).
		First(&client).Error; err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(name)
	client.Phone = phone
	client.Area = area

	if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *ScheduleGormRepository) SearchClientsByPrefix(
	ctx context.Context,
	term string,
	limit int,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("name_key LIKE ?", nameKey(term)+"%").
		Order("name_key ASC").
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *ScheduleGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Client").
		Save(ap).Error
}

// DeleteAppointmentCascade apaga o registro de presença antes da
// agenda, na mesma transação. Não depende da FK para não deixar
// presença órfã em bancos sem cascade.
func (r *ScheduleGormRepository) DeleteAppointmentCascade(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

func (r *ScheduleGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("date >= ? AND date < ?", start, end).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Presença
// --------------------------------------------------

// EnsureAttendance cria o registro de presença se ainda não existir,
// sem tocar no flag de um registro já gravado.
func (r *ScheduleGormRepository) EnsureAttendance(
	ctx context.Context,
	appointmentID uint,
) error {

	att := models.Attendance{AppointmentID: appointmentID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoNothing: true,
		}).
		Create(&att).Error

	if err != nil && httperr.IsUniqueViolation(err) {
		return nil
	}
	return err
}

func (r *ScheduleGormRepository) PresenceForAppointments(
	ctx context.Context,
	appointmentIDs []uint,
) (map[uint]bool, error) {

	presence := make(map[uint]bool, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return presence, nil
	}

	var rows []models.Attendance
	if err := r.db.WithContext(ctx).
		Where("appointment_id IN ?", appointmentIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		presence[row.AppointmentID] = row.Present
	}

	return presence, nil
}

// WritePresenceBatch grava o lote em um único upsert chaveado pelo
// índice único de appointment_id.
func (r *ScheduleGormRepository) WritePresenceBatch(
	ctx context.Context,
	rows []models.Attendance,
) error {

	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"present", "updated_at"}),
		}).
		Create(&rows).Error
}

// --------------------------------------------------
// Contrato
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateContractLink(
	ctx context.Context,
	link *models.ContractLink,
) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *ScheduleGormRepository) GetContractLinkByToken(
	ctx context.Context,
	token string,
) (*models.ContractLink, error) {

	var link models.ContractLink
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("token = ?", token).
		First(&link).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *ScheduleGormRepository) ListContractLinks(
	ctx context.Context,
) ([]models.ContractLink, error) {

	var links []models.ContractLink
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	return links, nil
}

func (r *ScheduleGormRepository) DeleteContractLink(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.ContractLink{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
