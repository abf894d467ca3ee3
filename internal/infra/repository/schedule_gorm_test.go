package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/essencia-estetica/agenda-api/internal/db"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// :memory: é por conexão; uma conexão só mantém o banco vivo
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return date
}

func seedAppointment(
	t *testing.T,
	repo *ScheduleGormRepository,
	name string,
	date time.Time,
	hour string,
	amount *float64,
) *models.Appointment {
	t.Helper()
	ctx := context.Background()

	client, err := repo.UpsertClientByName(ctx, name, "11988887777", "Geral")
	if err != nil {
		t.Fatalf("upsert client: %v", err)
	}

	ap := &models.Appointment{
		ClientID: client.ID,
		Date:     date,
		Time:     hour,
		Amount:   amount,
	}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	return ap
}

func TestUpsertClientByNameIsIdempotent(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.UpsertClientByName(ctx, "Maria Silva", "11999990000", "Cílios")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Mesmo nome com caixa diferente: atualiza, não duplica
	second, err := repo.UpsertClientByName(ctx, "maria silva", "11988880000", "Sobrancelha")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same client row, got ids %d and %d", first.ID, second.ID)
	}
	if second.Phone != "11988880000" || second.Area != "Sobrancelha" {
		t.Fatalf("expected overwritten phone/area, got %q %q", second.Phone, second.Area)
	}

	matches, err := repo.SearchClientsByPrefix(ctx, "MARIA", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(matches))
	}
}

func TestUpsertClientDefaultsAreaToGeral(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))

	client, err := repo.UpsertClientByName(context.Background(), "Ana", "11911112222", "")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if client.Area != "Geral" {
		t.Fatalf("expected default area Geral, got %q", client.Area)
	}
}

func TestRefetchAndMergeAdoptsWinningRow(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()

	winner, err := repo.UpsertClientByName(ctx, "Clara", "11900000001", "Geral")
	if err != nil {
		t.Fatalf("seed winner: %v", err)
	}

	// Simula o perdedor da corrida de inserção caindo no caminho de
	// conflito: rebusca e aplica os campos por cima.
	merged, err := repo.refetchAndMerge(ctx, "clara", "Clara", "11900000002", "Cílios")
	if err != nil {
		t.Fatalf("refetch and merge: %v", err)
	}

	if merged.ID != winner.ID {
		t.Fatalf("expected merge into row %d, got %d", winner.ID, merged.ID)
	}
	if merged.Phone != "11900000002" || merged.Area != "Cílios" {
		t.Fatalf("expected merged fields, got %q %q", merged.Phone, merged.Area)
	}
}

func TestSearchClientsByPrefixCapsResults(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()

	names := []string{
		"Paula A", "Paula B", "Paula C", "Paula D", "Paula E", "Paula F",
		"Paula G", "Paula H", "Paula I", "Paula J", "Paula K", "Paula L",
	}
	for _, name := range names {
		if _, err := repo.UpsertClientByName(ctx, name, "11922223333", "Geral"); err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}

	matches, err := repo.SearchClientsByPrefix(ctx, "paula", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 10 {
		t.Fatalf("expected cap at 10 results, got %d", len(matches))
	}
}

func TestPresenceDefaultsToAbsentWithoutRow(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()
	day := mustDate(t, "2026-03-10")

	ap := seedAppointment(t, repo, "Bia", day, "09:00", nil)

	presence, err := repo.PresenceForAppointments(ctx, []uint{ap.ID})
	if err != nil {
		t.Fatalf("presence: %v", err)
	}
	if presence[ap.ID] {
		t.Fatalf("expected missing attendance row to read as absent")
	}
}

func TestEnsureAttendanceKeepsExistingFlag(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()
	day := mustDate(t, "2026-03-10")

	ap := seedAppointment(t, repo, "Carla", day, "10:00", nil)

	if err := repo.EnsureAttendance(ctx, ap.ID); err != nil {
		t.Fatalf("first ensure: %v", err)
	}

	rows := []models.Attendance{{AppointmentID: ap.ID, Present: true}}
	if err := repo.WritePresenceBatch(ctx, rows); err != nil {
		t.Fatalf("write presence: %v", err)
	}

	// Passagem defensiva do editar: não pode zerar o flag
	if err := repo.EnsureAttendance(ctx, ap.ID); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	presence, err := repo.PresenceForAppointments(ctx, []uint{ap.ID})
	if err != nil {
		t.Fatalf("presence: %v", err)
	}
	if !presence[ap.ID] {
		t.Fatalf("expected flag to survive a re-ensure")
	}

	var count int64
	if err := repo.db.Model(&models.Attendance{}).
		Where("appointment_id = ?", ap.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one attendance row, got %d", count)
	}
}

func TestDeleteAppointmentCascadeLeavesNoOrphan(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()
	day := mustDate(t, "2026-03-11")

	ap := seedAppointment(t, repo, "Duda", day, "11:00", nil)
	if err := repo.EnsureAttendance(ctx, ap.ID); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	if err := repo.DeleteAppointmentCascade(ctx, ap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var attCount int64
	if err := repo.db.Model(&models.Attendance{}).Count(&attCount).Error; err != nil {
		t.Fatalf("count attendance: %v", err)
	}
	if attCount != 0 {
		t.Fatalf("expected no orphan attendance, got %d", attCount)
	}

	var apCount int64
	if err := repo.db.Model(&models.Appointment{}).Count(&apCount).Error; err != nil {
		t.Fatalf("count appointments: %v", err)
	}
	if apCount != 0 {
		t.Fatalf("expected appointment gone, got %d", apCount)
	}
}

func TestListAppointmentsForDateOrdersByTime(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()
	day := mustDate(t, "2026-03-12")
	otherDay := mustDate(t, "2026-03-13")

	seedAppointment(t, repo, "Tarde", day, "15:30", nil)
	seedAppointment(t, repo, "Manha", day, "08:00", nil)
	seedAppointment(t, repo, "Outro Dia", otherDay, "07:00", nil)

	aps, err := repo.ListAppointmentsForDate(ctx, day)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(aps) != 2 {
		t.Fatalf("expected 2 appointments for the day, got %d", len(aps))
	}
	if aps[0].Time != "08:00" || aps[1].Time != "15:30" {
		t.Fatalf("expected ascending time order, got %q then %q", aps[0].Time, aps[1].Time)
	}
	if aps[0].Client.Name != "Manha" {
		t.Fatalf("expected client preloaded, got %q", aps[0].Client.Name)
	}
}

func TestContractLinkTokenIsUnique(t *testing.T) {
	repo := NewScheduleGormRepository(newTestDB(t))
	ctx := context.Background()

	client, err := repo.UpsertClientByName(ctx, "Eva", "11933334444", "Geral")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	first := &models.ContractLink{ClientID: client.ID, Token: "aabbccdd00", FullURL: "http://x/cliente/eva/aabbccdd00/"}
	if err := repo.CreateContractLink(ctx, first); err != nil {
		t.Fatalf("create first link: %v", err)
	}

	dup := &models.ContractLink{ClientID: client.ID, Token: "aabbccdd00", FullURL: "http://x/cliente/eva/aabbccdd00/"}
	if err := repo.CreateContractLink(ctx, dup); err == nil {
		t.Fatalf("expected unique violation for duplicated token")
	}
}
