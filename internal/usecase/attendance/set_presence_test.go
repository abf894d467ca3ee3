package attendance

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	dbpkg "github.com/essencia-estetica/agenda-api/internal/db"
	infraRepo "github.com/essencia-estetica/agenda-api/internal/infra/repository"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

func newTestRepo(t *testing.T) (*infraRepo.ScheduleGormRepository, *audit.Dispatcher) {
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
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return infraRepo.NewScheduleGormRepository(db), audit.NewDispatcher(audit.New(db))
}

func seedDay(
	t *testing.T,
	repo *infraRepo.ScheduleGormRepository,
	day time.Time,
	names []string,
) []*models.Appointment {
	t.Helper()
	ctx := context.Background()

	aps := make([]*models.Appointment, 0, len(names))
	for i, name := range names {
		client, err := repo.UpsertClientByName(ctx, name, "11955556666", "Geral")
		if err != nil {
			t.Fatalf("upsert %q: %v", name, err)
		}

		ap := &models.Appointment{
			ClientID: client.ID,
			Date:     day,
			Time:     time.Date(0, 1, 1, 8+i, 0, 0, 0, time.UTC).Format("15:04"),
		}
		if err := repo.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		if err := repo.EnsureAttendance(ctx, ap.ID); err != nil {
			t.Fatalf("ensure %q: %v", name, err)
		}
		aps = append(aps, ap)
	}

	return aps
}

func testDay(t *testing.T) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", "2026-04-01")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	return day
}

func TestSetPresenceBulkUnchangedStateWritesNothing(t *testing.T) {
	repo, dispatcher := newTestRepo(t)
	uc := NewSetPresenceBulk(repo, dispatcher)
	ctx := context.Background()
	day := testDay(t)

	seedDay(t, repo, day, []string{"Ana", "Bia"})

	submitted := map[uint]bool{}
	updated, err := uc.Execute(ctx, day, submitted)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected zero writes for unchanged state, got %d", updated)
	}
}

func TestSetPresenceBulkWritesOnlyTheFlippedRow(t *testing.T) {
	repo, dispatcher := newTestRepo(t)
	uc := NewSetPresenceBulk(repo, dispatcher)
	ctx := context.Background()
	day := testDay(t)

	aps := seedDay(t, repo, day, []string{"Ana", "Bia", "Clara"})

	updated, err := uc.Execute(ctx, day, map[uint]bool{aps[1].ID: true})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected exactly one write, got %d", updated)
	}

	// Visível na releitura imediata
	presence, err := repo.PresenceForAppointments(ctx, []uint{aps[0].ID, aps[1].ID, aps[2].ID})
	if err != nil {
		t.Fatalf("presence: %v", err)
	}
	if presence[aps[0].ID] || !presence[aps[1].ID] || presence[aps[2].ID] {
		t.Fatalf("unexpected presence state: %v", presence)
	}
}

func TestSetPresenceBulkResubmissionIsIdempotent(t *testing.T) {
	repo, dispatcher := newTestRepo(t)
	uc := NewSetPresenceBulk(repo, dispatcher)
	ctx := context.Background()
	day := testDay(t)

	aps := seedDay(t, repo, day, []string{"Ana", "Bia"})
	submitted := map[uint]bool{aps[0].ID: true}

	if _, err := uc.Execute(ctx, day, submitted); err != nil {
		t.Fatalf("first execute: %v", err)
	}

	updated, err := uc.Execute(ctx, day, submitted)
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected resubmission to write nothing, got %d", updated)
	}
}

func TestListDayDefaultsMissingAttendanceToAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)
	uc := NewListDay(repo)
	ctx := context.Background()
	day := testDay(t)

	// Agendamento sem linha de presença nenhuma
	client, err := repo.UpsertClientByName(ctx, "Sem Registro", "11955556666", "Geral")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	ap := &models.Appointment{ClientID: client.ID, Date: day, Time: "14:00"}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := uc.Execute(ctx, day)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].Present {
		t.Fatalf("expected missing attendance to report absent")
	}
	if entries[0].Status != "faltou" {
		t.Fatalf("expected status faltou, got %q", entries[0].Status)
	}
	if entries[0].Date != "01/04/2026" {
		t.Fatalf("expected formatted date, got %q", entries[0].Date)
	}
}
