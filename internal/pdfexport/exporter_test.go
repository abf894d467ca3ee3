package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/essencia-estetica/agenda-api/internal/dto"
)

func entry(name, date, hour string, amount *float64) dto.DayEntryDTO {
	return dto.DayEntryDTO{
		ClientName:    name,
		ClientPhone:   "11999990000",
		ClientArea:    "Geral",
		Date:          date,
		Time:          hour,
		PackageType:   "avulso",
		PaymentMethod: "pix",
		Amount:        amount,
	}
}

func TestExportDayProducesPDF(t *testing.T) {
	day, err := time.Parse("2006-01-02", "2026-07-01")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}

	amount := 120.0
	result, err := New().ExportDay(day, []dto.DayEntryDTO{
		entry("Maria", "01/07/2026", "09:00", &amount),
		entry("Ana", "01/07/2026", "10:00", nil),
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", result.PDF[:8])
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skipped rows, got %v", result.Skipped)
	}
}

func TestExportDaySkipsBrokenRowAndContinues(t *testing.T) {
	day, err := time.Parse("2006-01-02", "2026-07-01")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}

	result, err := New().ExportDay(day, []dto.DayEntryDTO{
		entry("Maria", "01/07/2026", "09:00", nil),
		entry("", "01/07/2026", "10:00", nil),         // sem nome
		entry("Ana", "2026-07-01", "11:00", nil),      // data malformada
		entry("Bia", "01/07/2026", "onze horas", nil), // horário malformado
		entry("Carla", "01/07/2026", "12:00", nil),
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Fatalf("expected a PDF document despite broken rows")
	}
	if len(result.Skipped) != 3 {
		t.Fatalf("expected 3 skipped rows, got %d: %v", len(result.Skipped), result.Skipped)
	}
	if result.Skipped[0].Index != 1 || result.Skipped[1].Index != 2 || result.Skipped[2].Index != 3 {
		t.Fatalf("unexpected skipped indexes: %v", result.Skipped)
	}
}

func TestFormatCurrency(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	cases := []struct {
		in   *float64
		want string
	}{
		{nil, ""},
		{v(0), "R$ 0,00"},
		{v(100), "R$ 100,00"},
		{v(1234.5), "R$ 1.234,50"},
		{v(1234567.89), "R$ 1.234.567,89"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
