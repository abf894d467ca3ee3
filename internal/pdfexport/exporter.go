package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/essencia-estetica/agenda-api/internal/dto"
)

// RowError registra uma linha que não pôde ser montada; a exportação
// segue sem ela.
type RowError struct {
	Index int
	Err   string
}

type Result struct {
	PDF     []byte
	Skipped []RowError
}

var columns = []struct {
	title string
	width float64
}{
	{"Nome", 55},
	{"Telefone", 35},
	{"Data", 25},
	{"Horário", 18},
	{"Tipo de Pacote", 30},
	{"Qtd.", 20},
	{"Área", 34},
	{"Pagamento", 30},
	{"Valor", 25},
}

type Exporter struct{}

func New() *Exporter {
	return &Exporter{}
}

// ExportDay monta a tabela do dia em paisagem, uma linha por
// agendamento, na ordem em que as entradas chegam (horário crescente).
func (e *Exporter) ExportDay(
	date time.Time,
	entries []dto.DayEntryDTO,
) (*Result, error) {

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Título centralizado com a data do dia
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Clientes do dia "+date.Format("02/01/2006")), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Cabeçalho com preenchimento próprio
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)

	result := &Result{}

	printed := 0
	for i, entry := range entries {
		row, err := buildRow(entry)
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{
				Index: i,
				Err:   err.Error(),
			})
			continue
		}

		// Zebrado para leitura
		if printed%2 == 1 {
			pdf.SetFillColor(235, 235, 235)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range row {
			pdf.CellFormat(columns[j].width, 7, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		printed++
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	result.PDF = buf.Bytes()
	return result, nil
}

func buildRow(entry dto.DayEntryDTO) ([]string, error) {
	if strings.TrimSpace(entry.ClientName) == "" {
		return nil, fmt.Errorf("agendamento %d sem nome de cliente", entry.ID)
	}

	if _, err := time.Parse("02/01/2006", entry.Date); err != nil {
		return nil, fmt.Errorf("agendamento %d com data malformada %q", entry.ID, entry.Date)
	}

	if _, err := time.Parse("15:04", entry.Time); err != nil {
		return nil, fmt.Errorf("agendamento %d com horário malformado %q", entry.ID, entry.Time)
	}

	return []string{
		entry.ClientName,
		entry.ClientPhone,
		entry.Date,
		entry.Time,
		entry.PackageType,
		entry.PackageQty,
		entry.ClientArea,
		entry.PaymentMethod,
		FormatCurrency(entry.Amount),
	}, nil
}

// FormatCurrency formata em pt-BR: R$ 1.234,56. Valor nulo sai vazio.
func FormatCurrency(amount *float64) string {
	if amount == nil {
		return ""
	}

	formatted := strconv.FormatFloat(*amount, 'f', 2, 64)
	parts := strings.SplitN(formatted, ".", 2)

	intPart := parts[0]
	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "R$ " + strings.Join(grouped, ".") + "," + parts[1]
	if negative {
		out = "R$ -" + strings.Join(grouped, ".") + "," + parts[1]
	}
	return out
}
