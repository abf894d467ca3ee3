package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	ucAttendance "github.com/essencia-estetica/agenda-api/internal/usecase/attendance"
	ucReport "github.com/essencia-estetica/agenda-api/internal/usecase/report"

	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/pdfexport"
)

// ======================================================
// HANDLER
// ======================================================

type PainelHandler struct {
	listDayUC   *ucAttendance.ListDay
	presenceUC  *ucAttendance.SetPresenceBulk
	summarizeUC *ucReport.SummarizeDay
	exporter    *pdfexport.Exporter
	timezone    string
}

func NewPainelHandler(
	listDayUC *ucAttendance.ListDay,
	presenceUC *ucAttendance.SetPresenceBulk,
	summarizeUC *ucReport.SummarizeDay,
	exporter *pdfexport.Exporter,
	tz string,
) *PainelHandler {
	return &PainelHandler{
		listDayUC:   listDayUC,
		presenceUC:  presenceUC,
		summarizeUC: summarizeUC,
		exporter:    exporter,
		timezone:    tz,
	}
}

// ======================================================
// PAINEL DE PRESENÇA
// ======================================================

func (h *PainelHandler) ShowDay(c *gin.Context) {
	date := resolveDate(h.timezone, c.Query("data"))

	entries, err := h.listDayUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "falha_painel", "Erro ao carregar o painel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data_selecionada": date.Format("2006-01-02"),
		"agendas":          entries,
	})
}

// ApplyPresence lê os checkboxes presenca_<id> do formulário e grava o
// lote diffado do dia.
func (h *PainelHandler) ApplyPresence(c *gin.Context) {
	raw := c.PostForm("data")
	if raw == "" {
		raw = c.Query("data")
	}
	date := resolveDate(h.timezone, raw)

	if err := c.Request.ParseForm(); err != nil {
		httperr.BadRequest(c, "formulario_invalido", "Dados do formulário inválidos.")
		return
	}

	submitted := make(map[uint]bool)
	for field := range c.Request.PostForm {
		idStr, found := strings.CutPrefix(field, "presenca_")
		if !found {
			continue
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			continue
		}
		submitted[uint(id)] = true
	}

	if _, err := h.presenceUC.Execute(c.Request.Context(), date, submitted); err != nil {
		httperr.Internal(c, "falha_presenca", "Erro ao gravar as presenças.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/painel-presenca/?data="+date.Format("2006-01-02"))
}

// ======================================================
// RELATÓRIO
// ======================================================

func (h *PainelHandler) ShowReport(c *gin.Context) {
	date := resolveDate(h.timezone, c.Query("data"))

	summary, err := h.summarizeUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "falha_relatorio", "Erro ao montar o relatório.")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ======================================================
// EXPORTAR PDF
// ======================================================

func (h *PainelHandler) ExportPDF(c *gin.Context) {
	date := resolveDate(h.timezone, c.Query("data"))

	entries, err := h.listDayUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "falha_exportacao", "Erro ao carregar o dia.")
		return
	}

	result, err := h.exporter.ExportDay(date, entries)
	if err != nil {
		httperr.Internal(c, "falha_exportacao", "Erro ao gerar o PDF.")
		return
	}

	for _, skipped := range result.Skipped {
		log.Printf("exportar-pdf: linha %d ignorada: %s", skipped.Index, skipped.Err)
	}

	filename := "clientes_" + date.Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}
