package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/dto"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/session"
	"github.com/essencia-estetica/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	repo     domain.Repository
	sessions session.Store

	bookUC   *booking.BookAppointment
	updateUC *booking.UpdateAppointment
	deleteUC *booking.DeleteAppointment
	copyUC   *booking.CopyTemplate
}

func NewAgendaHandler(
	repo domain.Repository,
	sessions session.Store,
	bookUC *booking.BookAppointment,
	updateUC *booking.UpdateAppointment,
	deleteUC *booking.DeleteAppointment,
	copyUC *booking.CopyTemplate,
) *AgendaHandler {
	return &AgendaHandler{
		repo:     repo,
		sessions: sessions,
		bookUC:   bookUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		copyUC:   copyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingForm struct {
	Nome             string   `form:"nome" binding:"required"`
	Telefone         string   `form:"telefone" binding:"required"`
	Area             string   `form:"area"`
	Data             string   `form:"data" binding:"required"`
	Horario          string   `form:"horario" binding:"required"`
	TipoPacote       string   `form:"tipo_pacote"`
	QuantidadePacote string   `form:"quantidade_pacote"`
	FormaPagamento   string   `form:"forma_pagamento"`
	Valor            *float64 `form:"valor"`
}

func (f BookingForm) toInput() booking.BookAppointmentInput {
	return booking.BookAppointmentInput{
		ClientName:    f.Nome,
		ClientPhone:   f.Telefone,
		ClientArea:    f.Area,
		Date:          f.Data,
		Time:          f.Horario,
		PackageType:   f.TipoPacote,
		PackageQty:    f.QuantidadePacote,
		PaymentMethod: f.FormaPagamento,
		Amount:        f.Valor,
	}
}

// ======================================================
// CADASTRO
// ======================================================

// ShowBookingForm devolve os metadados do formulário e consome (uma
// única vez) o rascunho de cópia guardado na sessão.
func (h *AgendaHandler) ShowBookingForm(c *gin.Context) {
	sessionID := ensureSession(c)

	template, err := h.sessions.Pop(c.Request.Context(), sessionID)
	if err != nil {
		httperr.Internal(c, "falha_sessao", "Erro ao ler o rascunho da sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template":        template,
		"tipo_pacote":     booking.PackageTypes,
		"forma_pagamento": booking.PaymentMethods,
	})
}

func (h *AgendaHandler) CreateBooking(c *gin.Context) {
	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "formulario_invalido", "Dados do formulário inválidos.")
		return
	}

	if _, err := h.bookUC.Execute(c.Request.Context(), form.toInput()); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/cadastro-agenda/")
}

// ======================================================
// AUTOCOMPLETE
// ======================================================

func (h *AgendaHandler) AutocompleteClients(c *gin.Context) {
	term := c.Query("term")

	clients, err := h.repo.SearchClientsByPrefix(c.Request.Context(), term, 10)
	if err != nil {
		httperr.Internal(c, "falha_busca", "Erro ao buscar clientes.")
		return
	}

	results := make([]dto.AutocompleteDTO, 0, len(clients))
	for _, client := range clients {
		results = append(results, dto.AutocompleteDTO{
			Label: client.Name,
			Value: client.Name,
			Phone: client.Phone,
			Area:  client.Area,
		})
	}

	c.JSON(http.StatusOK, results)
}

// ======================================================
// EDITAR
// ======================================================

func (h *AgendaHandler) ShowEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointmentByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "falha_agenda", "Erro ao carregar o agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment":     ap,
		"tipo_pacote":     booking.PackageTypes,
		"forma_pagamento": booking.PaymentMethods,
	})
}

// SaveEdit atende os três botões do formulário de edição: copiar,
// excluir e o salvar normal.
func (h *AgendaHandler) SaveEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if _, copying := c.GetPostForm("copiar"); copying {
		sessionID := ensureSession(c)
		if err := h.copyUC.Execute(ctx, id, sessionID); err != nil {
			writeBookingError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/cadastro-agenda/")
		return
	}

	if _, deleting := c.GetPostForm("excluir"); deleting {
		if err := h.deleteUC.Execute(ctx, id); err != nil {
			writeBookingError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/painel-presenca/")
		return
	}

	var form BookingForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "formulario_invalido", "Dados do formulário inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(ctx, id, form.toInput())
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/painel-presenca/?data="+ap.Date.Format("2006-01-02"))
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

var bookingErrorMessages = map[string]string{
	"nome_obrigatorio":         "Informe o nome do cliente.",
	"telefone_invalido":        "Telefone inválido.",
	"data_invalida":            "Data inválida.",
	"horario_invalido":         "Horário inválido.",
	"tipo_pacote_invalido":     "Tipo de pacote inválido.",
	"forma_pagamento_invalida": "Forma de pagamento inválida.",
	"valor_invalido":           "Valor inválido.",
}

func writeBookingError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "agendamento_nao_encontrado") {
		httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		return
	}

	for code, message := range bookingErrorMessages {
		if httperr.IsBusiness(err, code) {
			httperr.BadRequest(c, code, message)
			return
		}
	}

	httperr.Internal(c, "falha_agenda", "Erro ao gravar o agendamento.")
}
