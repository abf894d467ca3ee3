package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	"github.com/essencia-estetica/agenda-api/internal/config"
	"github.com/essencia-estetica/agenda-api/internal/handlers"
	infraRepo "github.com/essencia-estetica/agenda-api/internal/infra/repository"
	"github.com/essencia-estetica/agenda-api/internal/pdfexport"
	"github.com/essencia-estetica/agenda-api/internal/session"
	ucAttendance "github.com/essencia-estetica/agenda-api/internal/usecase/attendance"
	ucBooking "github.com/essencia-estetica/agenda-api/internal/usecase/booking"
	ucContract "github.com/essencia-estetica/agenda-api/internal/usecase/contract"
	ucReport "github.com/essencia-estetica/agenda-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	sessions, err := session.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	exporter := pdfexport.New()

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(scheduleRepo, auditDispatcher, cfg.Timezone)
	updateUC := ucBooking.NewUpdateAppointment(scheduleRepo, auditDispatcher, cfg.Timezone)
	deleteUC := ucBooking.NewDeleteAppointment(scheduleRepo, auditDispatcher)
	copyUC := ucBooking.NewCopyTemplate(scheduleRepo, sessions)

	listDayUC := ucAttendance.NewListDay(scheduleRepo)
	presenceUC := ucAttendance.NewSetPresenceBulk(scheduleRepo, auditDispatcher)

	summarizeUC := ucReport.NewSummarizeDay(scheduleRepo)

	issueUC := ucContract.NewIssueLink(scheduleRepo, auditDispatcher)
	resolveUC := ucContract.NewResolveLink(scheduleRepo)
	revokeUC := ucContract.NewRevokeLink(scheduleRepo, auditDispatcher)
	listLinksUC := ucContract.NewListLinks(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	agendaHandler := handlers.NewAgendaHandler(
		scheduleRepo,
		sessions,
		bookUC,
		updateUC,
		deleteUC,
		copyUC,
	)

	painelHandler := handlers.NewPainelHandler(
		listDayUC,
		presenceUC,
		summarizeUC,
		exporter,
		cfg.Timezone,
	)

	contratoHandler := handlers.NewContratoHandler(
		issueUC,
		resolveUC,
		revokeUC,
		listLinksUC,
		cfg.BaseURL,
	)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/cadastro-agenda/", agendaHandler.ShowBookingForm)
	r.POST("/cadastro-agenda/", agendaHandler.CreateBooking)

	r.GET("/autocomplete-cliente/", agendaHandler.AutocompleteClients)

	r.GET("/agenda/editar/:id/", agendaHandler.ShowEditForm)
	r.POST("/agenda/editar/:id/", agendaHandler.SaveEdit)

	r.GET("/painel-presenca/", painelHandler.ShowDay)
	r.POST("/painel-presenca/", painelHandler.ApplyPresence)

	r.GET("/relatorio-presenca/", painelHandler.ShowReport)
	r.GET("/painel/exportar-pdf/", painelHandler.ExportPDF)

	r.GET("/contratos/", contratoHandler.List)
	r.POST("/contratos/", contratoHandler.Issue)
	r.POST("/contratos/:id/excluir", contratoHandler.Revoke)

	r.GET("/cliente/:slug/:token/", contratoHandler.ResolvePublic)
}
