package booking

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/session"
)

type CopyTemplate struct {
	repo     domain.Repository
	sessions session.Store
}

func NewCopyTemplate(
	repo domain.Repository,
	sessions session.Store,
) *CopyTemplate {
	return &CopyTemplate{
		repo:     repo,
		sessions: sessions,
	}
}

// Execute guarda na sessão um rascunho do agendamento sem a data; o GET
// do formulário de cadastro consome o rascunho uma única vez.
func (uc *CopyTemplate) Execute(
	ctx context.Context,
	appointmentID uint,
	sessionID string,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.ErrBusiness("agendamento_nao_encontrado")
		}
		return err
	}

	return uc.sessions.Stash(ctx, sessionID, domain.TemplateFromAppointment(ap))
}
