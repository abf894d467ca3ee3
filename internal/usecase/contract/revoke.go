package contract

import (
	"context"

	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
)

type RevokeLink struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRevokeLink(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RevokeLink {
	return &RevokeLink{
		repo:  repo,
		audit: audit,
	}
}

// Execute apaga o link em definitivo. Não há lixeira nem trilha além
// do registro de auditoria.
func (uc *RevokeLink) Execute(ctx context.Context, linkID uint) error {
	if err := uc.repo.DeleteContractLink(ctx, linkID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.ErrBusiness("link_nao_encontrado")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "contract_link_revoked",
		Entity:   "contract_link",
		EntityID: &linkID,
	})

	return nil
}
