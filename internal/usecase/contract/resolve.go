package contract

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

type ResolveLink struct {
	repo domain.Repository
}

func NewResolveLink(repo domain.Repository) *ResolveLink {
	return &ResolveLink{repo: repo}
}

// Execute resolve o token para o cliente dono do link. A leitura não
// consome o link: pode ser repetida. Token desconhecido é um resultado
// de negócio, não uma falha.
func (uc *ResolveLink) Execute(
	ctx context.Context,
	token string,
) (*models.Client, error) {

	link, err := uc.repo.GetContractLinkByToken(ctx, token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("link_invalido")
		}
		return nil, err
	}

	return &link.Client, nil
}
