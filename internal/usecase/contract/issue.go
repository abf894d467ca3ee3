package contract

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/essencia-estetica/agenda-api/internal/audit"
	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/dto"
	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

const maxTokenAttempts = 5

type IssueLink struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewIssueLink(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *IssueLink {
	return &IssueLink{
		repo:  repo,
		audit: audit,
	}
}

// Execute emite um link de contrato para o cliente. Colisão de token é
// improvável mas o índice único cobre: em conflito, gera outro.
func (uc *IssueLink) Execute(
	ctx context.Context,
	clientID uint,
	baseURL string,
) (*dto.IssuedLinkDTO, error) {

	client, err := uc.repo.GetClientByID(ctx, clientID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("cliente_nao_encontrado")
		}
		return nil, err
	}

	base := strings.TrimRight(baseURL, "/")

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token, err := newToken()
		if err != nil {
			return nil, err
		}

		relativePath := "/cliente/" + slugify(client.Name) + "/" + token + "/"
		absoluteURL := base + relativePath

		link := &models.ContractLink{
			ClientID: client.ID,
			Token:    token,
			FullURL:  absoluteURL,
		}

		if err := uc.repo.CreateContractLink(ctx, link); err != nil {
			if httperr.IsUniqueViolation(err) {
				continue
			}
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "contract_link_issued",
			Entity:   "contract_link",
			EntityID: &link.ID,
			Metadata: map[string]any{"client_id": client.ID},
		})

		return &dto.IssuedLinkDTO{
			RelativePath: relativePath,
			AbsoluteURL:  absoluteURL,
			Token:        token,
		}, nil
	}

	return nil, httperr.ErrBusiness("token_esgotado")
}
