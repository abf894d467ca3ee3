package contract

import (
	"context"

	domain "github.com/essencia-estetica/agenda-api/internal/domain/schedule"
	"github.com/essencia-estetica/agenda-api/internal/models"
)

type ListLinks struct {
	repo domain.Repository
}

func NewListLinks(repo domain.Repository) *ListLinks {
	return &ListLinks{repo: repo}
}

func (uc *ListLinks) Execute(ctx context.Context) ([]models.ContractLink, error) {
	return uc.repo.ListContractLinks(ctx)
}
