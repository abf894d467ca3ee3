package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/essencia-estetica/agenda-api/internal/httperr"
	"github.com/essencia-estetica/agenda-api/internal/usecase/contract"
)

type ContratoHandler struct {
	issueUC   *contract.IssueLink
	resolveUC *contract.ResolveLink
	revokeUC  *contract.RevokeLink
	listUC    *contract.ListLinks
	baseURL   string
}

func NewContratoHandler(
	issueUC *contract.IssueLink,
	resolveUC *contract.ResolveLink,
	revokeUC *contract.RevokeLink,
	listUC *contract.ListLinks,
	baseURL string,
) *ContratoHandler {
	return &ContratoHandler{
		issueUC:   issueUC,
		resolveUC: resolveUC,
		revokeUC:  revokeUC,
		listUC:    listUC,
		baseURL:   baseURL,
	}
}

type IssueLinkForm struct {
	ClienteID uint `form:"cliente_id" binding:"required"`
}

// ======================================================
// GESTÃO (EQUIPE)
// ======================================================

func (h *ContratoHandler) List(c *gin.Context) {
	links, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "falha_contratos", "Erro ao listar os links.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"links": links})
}

func (h *ContratoHandler) Issue(c *gin.Context) {
	var form IssueLinkForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "formulario_invalido", "Informe o cliente.")
		return
	}

	issued, err := h.issueUC.Execute(c.Request.Context(), form.ClienteID, h.baseURL)
	if err != nil {
		if httperr.IsBusiness(err, "cliente_nao_encontrado") {
			httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "falha_emissao", "Erro ao emitir o link.")
		return
	}

	c.JSON(http.StatusCreated, issued)
}

func (h *ContratoHandler) Revoke(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.revokeUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "link_nao_encontrado") {
			httperr.NotFound(c, "link_nao_encontrado", "Link não encontrado.")
			return
		}
		httperr.Internal(c, "falha_exclusao", "Erro ao excluir o link.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/contratos/")
}

// ======================================================
// PÁGINA PÚBLICA
// ======================================================

// ResolvePublic resolve o token do link compartilhado. O slug na URL é
// cosmético; só o token identifica o cliente.
func (h *ContratoHandler) ResolvePublic(c *gin.Context) {
	token := c.Param("token")

	client, err := h.resolveUC.Execute(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, "link_invalido") {
			httperr.NotFound(c, "link_invalido", "Este link não é válido.")
			return
		}
		httperr.Internal(c, "falha_link", "Erro ao abrir o link.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente": gin.H{
			"name":  client.Name,
			"phone": client.Phone,
			"area":  client.Area,
		},
	})
}
