package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "sessao"

// ensureSession devolve o id da sessão do operador, emitindo o cookie
// na primeira visita. O rascunho de cópia fica pendurado nesse id.
func ensureSession(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}
