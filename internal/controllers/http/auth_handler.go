package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ObtainToken trades a username and password for an access/refresh pair.
func (h *Handler) ObtainToken(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	access, err := h.auth.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, AccessResponse{Access: access})
}
