package handler

import (
	"net/http"
	"strconv"

	"github.com/bitfantasy/worktrack/internal/work/service"
	"github.com/gin-gonic/gin"
)

// SessionHandler 作业记录处理器
type SessionHandler struct {
	svc *service.SessionService
}

func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Recent 最近作业记录，带工单与员工摘要
// GET /api/work-sessions/recent?limit=10
func (h *SessionHandler) Recent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	c.JSON(http.StatusOK, h.svc.Recent(c.Request.Context(), limit))
}
