package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tuyendunghub/job-board/internal/logger"
	"github.com/tuyendunghub/job-board/internal/services"
)

type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Overview(c *gin.Context) {

	overview, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		internalError(c, logger.ErrorTypeDb, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
