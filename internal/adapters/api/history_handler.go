package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/history"
)

type HistoryResponse struct {
	History []*history.SearchHistoryItem `json:"history"`
}

// getHistory handles GET /api/weather/history requests
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	items, err := s.historyUseCase.ListHistory(c.Request.Context(), userIDFrom(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if items == nil {
		items = []*history.SearchHistoryItem{}
	}

	c.JSON(http.StatusOK, HistoryResponse{History: items})
}
