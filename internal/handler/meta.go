package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/service"
	"github.com/nhlstats/player-comparison-service/pkg/response"
)

// MetaHandler serves the small fixed lists clients need to build queries.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler { return &MetaHandler{} }

func (h *MetaHandler) Register(r *gin.RouterGroup) {
	r.GET("/seasons", h.seasons)
	r.GET("/gametypes", h.gameTypes)
}

// recentSeasons lists the season codes the API reliably serves game logs for,
// newest first.
var recentSeasons = []string{"20232024", "20222023", "20212022", "20202021"}

func (h *MetaHandler) seasons(c *gin.Context) {
	response.WriteData(c, http.StatusOK, recentSeasons)
}

type gameTypeEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// gameTypes returns the codes the game-log endpoint accepts, not display
// abbreviations; clients feed the code straight back into queries.
func (h *MetaHandler) gameTypes(c *gin.Context) {
	response.WriteData(c, http.StatusOK, []gameTypeEntry{
		{Code: nhl.GameTypeRegularSeason, Label: service.GameTypeLabel(nhl.GameTypeRegularSeason)},
		{Code: nhl.GameTypePlayoffs, Label: service.GameTypeLabel(nhl.GameTypePlayoffs)},
	})
}
