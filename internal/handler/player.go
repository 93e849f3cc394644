package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/service"
	"github.com/nhlstats/player-comparison-service/pkg/response"
)

// serviceTimeout caps one request's upstream budget. A single player costs
// two sequential NHL calls, a comparison fans out in bounded parallel waves,
// so this stays generous rather than per-call tight.
const serviceTimeout = 30 * time.Second

// Chart series flavors accepted by the chart endpoint.
const (
	chartKindPerGame    = "pergame"
	chartKindCumulative = "cumulative"
)

type PlayerHandler struct {
	svc      service.PlayerService
	charts   service.ChartService
	defaults Defaults
}

func NewPlayerHandler(svc service.PlayerService, charts service.ChartService, defaults Defaults) *PlayerHandler {
	return &PlayerHandler{svc: svc, charts: charts, defaults: defaults}
}

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.GET("/:id", h.getByID)
		g.GET("/:id/gamelog", h.getGameLog)
		g.GET("/:id/chart", h.getChart)
	}
}

// seasonParams resolves season and game type from the query string, falling
// back to the configured defaults. Validation stays in the service layer.
func seasonParams(c *gin.Context, d Defaults) (string, string) {
	season := strings.TrimSpace(c.Query("season"))
	if season == "" {
		season = d.Season
	}
	gameType := strings.TrimSpace(c.Query("gameType"))
	if gameType == "" {
		gameType = d.GameType
	}
	return season, gameType
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	season, gameType := seasonParams(c, h.defaults)

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	player, err := h.svc.GetPlayerWithStats(ctx, c.Param("id"), season, gameType)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *PlayerHandler) getGameLog(c *gin.Context) {
	season, gameType := seasonParams(c, h.defaults)

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	logs, err := h.svc.GetGameLogs(ctx, c.Param("id"), season, gameType)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, logs)
}

type chartResponse struct {
	PlayerID string              `json:"playerId"`
	Stat     string              `json:"stat"`
	Kind     string              `json:"kind"`
	Season   string              `json:"season"`
	GameType string              `json:"gameType"`
	Series   []model.SeriesPoint `json:"series"`
}

// getChart serves per-game or cumulative series for one stat, ready for a
// client-side chart.
func (h *PlayerHandler) getChart(c *gin.Context) {
	start := time.Now()
	season, gameType := seasonParams(c, h.defaults)
	stat := c.DefaultQuery("stat", "points")
	kind := c.DefaultQuery("kind", chartKindPerGame)
	if kind != chartKindPerGame && kind != chartKindCumulative {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{
			Field:   "kind",
			Message: "must be pergame or cumulative",
		}}))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	player, err := h.svc.GetPlayerWithStats(ctx, c.Param("id"), season, gameType)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	var series []model.SeriesPoint
	if kind == chartKindCumulative {
		series = h.charts.CumulativeSeries(player, stat)
	} else {
		series = h.charts.GameByGameSeries(player, stat)
	}

	log.Debug().
		Str("path", c.Request.URL.Path).
		Str("stat", stat).
		Str("kind", kind).
		Int("points", len(series)).
		Dur("duration", time.Since(start)).
		Msg("chart series built")

	response.WriteData(c, http.StatusOK, chartResponse{
		PlayerID: player.ID,
		Stat:     stat,
		Kind:     kind,
		Season:   season,
		GameType: gameType,
		Series:   series,
	})
}
