package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/service"
)

// Defaults carries the fallback query values applied when a request omits
// season or game type. Comes from config; zero values fall back to the
// current season and regular-season play.
type Defaults struct {
	Season   string
	GameType string
}

func (d *Defaults) setFallbacks() {
	if d.Season == "" {
		d.Season = nhl.CurrentSeason
	}
	if d.GameType == "" {
		d.GameType = nhl.GameTypeRegularSeason
	}
}

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, upstream Pinger, players service.PlayerService, comparisons service.ComparisonService, charts service.ChartService, defaults Defaults) {
	defaults.setFallbacks()
	h := NewHealthHandler(upstream)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	// Prometheus default registry; collectors self-register on import
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPlayerHandler(players, charts, defaults).Register(api)
		NewCompareHandler(players, comparisons, defaults).Register(api)
		NewMetaHandler().Register(api)
	}
}
