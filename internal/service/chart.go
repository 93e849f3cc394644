package service

import (
	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/model"
)

type chartService struct {
	log zerolog.Logger
}

func NewChartService(logger zerolog.Logger) ChartService {
	l := logger.With().Str("module", "service").Str("component", "chart").Logger()
	return &chartService{log: l}
}

// BarChartData maps player names to one stat's value, skipping players
// without aggregates.
func (s *chartService) BarChartData(players []model.Player, stat string) map[string]float64 {
	data := make(map[string]float64, len(players))
	for _, p := range players {
		if !p.HasStats() {
			continue
		}
		data[p.FullName] = statByName(*p.SeasonStats, stat)
	}
	return data
}

// RadarChartData maps player names to their full labeled stat sets, one axis
// per label.
func (s *chartService) RadarChartData(players []model.Player) map[string]map[string]float64 {
	data := make(map[string]map[string]float64, len(players))
	for _, p := range players {
		if !p.HasStats() {
			continue
		}
		data[p.FullName] = labeledStats(*p.SeasonStats)
	}
	return data
}

// GameByGameSeries returns one point per game in log order.
func (s *chartService) GameByGameSeries(player model.Player, stat string) []model.SeriesPoint {
	series := make([]model.SeriesPoint, 0, len(player.GameLogs))
	key := canonicalStat(stat)
	for _, gl := range player.GameLogs {
		series = append(series, model.SeriesPoint{Date: gl.GameDate, Value: gameValue(gl, key)})
	}
	return series
}

// CumulativeSeries returns running totals per game in log order. Goals,
// assists and points accumulate; any other name accumulates points.
func (s *chartService) CumulativeSeries(player model.Player, stat string) []model.SeriesPoint {
	series := make([]model.SeriesPoint, 0, len(player.GameLogs))
	key := canonicalStat(stat)
	total := 0
	for _, gl := range player.GameLogs {
		switch key {
		case "goals":
			total += gl.Goals
		case "assists":
			total += gl.Assists
		default:
			total += gl.Points
		}
		series = append(series, model.SeriesPoint{Date: gl.GameDate, Value: float64(total)})
	}
	return series
}

// NormalizeStats rescales values against the largest one so everything lands
// on a 0-100 range regardless of the stat's natural scale.
func (s *chartService) NormalizeStats(values map[string]float64) map[string]float64 {
	normalized := make(map[string]float64, len(values))
	if len(values) == 0 {
		return normalized
	}

	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 { // a zero peak would divide to NaN
		max = 1
	}

	for k, v := range values {
		normalized[k] = v * 100 / max
	}
	return normalized
}

// statByName reads one season stat by its canonical name; unknown names
// read as zero.
func statByName(stats model.PlayerStats, stat string) float64 {
	switch canonicalStat(stat) {
	case "goals":
		return float64(stats.Goals)
	case "assists":
		return float64(stats.Assists)
	case "points":
		return float64(stats.Points)
	case "plusminus":
		return float64(stats.PlusMinus)
	case "pointspergame":
		return stats.PointsPerGame
	case "shotpercentage":
		return stats.ShotPercentage
	case "powerplaygoals":
		return float64(stats.PowerPlayGoals)
	case "powerplaypoints":
		return float64(stats.PowerPlayPoints)
	case "shots":
		return float64(stats.Shots)
	case "gamesplayed":
		return float64(stats.GamesPlayed)
	default:
		return 0
	}
}

// gameValue reads one per-game stat by canonical name; unknown names read
// as points.
func gameValue(gl model.GameLog, key string) float64 {
	switch key {
	case "goals":
		return float64(gl.Goals)
	case "assists":
		return float64(gl.Assists)
	case "points":
		return float64(gl.Points)
	case "plusminus":
		return float64(gl.PlusMinus)
	case "shots":
		return float64(gl.Shots)
	case "timeonice":
		return gl.TimeOnIceMinutes
	default:
		return float64(gl.Points)
	}
}

// labeledStats renders the fixed radar-axis set for one player.
func labeledStats(stats model.PlayerStats) map[string]float64 {
	return map[string]float64{
		"Goals":      float64(stats.Goals),
		"Assists":    float64(stats.Assists),
		"Points":     float64(stats.Points),
		"Plus/Minus": float64(stats.PlusMinus),
		"PPG":        float64(stats.PowerPlayGoals),
		"PPP":        float64(stats.PowerPlayPoints),
		"Shots":      float64(stats.Shots),
		"Pts/GP":     stats.PointsPerGame,
		"Shot%":      stats.ShotPercentage,
	}
}
