package service

import "github.com/nhlstats/player-comparison-service/internal/model"

// AggregateStats folds game logs into season totals. Order never affects the
// result: counting stats are plain sums and the rates derive from those sums
// with divide-by-zero guards. An empty slice yields the all-zero PlayerStats.
func AggregateStats(logs []model.GameLog) model.PlayerStats {
	var stats model.PlayerStats
	stats.GamesPlayed = len(logs)

	var totalTOI float64
	for _, gl := range logs {
		stats.Goals += gl.Goals
		stats.Assists += gl.Assists
		stats.Points += gl.Points
		stats.PlusMinus += gl.PlusMinus
		stats.PowerPlayGoals += gl.PowerPlayGoals
		stats.PowerPlayPoints += gl.PowerPlayPoints
		stats.Shots += gl.Shots
		totalTOI += gl.TimeOnIceMinutes
	}

	if stats.GamesPlayed > 0 {
		games := float64(stats.GamesPlayed)
		stats.PointsPerGame = float64(stats.Points) / games
		stats.GoalsPerGame = float64(stats.Goals) / games
		stats.AssistsPerGame = float64(stats.Assists) / games
		stats.AverageTimeOnIce = totalTOI / games
	}
	if stats.Shots > 0 {
		stats.ShotPercentage = float64(stats.Goals) / float64(stats.Shots) * 100
	}
	return stats
}
