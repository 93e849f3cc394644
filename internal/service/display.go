package service

import (
	"fmt"
	"strconv"

	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
)

// Rendering helpers shared by the CLI and anything else printing players for
// humans. All pure string formatting.

// CategoryLabel renders a category key as its display heading.
func CategoryLabel(category string) string {
	switch category {
	case "goals":
		return "Most Goals"
	case "assists":
		return "Most Assists"
	case "points":
		return "Most Points"
	case "plusMinus":
		return "Best Plus/Minus"
	case "pointsPerGame":
		return "Best Points Per Game"
	case "shotPercentage":
		return "Best Shot Percentage"
	default:
		return category
	}
}

// CategoryValue renders a player's value in one category with the category's
// precision conventions; "N/A" without stats.
func CategoryValue(player model.Player, category string) string {
	if !player.HasStats() {
		return "N/A"
	}
	stats := *player.SeasonStats
	switch category {
	case "goals":
		return strconv.Itoa(stats.Goals)
	case "assists":
		return strconv.Itoa(stats.Assists)
	case "points":
		return strconv.Itoa(stats.Points)
	case "plusMinus":
		return strconv.Itoa(stats.PlusMinus)
	case "pointsPerGame":
		return fmt.Sprintf("%.2f", stats.PointsPerGame)
	case "shotPercentage":
		return fmt.Sprintf("%.2f%%", stats.ShotPercentage)
	default:
		return "N/A"
	}
}

// FormatSeason renders an 8-digit season code like "20232024" as "2023-2024".
// Anything else passes through unchanged.
func FormatSeason(season string) string {
	if len(season) == 8 {
		return season[:4] + "-" + season[4:]
	}
	return season
}

// StatLine renders a one-line season summary for terminal output.
func StatLine(stats model.PlayerStats) string {
	return fmt.Sprintf(
		"GP: %d, G: %d, A: %d, P: %d, +/-: %d, PPG: %d, PPP: %d, S: %d, P/GP: %.2f, S%%: %.1f%%",
		stats.GamesPlayed, stats.Goals, stats.Assists, stats.Points, stats.PlusMinus,
		stats.PowerPlayGoals, stats.PowerPlayPoints, stats.Shots,
		stats.PointsPerGame, stats.ShotPercentage,
	)
}

// PlayerLine renders the roster line for one player.
func PlayerLine(p model.Player) string {
	return fmt.Sprintf("%s (%s, %s)", p.FullName, p.TeamName, p.Position)
}

// GameTypeLabel names a game-type code for display.
func GameTypeLabel(gameType string) string {
	switch gameType {
	case nhl.GameTypeRegularSeason:
		return "Regular Season"
	case nhl.GameTypePlayoffs:
		return "Playoffs"
	default:
		return gameType
	}
}
