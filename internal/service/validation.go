package service

import (
	"strconv"
	"strings"

	"github.com/nhlstats/player-comparison-service/internal/nhl"
)

func isValidPlayerID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isValidSeason accepts the NHL 8-digit season code ("20232024") where the
// second year immediately follows the first.
func isValidSeason(season string) bool {
	if len(season) != 8 {
		return false
	}
	start, err := strconv.Atoi(season[:4])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(season[4:])
	if err != nil {
		return false
	}
	return end == start+1
}

func isValidGameType(gameType string) bool {
	switch gameType {
	case nhl.GameTypeRegularSeason, nhl.GameTypePlayoffs:
		return true
	default:
		return false
	}
}

// seasonParamErrors validates the season/game-type pair shared by every
// fetch use case.
func seasonParamErrors(season, gameType string) []FieldError {
	var ferrs []FieldError
	if !isValidSeason(season) {
		ferrs = append(ferrs, FieldError{Field: "season", Message: "must be an 8-digit code like 20232024"})
	}
	if !isValidGameType(gameType) {
		ferrs = append(ferrs, FieldError{Field: "gameType", Message: "must be 2 (regular season) or 3 (playoffs)"})
	}
	return ferrs
}

// canonicalStat lowercases and trims a stat name so lookups tolerate the
// casing clients actually send ("plusMinus", "PLUSMINUS", " goals ").
func canonicalStat(stat string) string {
	return strings.ToLower(strings.TrimSpace(stat))
}
