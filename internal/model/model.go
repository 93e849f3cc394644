// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior; the one
// exception is time-on-ice parsing, which lives next to the field it derives.
package model

import (
	"strconv"
	"strings"
)

// GameLog is one game's raw stat line for a player, as normalized from an
// upstream payload. Immutable after population; owned by its Player.
type GameLog struct {
	GameID           int64   `json:"gameId"`
	TeamAbbrev       string  `json:"teamAbbrev"`
	HomeRoadFlag     string  `json:"homeRoadFlag"` // "H" or "R"
	GameDate         string  `json:"gameDate"`     // YYYY-MM-DD
	Goals            int     `json:"goals"`
	Assists          int     `json:"assists"`
	Points           int     `json:"points"`
	PlusMinus        int     `json:"plusMinus"`
	PowerPlayGoals   int     `json:"powerPlayGoals"`
	PowerPlayPoints  int     `json:"powerPlayPoints"`
	GameWinningGoals int     `json:"gameWinningGoals"`
	OTGoals          int     `json:"otGoals"`
	Shots            int     `json:"shots"`
	Shifts           int     `json:"shifts"`
	TimeOnIce        string  `json:"timeOnIce"` // "MM:SS" as reported upstream
	TimeOnIceMinutes float64 `json:"timeOnIceMinutes"`
	OpponentAbbrev   string  `json:"opponentAbbrev"`
}

// SetTimeOnIce stores the raw "MM:SS" string and re-derives TimeOnIceMinutes.
// Always use this instead of assigning the fields directly so the two stay
// consistent.
func (g *GameLog) SetTimeOnIce(toi string) {
	g.TimeOnIce = toi
	g.TimeOnIceMinutes = ParseTimeOnIce(toi)
}

// ParseTimeOnIce converts "MM:SS" into decimal minutes (MM + SS/60).
// Anything that does not conform yields 0, never an error.
func ParseTimeOnIce(toi string) float64 {
	if toi == "" {
		return 0
	}
	parts := strings.Split(toi, ":")
	if len(parts) != 2 {
		return 0
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return float64(minutes) + float64(seconds)/60.0
}

// PlayerStats is the season aggregate for one (player, season, game type).
type PlayerStats struct {
	GamesPlayed      int     `json:"gamesPlayed"`
	Goals            int     `json:"goals"`
	Assists          int     `json:"assists"`
	Points           int     `json:"points"`
	PlusMinus        int     `json:"plusMinus"`
	PowerPlayGoals   int     `json:"powerPlayGoals"`
	PowerPlayPoints  int     `json:"powerPlayPoints"`
	Shots            int     `json:"shots"`
	PointsPerGame    float64 `json:"pointsPerGame"`
	GoalsPerGame     float64 `json:"goalsPerGame"`
	AssistsPerGame   float64 `json:"assistsPerGame"`
	ShotPercentage   float64 `json:"shotPercentage"`
	AverageTimeOnIce float64 `json:"averageTimeOnIce"`
}

// Player is the canonical entity assembled from upstream payloads.
// It is built in stages: the resolver fills identity fields, game logs are
// attached next, season stats last. Each stage returns a new value instead of
// mutating shared state, so a partially built Player is never observable.
type Player struct {
	ID          string       `json:"id"`
	FullName    string       `json:"fullName"`
	TeamName    string       `json:"teamName"`
	Position    string       `json:"position"`
	ImageURL    string       `json:"imageUrl"`
	GameLogs    []GameLog    `json:"gameLogs"`
	SeasonStats *PlayerStats `json:"seasonStats,omitempty"`
}

// WithGameLogs returns a copy of the player with the given game logs attached.
func (p Player) WithGameLogs(logs []GameLog) Player {
	p.GameLogs = logs
	return p
}

// WithSeasonStats returns a copy of the player with the aggregate attached,
// replacing any previous one.
func (p Player) WithSeasonStats(stats PlayerStats) Player {
	p.SeasonStats = &stats
	return p
}

// HasStats reports whether a season aggregate has been attached.
func (p Player) HasStats() bool { return p.SeasonStats != nil }

// IsPlaceholder reports whether this player was synthesized from unavailable
// upstream data. Callers that care about data quality should check this before
// trusting identity fields; stats for a placeholder are all zero.
func (p Player) IsPlaceholder() bool {
	return strings.HasPrefix(p.FullName, "Player ") && p.TeamName == "" && p.Position == ""
}

// CategoryLeader names the winner of one statistical category. Winner is nil
// when no compared player carried stats. HasTies is set when another player
// matched the winning value exactly; the winner itself stays the first player
// in input order to reach that value.
type CategoryLeader struct {
	Winner  *Player `json:"winner"`
	HasTies bool    `json:"hasTies"`
}

// SeriesPoint is one (date, value) sample of a per-game chart series.
// Slices of SeriesPoint preserve game-log order, oldest first.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ComparisonResult is the full multi-player comparison, produced fresh per
// request and never mutated afterwards.
//
// CategoryWinners always holds exactly the six tracked categories.
// SimilarityScores and StatDifferences hold one entry per unordered pair of
// stats-bearing input players, keyed "idA-idB" in input order.
type ComparisonResult struct {
	Players          []Player                      `json:"players"`
	CategoryWinners  map[string]CategoryLeader     `json:"categoryWinners"`
	SimilarityScores map[string]float64            `json:"similarityScores"`
	StatDifferences  map[string]map[string]float64 `json:"statDifferences"`
}
