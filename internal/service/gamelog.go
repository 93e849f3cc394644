package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/payload"
)

const gameDateLayout = "2006-01-02"

// NormalizeGameLogs converts one raw game-log payload into canonical records.
// The payload is either a top-level array or an object holding the array
// under "gameLog"; error markers and unrecognized shapes yield no records.
// A malformed entry resolves to its per-field defaults instead of aborting
// the batch.
func NormalizeGameLogs(raw any, log zerolog.Logger) []model.GameLog {
	if payload.IsErrorMarker(raw) {
		return nil
	}

	entries, ok := raw.([]any)
	if !ok {
		if entries, ok = payload.Array(raw, "gameLog"); !ok {
			return nil
		}
	}

	logs := make([]model.GameLog, 0, len(entries))
	for _, entry := range entries {
		logs = append(logs, normalizeGameLog(entry, log))
	}
	return logs
}

// normalizeGameLog resolves one entry. Counting stats may sit at the entry's
// top level or inside a nested "stat" object; absent or non-numeric values
// coalesce to zero.
func normalizeGameLog(entry any, log zerolog.Logger) model.GameLog {
	var gl model.GameLog
	gl.GameID = int64(payload.Int(entry, "gameId", "game.gamePk"))
	gl.TeamAbbrev, _ = payload.String(entry, "teamAbbrev", "team.abbreviation")
	gl.HomeRoadFlag, _ = payload.String(entry, "homeRoadFlag")
	gl.GameDate = normalizeGameDate(entry, log)
	gl.Goals = payload.Int(entry, "goals", "stat.goals")
	gl.Assists = payload.Int(entry, "assists", "stat.assists")
	gl.Points = payload.Int(entry, "points", "stat.points")
	gl.PlusMinus = payload.Int(entry, "plusMinus", "stat.plusMinus")
	gl.PowerPlayGoals = payload.Int(entry, "powerPlayGoals", "stat.powerPlayGoals")
	gl.PowerPlayPoints = payload.Int(entry, "powerPlayPoints", "stat.powerPlayPoints")
	gl.GameWinningGoals = payload.Int(entry, "gameWinningGoals", "stat.gameWinningGoals")
	gl.OTGoals = payload.Int(entry, "otGoals", "stat.otGoals")
	gl.Shots = payload.Int(entry, "shots", "stat.shots")
	gl.Shifts = payload.Int(entry, "shifts", "stat.shifts")
	gl.OpponentAbbrev, _ = payload.String(entry, "opponentAbbrev", "opponent.abbreviation", "opponent.name")

	toi, _ := payload.String(entry, "toi", "timeOnIce", "stat.timeOnIce")
	gl.SetTimeOnIce(toi)
	return gl
}

// normalizeGameDate accepts date or date-time strings, truncating to the
// date-only prefix before parsing. Unparseable dates substitute the current
// date with a log entry rather than failing the record.
func normalizeGameDate(entry any, log zerolog.Logger) string {
	raw, ok := payload.String(entry, "gameDate", "date")
	if ok {
		date := raw
		if len(date) > len(gameDateLayout) {
			date = date[:len(gameDateLayout)]
		}
		if _, err := time.Parse(gameDateLayout, date); err == nil {
			return date
		}
	}

	today := time.Now().UTC().Format(gameDateLayout)
	log.Warn().Str("game_date", raw).Str("fallback", today).Msg("unparseable game date, substituting current date")
	return today
}
