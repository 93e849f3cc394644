package service

import (
	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/payload"
)

// knownPlayerNames maps well-known player ids to display names, used as the
// last name lookup before synthesizing a placeholder. A dead upstream still
// yields readable output for the usual comparison subjects.
var knownPlayerNames = map[string]string{
	"8471214": "Alex Ovechkin",
	"8471675": "Sidney Crosby",
	"8476453": "Nikita Kucherov",
	"8477492": "Nathan MacKinnon",
	"8477934": "Leon Draisaitl",
	"8477956": "David Pastrnak",
	"8478402": "Connor McDavid",
	"8479318": "Auston Matthews",
}

// ResolvePlayer builds a canonical Player from one raw player-info payload.
// Candidate field locations are tried in priority order and the first
// non-empty value wins; missing keys count as absent, never as errors. An
// error-marker payload degrades to a placeholder Player so downstream
// comparison always has a usable entity. The image URL is synthesized from
// the id and never fails.
func ResolvePlayer(playerID string, raw any) model.Player {
	p := model.Player{
		ID:       playerID,
		ImageURL: nhl.HeadshotURL(playerID),
		GameLogs: []model.GameLog{},
	}

	if payload.IsErrorMarker(raw) {
		p.FullName = fallbackName(playerID)
		return p
	}

	p.FullName = resolveFullName(playerID, raw)
	p.TeamName, _ = payload.String(raw, "currentTeam.name", "currentTeam.name.default", "teamName", "team.name")
	p.Position, _ = payload.String(raw, "position", "position.name", "position.code", "primaryPosition.name")
	return p
}

func resolveFullName(playerID string, raw any) string {
	if name, ok := payload.String(raw, "fullName"); ok {
		return name
	}
	first, okFirst := payload.String(raw, "firstName")
	last, okLast := payload.String(raw, "lastName")
	if okFirst && okLast {
		return first + " " + last
	}
	if name, ok := payload.String(raw, "person.fullName", "name"); ok {
		return name
	}
	return fallbackName(playerID)
}

func fallbackName(playerID string) string {
	if name, ok := knownPlayerNames[playerID]; ok {
		return name
	}
	return "Player " + playerID
}
