package service

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/payload"
)

const modernGameLogPayload = `{
	"seasonId": 20232024,
	"gameLog": [
		{
			"gameId": 2023020001,
			"teamAbbrev": "EDM",
			"homeRoadFlag": "H",
			"gameDate": "2023-10-11",
			"goals": 1,
			"assists": 2,
			"points": 3,
			"plusMinus": 2,
			"powerPlayGoals": 1,
			"powerPlayPoints": 2,
			"gameWinningGoals": 1,
			"otGoals": 0,
			"shots": 5,
			"shifts": 22,
			"toi": "21:30",
			"opponentAbbrev": "VAN"
		},
		{
			"gameId": 2023020015,
			"teamAbbrev": "EDM",
			"homeRoadFlag": "R",
			"gameDate": "2023-10-14",
			"goals": 0,
			"assists": 1,
			"points": 1,
			"plusMinus": -1,
			"shots": 3,
			"shifts": 20,
			"toi": "19:45",
			"opponentAbbrev": "SEA"
		}
	]
}`

func TestNormalizeGameLogs_WrappedObject(t *testing.T) {
	logs := NormalizeGameLogs(decodeTree(t, modernGameLogPayload), zerolog.New(io.Discard))
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, want 2", len(logs))
	}

	first := logs[0]
	if first.GameID != 2023020001 {
		t.Errorf("GameID = %d, want 2023020001", first.GameID)
	}
	if first.TeamAbbrev != "EDM" || first.OpponentAbbrev != "VAN" {
		t.Errorf("teams = %q vs %q, want EDM vs VAN", first.TeamAbbrev, first.OpponentAbbrev)
	}
	if first.HomeRoadFlag != "H" {
		t.Errorf("HomeRoadFlag = %q, want H", first.HomeRoadFlag)
	}
	if first.GameDate != "2023-10-11" {
		t.Errorf("GameDate = %q, want 2023-10-11", first.GameDate)
	}
	if first.Goals != 1 || first.Assists != 2 || first.Points != 3 {
		t.Errorf("G/A/P = %d/%d/%d, want 1/2/3", first.Goals, first.Assists, first.Points)
	}
	if first.GameWinningGoals != 1 || first.OTGoals != 0 || first.Shifts != 22 {
		t.Errorf("GWG/OTG/shifts = %d/%d/%d, want 1/0/22", first.GameWinningGoals, first.OTGoals, first.Shifts)
	}
	if first.TimeOnIce != "21:30" || first.TimeOnIceMinutes != 21.5 {
		t.Errorf("TOI = %q (%v min), want 21:30 (21.5 min)", first.TimeOnIce, first.TimeOnIceMinutes)
	}

	if logs[1].PlusMinus != -1 {
		t.Errorf("second PlusMinus = %d, want -1", logs[1].PlusMinus)
	}
	if logs[1].PowerPlayGoals != 0 {
		t.Errorf("missing powerPlayGoals = %d, want 0", logs[1].PowerPlayGoals)
	}
}

func TestNormalizeGameLogs_TopLevelArray(t *testing.T) {
	raw := decodeTree(t, `[
		{"gameId": 1, "gameDate": "2024-01-01", "goals": 2, "toi": "18:00"},
		{"gameId": 2, "gameDate": "2024-01-03", "goals": 1, "toi": "17:30"}
	]`)

	logs := NormalizeGameLogs(raw, zerolog.New(io.Discard))
	if len(logs) != 2 {
		t.Fatalf("len(logs) = %d, want 2", len(logs))
	}
	if logs[0].Goals != 2 || logs[1].Goals != 1 {
		t.Errorf("goals = %d, %d, want 2, 1", logs[0].Goals, logs[1].Goals)
	}
}

func TestNormalizeGameLogs_StatSubObject(t *testing.T) {
	raw := decodeTree(t, `[{
		"game": {"gamePk": 2021020099},
		"date": "2021-11-05",
		"team": {"abbreviation": "PIT"},
		"opponent": {"abbreviation": "WSH"},
		"stat": {
			"goals": 2,
			"assists": 1,
			"points": 3,
			"plusMinus": 1,
			"powerPlayGoals": 1,
			"powerPlayPoints": 1,
			"shots": 6,
			"shifts": 24,
			"timeOnIce": "20:15"
		}
	}]`)

	logs := NormalizeGameLogs(raw, zerolog.New(io.Discard))
	if len(logs) != 1 {
		t.Fatalf("len(logs) = %d, want 1", len(logs))
	}

	gl := logs[0]
	if gl.GameID != 2021020099 {
		t.Errorf("GameID = %d, want 2021020099 via game.gamePk", gl.GameID)
	}
	if gl.GameDate != "2021-11-05" {
		t.Errorf("GameDate = %q, want 2021-11-05 via date", gl.GameDate)
	}
	if gl.TeamAbbrev != "PIT" || gl.OpponentAbbrev != "WSH" {
		t.Errorf("teams = %q vs %q, want PIT vs WSH", gl.TeamAbbrev, gl.OpponentAbbrev)
	}
	if gl.Goals != 2 || gl.Assists != 1 || gl.Points != 3 || gl.Shots != 6 {
		t.Errorf("stat block not resolved: %+v", gl)
	}
	if gl.TimeOnIceMinutes != 20.25 {
		t.Errorf("TimeOnIceMinutes = %v, want 20.25", gl.TimeOnIceMinutes)
	}
}

func TestNormalizeGameLogs_ErrorMarkerYieldsNothing(t *testing.T) {
	if logs := NormalizeGameLogs(payload.ErrorMarker(500, "HTTP error 500"), zerolog.New(io.Discard)); logs != nil {
		t.Errorf("marker input produced %d records, want none", len(logs))
	}
}

func TestNormalizeGameLogs_UnrecognizedShapes(t *testing.T) {
	for _, raw := range []any{nil, "text", map[string]any{"items": []any{}}} {
		if logs := NormalizeGameLogs(raw, zerolog.New(io.Discard)); logs != nil {
			t.Errorf("shape %T produced %d records, want none", raw, len(logs))
		}
	}
}

func TestNormalizeGameLogs_MalformedEntryKeepsBatchGoing(t *testing.T) {
	raw := decodeTree(t, `[
		{"gameId": 1, "gameDate": "2024-02-01", "goals": 1, "toi": "15:00"},
		"not an object",
		{"gameId": 3, "gameDate": "2024-02-05", "goals": 2, "toi": "16:00"}
	]`)

	logs := NormalizeGameLogs(raw, zerolog.New(io.Discard))
	if len(logs) != 3 {
		t.Fatalf("len(logs) = %d, want 3 (malformed entry becomes defaults)", len(logs))
	}
	if logs[0].Goals != 1 || logs[2].Goals != 2 {
		t.Errorf("surrounding entries corrupted: %d, %d", logs[0].Goals, logs[2].Goals)
	}
	if logs[1].Goals != 0 || logs[1].GameID != 0 || logs[1].TimeOnIceMinutes != 0 {
		t.Errorf("malformed entry should collapse to defaults, got %+v", logs[1])
	}
}

func TestNormalizeGameLogs_DateHandling(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "date-time truncates to date",
			raw:  `[{"gameDate": "2024-01-15T19:00:00Z"}]`,
			want: "2024-01-15",
		},
		{
			name: "plain date passes through",
			raw:  `[{"gameDate": "2024-01-15"}]`,
			want: "2024-01-15",
		},
		{
			name: "garbage substitutes current date",
			raw:  `[{"gameDate": "mid-january"}]`,
			want: today,
		},
		{
			name: "absent date substitutes current date",
			raw:  `[{"goals": 1}]`,
			want: today,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := NormalizeGameLogs(decodeTree(t, tt.raw), zerolog.New(io.Discard))
			if len(logs) != 1 {
				t.Fatalf("len(logs) = %d, want 1", len(logs))
			}
			if logs[0].GameDate != tt.want {
				t.Errorf("GameDate = %q, want %q", logs[0].GameDate, tt.want)
			}
		})
	}
}

func TestNormalizeGameLogs_NumericStringsCoalesce(t *testing.T) {
	raw := decodeTree(t, `[{"gameDate": "2024-03-01", "goals": "2", "assists": null, "shots": "not a number"}]`)

	logs := NormalizeGameLogs(raw, zerolog.New(io.Discard))
	gl := logs[0]
	if gl.Goals != 2 {
		t.Errorf("numeric string goals = %d, want 2", gl.Goals)
	}
	if gl.Assists != 0 || gl.Shots != 0 {
		t.Errorf("null/garbage should coalesce to zero, got assists=%d shots=%d", gl.Assists, gl.Shots)
	}
}
