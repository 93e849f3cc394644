package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/handler"
	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/service"
)

// stubPlayerService lets us control each method outcome and captures the
// parameters the handler resolved.
type stubPlayerService struct {
	player  model.Player
	players []model.Player
	logs    []model.GameLog
	err     error

	gotPlayerID string
	gotIDs      []string
	gotSeason   string
	gotGameType string
}

var _ service.PlayerService = (*stubPlayerService)(nil)

func (s *stubPlayerService) GetPlayerWithStats(ctx context.Context, playerID, season, gameType string) (model.Player, error) {
	s.gotPlayerID, s.gotSeason, s.gotGameType = playerID, season, gameType
	return s.player, s.err
}

func (s *stubPlayerService) GetMultiplePlayersWithStats(ctx context.Context, playerIDs []string, season, gameType string) ([]model.Player, error) {
	s.gotIDs, s.gotSeason, s.gotGameType = playerIDs, season, gameType
	return s.players, s.err
}

func (s *stubPlayerService) GetGameLogs(ctx context.Context, playerID, season, gameType string) ([]model.GameLog, error) {
	s.gotPlayerID, s.gotSeason, s.gotGameType = playerID, season, gameType
	return s.logs, s.err
}

func (s *stubPlayerService) FilterPlayersByPosition(players []model.Player, position string) []model.Player {
	filtered := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Position != "" && strings.EqualFold(p.Position, position) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// newRouter wires the full route tree with a stubbed player service and the
// real comparison and chart implementations, which are pure computation.
func newRouter(players service.PlayerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	discard := zerolog.New(io.Discard)
	handler.Register(r, stubPinger{}, players, service.NewComparisonService(discard), service.NewChartService(discard), handler.Defaults{Season: "20232024", GameType: "2"})
	return r
}

func statPlayer(id, name, position string, goals, assists int) model.Player {
	logs := []model.GameLog{
		{GameID: 1, GameDate: "2024-01-05", Goals: goals / 2, Assists: assists / 2, Points: goals/2 + assists/2},
		{GameID: 2, GameDate: "2024-01-07", Goals: goals - goals/2, Assists: assists - assists/2, Points: (goals - goals/2) + (assists - assists/2)},
	}
	p := model.Player{ID: id, FullName: name, TeamName: "Test Club", Position: position}
	return p.WithGameLogs(logs).WithSeasonStats(service.AggregateStats(logs))
}

func TestPlayerRoutes_GetByID_OK(t *testing.T) {
	stub := &stubPlayerService{player: statPlayer("8478402", "Connor McDavid", "C", 30, 50)}
	r := newRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/8478402", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Connor McDavid")) {
		t.Fatalf("expected body to contain player name: %s", w.Body.String())
	}
	if stub.gotPlayerID != "8478402" {
		t.Errorf("handler passed player id %q", stub.gotPlayerID)
	}
	if stub.gotSeason != "20232024" || stub.gotGameType != "2" {
		t.Errorf("expected configured defaults, got season=%q gameType=%q", stub.gotSeason, stub.gotGameType)
	}
}

func TestPlayerRoutes_GetByID_QueryOverridesDefaults(t *testing.T) {
	stub := &stubPlayerService{player: statPlayer("8478402", "Connor McDavid", "C", 30, 50)}
	r := newRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/8478402?season=20222023&gameType=3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if stub.gotSeason != "20222023" || stub.gotGameType != "3" {
		t.Errorf("query params not forwarded: season=%q gameType=%q", stub.gotSeason, stub.gotGameType)
	}
}

func TestPlayerRoutes_GetByID_InvalidInput(t *testing.T) {
	stub := &stubPlayerService{err: service.NewInvalidInputError([]service.FieldError{
		{Field: "playerId", Message: "must be a numeric id"},
	})}
	r := newRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("invalid_input")) || !bytes.Contains(w.Body.Bytes(), []byte("playerId")) {
		t.Fatalf("expected field error for playerId, body=%s", w.Body.String())
	}
}

func TestPlayerRoutes_GameLog_OK(t *testing.T) {
	stub := &stubPlayerService{logs: []model.GameLog{
		{GameID: 2023020204, GameDate: "2023-11-11", Goals: 2, Assists: 1, Points: 3, OpponentAbbrev: "NYR"},
	}}
	r := newRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/8478402/gamelog", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var logs []model.GameLog
	if err := json.Unmarshal(w.Body.Bytes(), &logs); err != nil {
		t.Fatalf("body is not a game log array: %v", err)
	}
	if len(logs) != 1 || logs[0].GameID != 2023020204 || logs[0].OpponentAbbrev != "NYR" {
		t.Fatalf("unexpected game log payload: %s", w.Body.String())
	}
}

func TestPlayerRoutes_Chart_PerGameAndCumulative(t *testing.T) {
	logs := []model.GameLog{
		{GameDate: "2024-01-01", Goals: 1, Points: 2},
		{GameDate: "2024-01-03", Goals: 0, Points: 1},
		{GameDate: "2024-01-05", Goals: 2, Points: 3},
	}
	p := model.Player{ID: "8478402", FullName: "Connor McDavid"}
	stub := &stubPlayerService{player: p.WithGameLogs(logs).WithSeasonStats(service.AggregateStats(logs))}
	r := newRouter(stub)

	tests := []struct {
		name       string
		url        string
		wantValues []float64
	}{
		{
			name:       "per-game goals",
			url:        "/api/v1/players/8478402/chart?stat=goals",
			wantValues: []float64{1, 0, 2},
		},
		{
			name:       "cumulative goals",
			url:        "/api/v1/players/8478402/chart?stat=goals&kind=cumulative",
			wantValues: []float64{1, 1, 3},
		},
		{
			name:       "default stat is points",
			url:        "/api/v1/players/8478402/chart",
			wantValues: []float64{2, 1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}

			var resp struct {
				PlayerID string              `json:"playerId"`
				Series   []model.SeriesPoint `json:"series"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unexpected body: %v", err)
			}
			if resp.PlayerID != "8478402" {
				t.Errorf("playerId = %q", resp.PlayerID)
			}
			if len(resp.Series) != len(tt.wantValues) {
				t.Fatalf("series length = %d, want %d", len(resp.Series), len(tt.wantValues))
			}
			for i, want := range tt.wantValues {
				if resp.Series[i].Value != want {
					t.Errorf("series[%d] = %v, want %v", i, resp.Series[i].Value, want)
				}
			}
		})
	}
}

func TestPlayerRoutes_Chart_RejectsUnknownKind(t *testing.T) {
	stub := &stubPlayerService{}
	r := newRouter(stub)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/players/8478402/chart?kind=weekly", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("kind")) {
		t.Fatalf("expected field error for kind, body=%s", w.Body.String())
	}
	if stub.gotPlayerID != "" {
		t.Errorf("service should not be called for an invalid kind")
	}
}
