package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/metrics"
	"github.com/nhlstats/player-comparison-service/internal/model"
)

// comparisonCategories fixes the tracked category set and its display order.
var comparisonCategories = []string{
	"goals",
	"assists",
	"points",
	"plusMinus",
	"pointsPerGame",
	"shotPercentage",
}

// CategoryNames returns the tracked comparison categories in display order.
func CategoryNames() []string {
	return append([]string(nil), comparisonCategories...)
}

func categoryValue(category string) func(model.PlayerStats) float64 {
	switch category {
	case "goals":
		return func(s model.PlayerStats) float64 { return float64(s.Goals) }
	case "assists":
		return func(s model.PlayerStats) float64 { return float64(s.Assists) }
	case "plusMinus":
		return func(s model.PlayerStats) float64 { return float64(s.PlusMinus) }
	case "pointsPerGame":
		return func(s model.PlayerStats) float64 { return s.PointsPerGame }
	case "shotPercentage":
		return func(s model.PlayerStats) float64 { return s.ShotPercentage }
	default: // "points"
		return func(s model.PlayerStats) float64 { return float64(s.Points) }
	}
}

type comparisonService struct {
	log zerolog.Logger
}

func NewComparisonService(logger zerolog.Logger) ComparisonService {
	l := logger.With().Str("module", "service").Str("component", "comparison").Logger()
	return &comparisonService{log: l}
}

// CompareMany builds a full comparison across the input players: category
// leaders, pairwise similarity scores and pairwise stat differentials.
// Players without season stats stay in the result's player list but are
// skipped in every computation. Fewer than two players is the one input
// this engine refuses.
func (s *comparisonService) CompareMany(players []model.Player) (model.ComparisonResult, error) {
	if len(players) < 2 {
		return model.ComparisonResult{}, newInvalidInput([]FieldError{
			{Field: "players", Message: "need at least two players to compare"},
		})
	}

	result := model.ComparisonResult{
		Players:          players,
		CategoryWinners:  make(map[string]model.CategoryLeader, len(comparisonCategories)),
		SimilarityScores: make(map[string]float64),
		StatDifferences:  make(map[string]map[string]float64),
	}

	for _, category := range comparisonCategories {
		result.CategoryWinners[category] = findBestInCategory(players, categoryValue(category))
	}

	// Pairs iterate in index order i<j so keys always follow the input order.
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			a, b := players[i], players[j]
			if !a.HasStats() || !b.HasStats() {
				continue
			}
			key := a.ID + "-" + b.ID
			result.SimilarityScores[key] = s.Similarity(a, b)
			result.StatDifferences[key] = s.Differentials(a, b)
		}
	}

	metrics.ComparisonsTotal.Inc()
	s.log.Debug().Int("players", len(players)).Int("pairs", len(result.SimilarityScores)).Msg("comparison computed")
	return result, nil
}

// findBestInCategory scans players with stats, tracking the best value seen.
// The first player attaining the maximum stays winner; later equal values
// only flip the tie flag, and a strictly better value clears it.
func findBestInCategory(players []model.Player, value func(model.PlayerStats) float64) model.CategoryLeader {
	var leader model.CategoryLeader
	var best float64
	for _, p := range players {
		if !p.HasStats() {
			continue
		}
		v := value(*p.SeasonStats)
		switch {
		case leader.Winner == nil || v > best:
			best = v
			winner := p
			leader.Winner = &winner
			leader.HasTies = false
		case v == best:
			leader.HasTies = true
		}
	}
	return leader
}

// Similarity scores how close two stat profiles are on a 0-100 scale. Five
// stats are compared (goals, assists, points, pointsPerGame, shotPercentage):
// each difference is normalized by the larger magnitude, the five combine as
// a Euclidean norm, and the distance maps through 100*(1-tanh(d/5)) so
// identical profiles score 100 and the score decays smoothly toward 0.
func (s *comparisonService) Similarity(a, b model.Player) float64 {
	if !a.HasStats() || !b.HasStats() {
		return 0
	}
	statsA, statsB := *a.SeasonStats, *b.SeasonStats

	diffs := []float64{
		normalizedDiff(float64(statsA.Goals), float64(statsB.Goals)),
		normalizedDiff(float64(statsA.Assists), float64(statsB.Assists)),
		normalizedDiff(float64(statsA.Points), float64(statsB.Points)),
		normalizedDiff(statsA.PointsPerGame, statsB.PointsPerGame),
		normalizedDiff(statsA.ShotPercentage, statsB.ShotPercentage),
	}

	var distanceSquared float64
	for _, d := range diffs {
		distanceSquared += d * d
	}
	distance := math.Sqrt(distanceSquared)

	return 100 * (1 - math.Tanh(distance/5))
}

// normalizedDiff scales the absolute difference by the larger magnitude so
// stats on different scales contribute comparably. Both zero means no
// difference, not 0/0.
func normalizedDiff(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}

// Differentials returns signed per-stat differences, statA minus statB, so a
// positive value means a leads. Missing stats on either side yield an empty
// map.
func (s *comparisonService) Differentials(a, b model.Player) map[string]float64 {
	diffs := make(map[string]float64)
	if !a.HasStats() || !b.HasStats() {
		return diffs
	}
	statsA, statsB := *a.SeasonStats, *b.SeasonStats
	diffs["goals"] = float64(statsA.Goals - statsB.Goals)
	diffs["assists"] = float64(statsA.Assists - statsB.Assists)
	diffs["points"] = float64(statsA.Points - statsB.Points)
	diffs["plusMinus"] = float64(statsA.PlusMinus - statsB.PlusMinus)
	diffs["pointsPerGame"] = statsA.PointsPerGame - statsB.PointsPerGame
	diffs["shotPercentage"] = statsA.ShotPercentage - statsB.ShotPercentage
	return diffs
}

// PairwiseSummary renders a short head-to-head text block over goals,
// assists and points. Pure formatting; no side effects.
func (s *comparisonService) PairwiseSummary(a, b model.Player) string {
	if !a.HasStats() || !b.HasStats() {
		return "Cannot compare players due to missing stats"
	}
	statsA, statsB := *a.SeasonStats, *b.SeasonStats

	var out strings.Builder
	fmt.Fprintf(&out, "%s vs %s:\n", a.FullName, b.FullName)
	out.WriteString(summaryLine("Goals", statsA.Goals, statsB.Goals, a.FullName, b.FullName))
	out.WriteString("\n")
	out.WriteString(summaryLine("Assists", statsA.Assists, statsB.Assists, a.FullName, b.FullName))
	out.WriteString("\n")
	out.WriteString(summaryLine("Points", statsA.Points, statsB.Points, a.FullName, b.FullName))
	return out.String()
}

func summaryLine(label string, a, b int, nameA, nameB string) string {
	line := fmt.Sprintf("%s: %d vs %d", label, a, b)
	switch {
	case a > b:
		return line + fmt.Sprintf(" (%s leads by %d)", nameA, a-b)
	case b > a:
		return line + fmt.Sprintf(" (%s leads by %d)", nameB, b-a)
	default:
		return line + " (Tied)"
	}
}

// Rank sorts players descending by the named stat, dropping players without
// stats first. The sort is stable so ties keep their input order.
func (s *comparisonService) Rank(players []model.Player, stat string) []model.Player {
	ranked := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.HasStats() {
			ranked = append(ranked, p)
		}
	}

	value := rankValue(stat)
	sort.SliceStable(ranked, func(i, j int) bool {
		return value(*ranked[i].SeasonStats) > value(*ranked[j].SeasonStats)
	})
	return ranked
}

// rankValue picks the sort key; unrecognized names rank by points.
func rankValue(stat string) func(model.PlayerStats) float64 {
	switch canonicalStat(stat) {
	case "goals":
		return func(s model.PlayerStats) float64 { return float64(s.Goals) }
	case "assists":
		return func(s model.PlayerStats) float64 { return float64(s.Assists) }
	case "plusminus":
		return func(s model.PlayerStats) float64 { return float64(s.PlusMinus) }
	case "pointspergame":
		return func(s model.PlayerStats) float64 { return s.PointsPerGame }
	case "shotpercentage":
		return func(s model.PlayerStats) float64 { return s.ShotPercentage }
	default:
		return func(s model.PlayerStats) float64 { return float64(s.Points) }
	}
}
