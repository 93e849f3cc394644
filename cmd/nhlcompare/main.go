// Command nhlcompare fetches NHL players, prints a season comparison and
// offers an interactive console for digging into pairs, stat lines and
// rankings.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhlstats/player-comparison-service/internal/config"
	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/service"
)

// fetchTimeout bounds the whole roster fetch, not a single API call.
const fetchTimeout = 60 * time.Second

func main() {
	var (
		configPath = flag.String("config", "", "path to configuration file (optional)")
		season     = flag.String("season", "", "8-digit season code, e.g. 20232024")
		gameType   = flag.String("game-type", "", "2 for regular season, 3 for playoffs")
	)
	flag.Parse()

	ids := flag.Args()
	if len(ids) < 2 {
		fmt.Println("Please provide at least two player IDs to compare.")
		fmt.Println("Example: nhlcompare 8478402 8477492")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("❌ Config loading failed: %v", err)
		}
		cfg = loaded
	}
	if *season == "" {
		*season = cfg.NHL.DefaultSeason
	}
	if *gameType == "" {
		*gameType = cfg.NHL.DefaultGameType
	}

	// the console output is the product; diagnostics only surface from warn up
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)

	client := nhl.NewClient(nhl.Config{
		BaseURL:           cfg.NHL.BaseURL,
		Timeout:           cfg.NHL.Timeout,
		UserAgent:         cfg.NHL.UserAgent,
		RequestsPerSecond: cfg.NHL.RequestsPerSecond,
		Burst:             cfg.NHL.Burst,
	}, logger)
	players := service.NewPlayerService(client, logger)
	comparisons := service.NewComparisonService(logger)

	fmt.Println("NHL Player Comparison Tool")
	fmt.Println("==========================")
	fmt.Println("Season: " + service.FormatSeason(*season))
	fmt.Println("Game Type: " + service.GameTypeLabel(*gameType))
	fmt.Println()
	fmt.Println("Fetching player data for IDs: " + strings.Join(ids, ", "))

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()
	roster, err := players.GetMultiplePlayersWithStats(ctx, ids, *season, *gameType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println("\nPlayers:")
	for _, p := range roster {
		fmt.Println("- " + service.PlayerLine(p))
	}

	fmt.Println("\nGenerating comparison...")
	result, err := comparisons.CompareMany(roster)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	printComparison(result)
	interactiveLoop(os.Stdin, roster, comparisons)
}

// printComparison walks categories and pairs in their canonical order so the
// output is stable run to run.
func printComparison(result model.ComparisonResult) {
	fmt.Println("\nComparison Results:")
	fmt.Println("==================")

	fmt.Println("\nCategory Leaders:")
	for _, category := range service.CategoryNames() {
		leader, ok := result.CategoryWinners[category]
		if !ok || leader.Winner == nil {
			continue
		}
		line := fmt.Sprintf("- %s: %s (%s)", service.CategoryLabel(category), leader.Winner.FullName, service.CategoryValue(*leader.Winner, category))
		if leader.HasTies {
			line += " (Tied)"
		}
		fmt.Println(line)
	}

	fmt.Println("\nPlayer Similarity Scores:")
	for i := 0; i < len(result.Players); i++ {
		for j := i + 1; j < len(result.Players); j++ {
			a, b := result.Players[i], result.Players[j]
			score, ok := result.SimilarityScores[a.ID+"-"+b.ID]
			if !ok {
				continue
			}
			fmt.Printf("- %s and %s: %.2f%% similarity\n", a.FullName, b.FullName, score)
		}
	}
}

func interactiveLoop(in io.Reader, roster []model.Player, comparisons service.ComparisonService) {
	scanner := bufio.NewScanner(in)

	fmt.Println("\nWould you like to see more detailed comparisons? (y/n)")
	if !scanner.Scan() {
		return
	}
	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	if response != "y" && response != "yes" {
		fmt.Println("\nThank you for using NHL Player Comparison Tool!")
		return
	}

	for {
		fmt.Println("\nAvailable commands:")
		fmt.Println("1. Compare two players (enter: compare <player_index> <player_index>)")
		fmt.Println("2. Show player stats (enter: stats <player_index>)")
		fmt.Println("3. Rank players by a stat (enter: rank <stat>)")
		fmt.Println("4. Exit (enter: exit)")
		fmt.Println("\nPlayer indexes:")
		for i, p := range roster {
			fmt.Printf("%d. %s\n", i, p.FullName)
		}

		fmt.Print("\nEnter command: ")
		if !scanner.Scan() {
			return
		}
		command := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(command, "compare "):
			runCompare(command, roster, comparisons)
		case strings.HasPrefix(command, "stats "):
			runStats(command, roster)
		case strings.HasPrefix(command, "rank "):
			runRank(command, roster, comparisons)
		case command == "exit":
			fmt.Println("\nThank you for using NHL Player Comparison Tool!")
			return
		default:
			fmt.Println("Unknown command. Please try again.")
		}
	}
}

func runCompare(command string, roster []model.Player, comparisons service.ComparisonService) {
	parts := strings.Fields(command)
	if len(parts) != 3 {
		fmt.Println("Invalid command format. Example: compare 0 1")
		return
	}
	i, err1 := strconv.Atoi(parts[1])
	j, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		fmt.Println("Invalid input. Please enter valid player indexes.")
		return
	}
	if i < 0 || i >= len(roster) || j < 0 || j >= len(roster) {
		fmt.Println("Invalid player indexes. Please try again.")
		return
	}
	fmt.Println("\nDetailed Comparison:")
	fmt.Println(comparisons.PairwiseSummary(roster[i], roster[j]))
}

func runStats(command string, roster []model.Player) {
	parts := strings.Fields(command)
	if len(parts) != 2 {
		fmt.Println("Invalid command format. Example: stats 0")
		return
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Println("Invalid input. Please enter a valid player index.")
		return
	}
	if idx < 0 || idx >= len(roster) {
		fmt.Println("Invalid player index. Please try again.")
		return
	}
	p := roster[idx]
	fmt.Printf("\nStats for %s:\n", p.FullName)
	if p.SeasonStats == nil {
		fmt.Println("No stats available.")
		return
	}
	fmt.Println(service.StatLine(*p.SeasonStats))
}

func runRank(command string, roster []model.Player, comparisons service.ComparisonService) {
	parts := strings.Fields(command)
	if len(parts) != 2 {
		fmt.Println("Invalid command format. Example: rank goals")
		return
	}
	ranked := comparisons.Rank(roster, parts[1])
	if len(ranked) == 0 {
		fmt.Println("No players with stats to rank.")
		return
	}
	fmt.Printf("\nRanking by %s:\n", parts[1])
	for i, p := range ranked {
		fmt.Printf("%d. %s (%s)\n", i+1, p.FullName, service.StatLine(*p.SeasonStats))
	}
}
