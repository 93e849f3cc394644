package nhl

import (
	"fmt"
	"strings"
)

// Endpoint paths of the public NHL web API, relative to the base URL.
const (
	// DefaultBaseURL is the NHL API web service root.
	DefaultBaseURL = "https://api-web.nhle.com/v1/"

	// PlayerInfoPath fetches basic player information. Needs the player ID.
	PlayerInfoPath = "player/%s"

	// PlayerGameLogPath fetches a player's game log. Needs player ID,
	// season code and game type code.
	PlayerGameLogPath = "player/%s/game-log/%s/%s"

	// PlayerLandingPath fetches a player's career statistics page.
	PlayerLandingPath = "player/%s/landing"

	// StandingsPath fetches current league standings; also doubles as the
	// cheapest readiness probe the API offers.
	StandingsPath = "standings/now"
)

// Game type codes accepted by the game-log endpoint.
const (
	GameTypeRegularSeason = "2"
	GameTypePlayoffs      = "3"
)

// CurrentSeason is the season code used when a caller does not pick one.
const CurrentSeason = "20232024"

// HeadshotURLTemplate synthesizes a player image URL from the player ID.
const HeadshotURLTemplate = "https://cms.nhl.bamgrid.com/images/headshots/current/168x168/%s.jpg"

// BuildURL joins the base URL with a formatted endpoint path.
func BuildURL(baseURL, path string, params ...any) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + fmt.Sprintf(path, params...)
}

// HeadshotURL returns the deterministic image URL for a player ID.
func HeadshotURL(playerID string) string {
	return fmt.Sprintf(HeadshotURLTemplate, playerID)
}
