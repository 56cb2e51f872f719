package models

// TableRow is a single loosely-typed row from a scraped stat table.
// Values arrive as strings or numbers depending on the upstream scraper;
// consumers go through the stats repository accessors which coerce types.
type TableRow map[string]any

// OddsPayload is the odds snapshot for one game as handed over by the
// odds-collection layer. Field names are fixed for compatibility.
type OddsPayload struct {
	Sport       string        `json:"sport"`
	Teams       GameTeams     `json:"teams" validate:"required"`
	GameLines   GameLines     `json:"game_lines"`
	PlayerProps []PlayerProps `json:"player_props"`
}

// GameTeams identifies the two sides of a game
type GameTeams struct {
	Away TeamRef `json:"away" validate:"required"`
	Home TeamRef `json:"home" validate:"required"`
}

// TeamRef is a team reference as it appears in odds payloads
type TeamRef struct {
	Name string `json:"name" validate:"required"`
	Abbr string `json:"abbr"`
}

// GameLines holds the game-level markets. Any market may be absent.
type GameLines struct {
	Moneyline *MoneylineOdds `json:"moneyline,omitempty"`
	Spread    *SpreadOdds    `json:"spread,omitempty"`
	Total     *TotalOdds     `json:"total,omitempty"`
}

// MoneylineOdds carries American prices for each side
type MoneylineOdds struct {
	Away *int `json:"away,omitempty"`
	Home *int `json:"home,omitempty"`
}

// SpreadOdds carries the handicap line and price for each side
type SpreadOdds struct {
	Away     *float64 `json:"away,omitempty"`
	AwayOdds *int     `json:"away_odds,omitempty"`
	Home     *float64 `json:"home,omitempty"`
	HomeOdds *int     `json:"home_odds,omitempty"`
}

// TotalOdds carries the game total line with over/under prices
type TotalOdds struct {
	Line  *float64 `json:"line,omitempty"`
	Over  *int     `json:"over,omitempty"`
	Under *int     `json:"under,omitempty"`
}

// PlayerProps groups all prop markets offered for one player
type PlayerProps struct {
	Player   string `json:"player"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Props    []Prop `json:"props"`
}

// Prop is a single prop market: either milestone-based (one price per
// threshold) or single-price (e.g. anytime TD).
type Prop struct {
	Market     string      `json:"market"`
	Milestones []Milestone `json:"milestones,omitempty"`
	Odds       *int        `json:"odds,omitempty"`
}

// Milestone is a DraftKings-style fixed threshold with its own price
type Milestone struct {
	Line *float64 `json:"line,omitempty"`
	Odds *int     `json:"odds,omitempty"`
}

// RankingTable is one league-wide ranking table (e.g. scoring offense)
type RankingTable struct {
	TableName string     `json:"table_name"`
	Headers   []string   `json:"headers"`
	Data      []TableRow `json:"data"`
}

// ProfileTable is one table from a team profile (passing, injury report, ...)
type ProfileTable struct {
	Headers []string   `json:"headers"`
	Data    []TableRow `json:"data"`
}

// TeamProfile maps table name to its rows for a single team
type TeamProfile map[string]ProfileTable
