package models

// GameResult is the finalized result payload for one game
type GameResult struct {
	Teams      ResultTeams            `json:"teams"`
	FinalScore FinalScore             `json:"final_score"`
	Tables     map[string]ResultTable `json:"tables"`
}

// ResultTeams names the two sides of a settled game
type ResultTeams struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// FinalScore holds the final points per side. Nil means unavailable.
type FinalScore struct {
	Home *float64 `json:"home"`
	Away *float64 `json:"away"`
}

// ResultTable is one per-category box-score table (passing, rushing, receiving)
type ResultTable struct {
	Data []TableRow `json:"data"`
}

// Recommendation is a previously recommended bet to settle. It arrives either
// structured (Market/Player/Line/Side set) or as free text in Bet, which the
// settlement normalizer parses.
type Recommendation struct {
	Bet         string   `json:"bet,omitempty"`
	Description string   `json:"description,omitempty"`
	Kind        BetKind  `json:"bet_type,omitempty"`
	Market      string   `json:"market,omitempty"`
	Player      string   `json:"player,omitempty"`
	Team        string   `json:"team,omitempty"`
	Side        Side     `json:"side,omitempty"`
	Line        *float64 `json:"line,omitempty"`
	Odds        int      `json:"odds,omitempty"`
}

// SettlementResult is the outcome of checking one recommendation.
// Won is nil for a push or when the bet could not be graded; a push
// forces Profit to zero.
type SettlementResult struct {
	Bet    string   `json:"bet"`
	Won    *bool    `json:"won"`
	Actual *float64 `json:"actual"`
	Line   *float64 `json:"line"`
	Profit float64  `json:"profit"`
	Error  string   `json:"error,omitempty"`
}

// SettlementSummary aggregates settled bets at a fixed stake per bet
type SettlementSummary struct {
	TotalBets   int     `json:"total_bets"`
	BetsWon     int     `json:"bets_won"`
	BetsLost    int     `json:"bets_lost"`
	WinRate     float64 `json:"win_rate"`
	TotalProfit float64 `json:"total_profit"`
	TotalStaked float64 `json:"total_staked"`
	ROIPercent  float64 `json:"roi_percent"`
}

// SettlementReport is the full output of a settlement run
type SettlementReport struct {
	BetResults []SettlementResult `json:"bet_results"`
	Summary    SettlementSummary  `json:"summary"`
}
