package settlement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/gridline/internal/models"
)

// defaultOdds is assumed when a bet carries no price
const defaultOdds = -110

// Free-text bet patterns, tried in order. The first match wins, so the more
// specific forms come before the bare spread pattern.
var (
	trailingOddsRe = regexp.MustCompile(`\s*\(([+-]?\d+)\)\s*$`)
	anytimeTDRe    = regexp.MustCompile(`(?i)^(.+?)\s+Anytime TD(?:\s+Scorer)?$`)
	propRe         = regexp.MustCompile(`(?i)^(.+?)\s+(Over|Under)\s+([\d.]+)\s+(.+)$`)
	teamTotalRe    = regexp.MustCompile(`(?i)^(.+?)\s+Team Total\s+(Over|Under)\s+([\d.]+)(?:\s+Points?)?$`)
	totalRe        = regexp.MustCompile(`(?i)^(Over|Under)\s+([\d.]+)(?:\s+(?:Total\s+)?Points?)?$`)
	moneylineRe    = regexp.MustCompile(`(?i)^(.+?)\s+(?:Moneyline|ML)$`)
	spreadRe       = regexp.MustCompile(`^(.+?)\s+([+-]\d+(?:\.\d+)?)$`)
)

// normalizeBet fills in a recommendation's structured fields from its free
// text when they are missing. Already-structured recommendations pass through
// untouched apart from the default odds.
func normalizeBet(rec models.Recommendation) models.Recommendation {
	if rec.Bet == "" {
		rec.Bet = rec.Description
	}
	if rec.Kind != "" {
		return withDefaultOdds(rec)
	}

	text, odds := stripTrailingOdds(rec.Bet)
	if odds != 0 {
		rec.Odds = odds
	}

	switch {
	case anytimeTDRe.MatchString(text):
		m := anytimeTDRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindPlayerProp
		rec.Market = models.MarketAnytimeTD
		rec.Player = strings.TrimSpace(m[1])

	case teamTotalRe.MatchString(text):
		m := teamTotalRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindTeamTotal
		rec.Team = strings.TrimSpace(m[1])
		rec.Side = parseSide(m[2])
		rec.Line = parseLine(m[3])

	case totalRe.MatchString(text):
		m := totalRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindTotal
		rec.Side = parseSide(m[1])
		rec.Line = parseLine(m[2])

	case propRe.MatchString(text):
		m := propRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindPlayerProp
		rec.Player = strings.TrimSpace(m[1])
		rec.Side = parseSide(m[2])
		rec.Line = parseLine(m[3])
		rec.Market = marketKey(m[4])

	case moneylineRe.MatchString(text):
		m := moneylineRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindMoneyline
		rec.Team = strings.TrimSpace(m[1])

	case spreadRe.MatchString(text):
		m := spreadRe.FindStringSubmatch(text)
		rec.Kind = models.BetKindSpread
		rec.Team = strings.TrimSpace(m[1])
		rec.Line = parseLine(m[2])
	}

	return withDefaultOdds(rec)
}

func withDefaultOdds(rec models.Recommendation) models.Recommendation {
	if rec.Odds == 0 {
		rec.Odds = defaultOdds
	}
	return rec
}

// stripTrailingOdds removes a trailing "(-102)" style price and returns it
func stripTrailingOdds(text string) (string, int) {
	m := trailingOddsRe.FindStringSubmatch(text)
	if m == nil {
		return strings.TrimSpace(text), 0
	}
	odds, err := strconv.Atoi(m[1])
	if err != nil {
		return strings.TrimSpace(text), 0
	}
	return strings.TrimSpace(trailingOddsRe.ReplaceAllString(text, "")), odds
}

func parseSide(s string) models.Side {
	if strings.EqualFold(s, "under") {
		return models.SideUnder
	}
	return models.SideOver
}

func parseLine(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// marketKey converts display text back to a market key:
// "Passing Yards" -> "passing_yards", "Receiving TDs" -> "receiving_tds"
func marketKey(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "_")
}
