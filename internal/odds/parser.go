package odds

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/gridline/internal/models"
)

// Parser extracts normalized opportunities from an odds payload.
// Prices outside the configured band and malformed or missing optional
// fields are silently skipped, never raised.
type Parser struct {
	band     Band
	validate *validator.Validate
}

// NewParser creates a parser with the given acceptable price band
func NewParser(band Band) *Parser {
	return &Parser{
		band:     band,
		validate: validator.New(),
	}
}

// Parse extracts all opportunities (game lines plus player props) from the
// payload. Only structurally broken payloads return an error; anything
// recoverable is skipped.
func (p *Parser) Parse(payload *models.OddsPayload) ([]models.Opportunity, error) {
	if payload == nil {
		return nil, models.ErrMissingTeams
	}
	if err := p.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid odds payload: %w", err)
	}

	opps := p.parseGameLines(payload)
	opps = append(opps, p.parsePlayerProps(payload)...)
	return opps, nil
}

// parseGameLines extracts moneyline, spread and total opportunities,
// one per side when that side's price is inside the band.
func (p *Parser) parseGameLines(payload *models.OddsPayload) []models.Opportunity {
	var opps []models.Opportunity

	away := payload.Teams.Away
	home := payload.Teams.Home
	lines := payload.GameLines

	if ml := lines.Moneyline; ml != nil {
		if ml.Away != nil && p.band.Contains(*ml.Away) {
			opps = append(opps, p.gameLine(models.BetKindMoneyline, away, models.SideAway, nil,
				fmt.Sprintf("%s Moneyline", away.Name), *ml.Away))
		}
		if ml.Home != nil && p.band.Contains(*ml.Home) {
			opps = append(opps, p.gameLine(models.BetKindMoneyline, home, models.SideHome, nil,
				fmt.Sprintf("%s Moneyline", home.Name), *ml.Home))
		}
	}

	if sp := lines.Spread; sp != nil {
		if sp.Away != nil && sp.AwayOdds != nil && p.band.Contains(*sp.AwayOdds) {
			opps = append(opps, p.gameLine(models.BetKindSpread, away, models.SideAway, sp.Away,
				fmt.Sprintf("%s %+.1f", away.Name, *sp.Away), *sp.AwayOdds))
		}
		if sp.Home != nil && sp.HomeOdds != nil && p.band.Contains(*sp.HomeOdds) {
			opps = append(opps, p.gameLine(models.BetKindSpread, home, models.SideHome, sp.Home,
				fmt.Sprintf("%s %+.1f", home.Name, *sp.Home), *sp.HomeOdds))
		}
	}

	if tot := lines.Total; tot != nil && tot.Line != nil {
		if tot.Over != nil && p.band.Contains(*tot.Over) {
			opps = append(opps, models.Opportunity{
				Kind:        models.BetKindTotal,
				Side:        models.SideOver,
				Line:        tot.Line,
				Description: fmt.Sprintf("Over %.1f Total Points", *tot.Line),
				Odds:        *tot.Over,
				DecimalOdds: AmericanToDecimal(*tot.Over),
				ImpliedProb: ImpliedProbability(*tot.Over),
			})
		}
		if tot.Under != nil && p.band.Contains(*tot.Under) {
			opps = append(opps, models.Opportunity{
				Kind:        models.BetKindTotal,
				Side:        models.SideUnder,
				Line:        tot.Line,
				Description: fmt.Sprintf("Under %.1f Total Points", *tot.Line),
				Odds:        *tot.Under,
				DecimalOdds: AmericanToDecimal(*tot.Under),
				ImpliedProb: ImpliedProbability(*tot.Under),
			})
		}
	}

	return opps
}

func (p *Parser) gameLine(kind models.BetKind, team models.TeamRef, side models.Side, line *float64, desc string, price int) models.Opportunity {
	return models.Opportunity{
		Kind:        kind,
		Team:        team.Name,
		TeamAbbr:    team.Abbr,
		Side:        side,
		Line:        line,
		Description: desc,
		Odds:        price,
		DecimalOdds: AmericanToDecimal(price),
		ImpliedProb: ImpliedProbability(price),
	}
}

// parsePlayerProps extracts one opportunity per milestone threshold and one
// per single-price market. Milestone props are always the over side.
func (p *Parser) parsePlayerProps(payload *models.OddsPayload) []models.Opportunity {
	var opps []models.Opportunity

	for _, pp := range payload.PlayerProps {
		team := strings.ToUpper(pp.Team)
		for _, prop := range pp.Props {
			switch {
			case len(prop.Milestones) > 0:
				for _, m := range prop.Milestones {
					if m.Line == nil || m.Odds == nil || !p.band.Contains(*m.Odds) {
						continue
					}
					opps = append(opps, models.Opportunity{
						Kind:        models.BetKindPlayerProp,
						Market:      prop.Market,
						Player:      pp.Player,
						Team:        team,
						Position:    pp.Position,
						Side:        models.SideOver,
						Line:        m.Line,
						Description: fmt.Sprintf("%s Over %v %s", pp.Player, *m.Line, marketTitle(prop.Market)),
						Odds:        *m.Odds,
						DecimalOdds: AmericanToDecimal(*m.Odds),
						ImpliedProb: ImpliedProbability(*m.Odds),
					})
				}
			case prop.Odds != nil:
				if !p.band.Contains(*prop.Odds) {
					continue
				}
				opps = append(opps, models.Opportunity{
					Kind:        models.BetKindPlayerProp,
					Market:      prop.Market,
					Player:      pp.Player,
					Team:        team,
					Position:    pp.Position,
					Description: fmt.Sprintf("%s %s", pp.Player, marketTitle(prop.Market)),
					Odds:        *prop.Odds,
					DecimalOdds: AmericanToDecimal(*prop.Odds),
					ImpliedProb: ImpliedProbability(*prop.Odds),
				})
			}
		}
	}

	return opps
}

// marketTitle renders a market key for display, e.g. "receiving_yards" → "Receiving Yards"
func marketTitle(market string) string {
	words := strings.Split(market, "_")
	for i, w := range words {
		switch w {
		case "td":
			words[i] = "TD"
		case "tds":
			words[i] = "TDs"
		default:
			if len(w) > 0 {
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
	}
	return strings.Join(words, " ")
}

// FilterByKind returns only the opportunities of the given kind
func FilterByKind(opps []models.Opportunity, kind models.BetKind) []models.Opportunity {
	var out []models.Opportunity
	for _, o := range opps {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}
