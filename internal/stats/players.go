package stats

import (
	"strings"

	"github.com/yourusername/gridline/internal/models"
)

// nicknames maps formal first names to the short form stat sites use.
// Pure static lookup data.
var nicknames = map[string]string{
	"joshua":      "josh",
	"christopher": "chris",
	"benjamin":    "ben",
	"william":     "will",
	"willie":      "will",
	"michael":     "mike",
	"matthew":     "matt",
	"nicholas":    "nick",
	"nicolas":     "nick",
	"anthony":     "tony",
	"joseph":      "joe",
	"robert":      "rob",
	"daniel":      "dan",
	"andrew":      "drew",
	"thomas":      "tom",
	"james":       "jim",
	"richard":     "rick",
	"timothy":     "tim",
	"kenneth":     "ken",
	"jonathan":    "jon",
	"alexander":   "alex",
	"zachary":     "zach",
	"patrick":     "pat",
	"cameron":     "cam",
}

// formalNames is the reverse mapping, short form back to the formal names
// that shorten to it.
var formalNames = func() map[string][]string {
	m := make(map[string][]string, len(nicknames))
	for formal, short := range nicknames {
		m[short] = append(m[short], formal)
	}
	return m
}()

// FirstNameForms returns every plausible form of a first name, the name
// itself included: "cameron" yields [cameron cam], "cam" yields [cam cameron].
func FirstNameForms(first string) []string {
	first = strings.ToLower(first)
	forms := []string{first}
	if short, ok := nicknames[first]; ok {
		forms = append(forms, short)
	}
	forms = append(forms, formalNames[first]...)
	return forms
}

// NormalizePlayerName lowercases a name and substitutes the first name's
// nickname form so "Joshua Palmer" and "Josh Palmer" index identically.
func NormalizePlayerName(name string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(parts) == 0 {
		return ""
	}
	if short, ok := nicknames[parts[0]]; ok {
		parts[0] = short
	}
	return strings.Join(parts, " ")
}

// LookupPlayer finds a player in a team profile, checking both the passing
// and rushing_receiving tables and merging rows when the player appears in
// both. Rushing/receiving fields overwrite passing fields on merge (last
// writer wins). Returns nil when the player is in neither table.
func (r *Repository) LookupPlayer(team, player string) *models.PlayerRecord {
	profile, ok := r.Profile(team)
	if !ok {
		return nil
	}

	search := NormalizePlayerName(player)
	passing := findInTable(profile["passing"].Data, search)
	rushRec := findInTable(profile["rushing_receiving"].Data, search)
	if passing == nil && rushRec == nil {
		return nil
	}

	merged := make(models.TableRow)
	source := "rushing_receiving"
	position := ""
	if passing != nil {
		for k, v := range passing {
			merged[k] = v
		}
		source = "passing"
		if pos, _ := passing["pos"].(string); pos != "" {
			position = pos
		} else {
			position = "QB"
		}
	}
	if rushRec != nil {
		for k, v := range rushRec {
			merged[k] = v
		}
		if passing != nil {
			source = "both"
		}
		if pos, _ := rushRec["pos"].(string); pos != "" {
			position = pos
		}
	}

	games := 1.0
	if g, ok := toFloat(merged["games"]); ok && g > 0 {
		games = g
	}

	record := &models.PlayerRecord{
		Name:     player,
		Position: strings.ToUpper(position),
		Games:    games,
		Source:   source,
		Averages: computeAverages(merged, games),
		Injury:   r.injuryStatus(profile, player),
	}
	return record
}

func findInTable(rows []models.TableRow, normalized string) models.TableRow {
	for _, row := range rows {
		name, _ := row["name_display"].(string)
		if name == "" {
			continue
		}
		if NormalizePlayerName(name) == normalized {
			return row
		}
	}
	return nil
}

// computeAverages fills every per-game field, deriving from season totals
// where the source table has no per-game column.
func computeAverages(row models.TableRow, games float64) models.PlayerAverages {
	perGame := func(field string) float64 {
		v, _ := toFloat(row[field])
		return v
	}
	fromTotal := func(field string) float64 {
		v, _ := toFloat(row[field])
		return v / games
	}

	return models.PlayerAverages{
		PassYds: perGame("pass_yds_per_g"),
		PassCmp: fromTotal("pass_cmp"),
		PassAtt: fromTotal("pass_att"),
		PassTD:  fromTotal("pass_td"),
		RushYds: perGame("rush_yds_per_g"),
		RushAtt: perGame("rush_att_per_g"),
		RushTD:  fromTotal("rush_td"),
		RecYds:  perGame("rec_yds_per_g"),
		Rec:     perGame("rec_per_g"),
		RecTD:   fromTotal("rec_td"),
		Targets: fromTotal("targets"),
	}
}

// injuryStatus reads the profile's injury report for a player
func (r *Repository) injuryStatus(profile models.TeamProfile, player string) models.InjuryStatus {
	report, ok := profile["injury_report"]
	if !ok {
		return models.InjuryHealthy
	}

	target := strings.ToLower(strings.TrimSpace(player))
	for _, row := range report.Data {
		name, _ := row["player"].(string)
		if strings.ToLower(strings.TrimSpace(name)) != target {
			continue
		}
		status, _ := row["status"].(string)
		return parseInjuryStatus(status)
	}
	return models.InjuryHealthy
}

func parseInjuryStatus(status string) models.InjuryStatus {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "injured reserve") || s == "ir":
		return models.InjuryReserve
	case strings.Contains(s, "out"):
		return models.InjuryOut
	case strings.Contains(s, "questionable") || strings.Contains(s, "doubtful"):
		return models.InjuryQuestionable
	default:
		return models.InjuryHealthy
	}
}

// InjuredReceivers returns the names of WR/TE listed out or on IR
func (r *Repository) InjuredReceivers(team string) []string {
	return r.injuredAtPositions(team, map[string]bool{"WR": true, "TE": true})
}

// InjuredLinemen returns the names of offensive linemen listed out or on IR
func (r *Repository) InjuredLinemen(team string) []string {
	return r.injuredAtPositions(team, map[string]bool{
		"OL": true, "T": true, "G": true, "C": true, "OT": true, "OG": true,
	})
}

func (r *Repository) injuredAtPositions(team string, positions map[string]bool) []string {
	profile, ok := r.Profile(team)
	if !ok {
		return nil
	}
	report, ok := profile["injury_report"]
	if !ok {
		return nil
	}

	var injured []string
	for _, row := range report.Data {
		status, _ := row["status"].(string)
		if !parseInjuryStatus(status).Excluded() {
			continue
		}
		pos, _ := row["pos"].(string)
		if !positions[strings.ToUpper(pos)] {
			continue
		}
		if name, _ := row["player"].(string); name != "" {
			injured = append(injured, name)
		}
	}
	return injured
}

// InferRole derives a usage tier from position and per-game usage. The tier
// feeds the adaptive variance model and prop deduplication.
func InferRole(position string, avg models.PlayerAverages) models.PlayerRole {
	switch strings.ToUpper(position) {
	case "QB":
		return "QB1"
	case "TE":
		if avg.Rec >= 3.0 {
			return "TE1"
		}
		return "TE2"
	case "RB":
		switch {
		case avg.RushAtt >= 12.0:
			return "RB1"
		case avg.RushAtt >= 6.0:
			return "RB2"
		default:
			return "RB3"
		}
	case "WR":
		targets := avg.Targets
		if targets == 0 {
			targets = avg.Rec * 1.5
		}
		switch {
		case targets >= 7.0 || avg.Rec >= 5.0:
			return "WR1"
		case targets >= 4.5 || avg.Rec >= 3.0:
			return "WR2"
		default:
			return "WR3"
		}
	default:
		return models.PlayerRole(strings.ToUpper(position) + "1")
	}
}
