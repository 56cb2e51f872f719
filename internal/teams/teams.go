// Package teams holds NFL team constants and name resolution. The alias
// tables are pure static lookup data built once at init.
package teams

import "strings"

// Team holds the identifiers a team appears under across data sources
type Team struct {
	Name    string
	Abbr    string
	City    string
	Mascot  string
	Aliases []string
}

// All 32 NFL teams with metadata
var Teams = []Team{
	{Name: "Arizona Cardinals", Abbr: "ARI", City: "Arizona", Mascot: "Cardinals"},
	{Name: "Atlanta Falcons", Abbr: "ATL", City: "Atlanta", Mascot: "Falcons"},
	{Name: "Baltimore Ravens", Abbr: "BAL", City: "Baltimore", Mascot: "Ravens"},
	{Name: "Buffalo Bills", Abbr: "BUF", City: "Buffalo", Mascot: "Bills"},
	{Name: "Carolina Panthers", Abbr: "CAR", City: "Carolina", Mascot: "Panthers"},
	{Name: "Chicago Bears", Abbr: "CHI", City: "Chicago", Mascot: "Bears"},
	{Name: "Cincinnati Bengals", Abbr: "CIN", City: "Cincinnati", Mascot: "Bengals"},
	{Name: "Cleveland Browns", Abbr: "CLE", City: "Cleveland", Mascot: "Browns"},
	{Name: "Dallas Cowboys", Abbr: "DAL", City: "Dallas", Mascot: "Cowboys"},
	{Name: "Denver Broncos", Abbr: "DEN", City: "Denver", Mascot: "Broncos"},
	{Name: "Detroit Lions", Abbr: "DET", City: "Detroit", Mascot: "Lions"},
	{Name: "Green Bay Packers", Abbr: "GB", City: "Green Bay", Mascot: "Packers"},
	{Name: "Houston Texans", Abbr: "HOU", City: "Houston", Mascot: "Texans"},
	{Name: "Indianapolis Colts", Abbr: "IND", City: "Indianapolis", Mascot: "Colts"},
	{Name: "Jacksonville Jaguars", Abbr: "JAX", City: "Jacksonville", Mascot: "Jaguars"},
	{Name: "Kansas City Chiefs", Abbr: "KC", City: "Kansas City", Mascot: "Chiefs", Aliases: []string{"KC Chiefs"}},
	{Name: "Las Vegas Raiders", Abbr: "LV", City: "Las Vegas", Mascot: "Raiders", Aliases: []string{"LV Raiders"}},
	{Name: "Los Angeles Chargers", Abbr: "LAC", City: "Los Angeles", Mascot: "Chargers", Aliases: []string{"LA Chargers"}},
	{Name: "Los Angeles Rams", Abbr: "LAR", City: "Los Angeles", Mascot: "Rams", Aliases: []string{"LA Rams"}},
	{Name: "Miami Dolphins", Abbr: "MIA", City: "Miami", Mascot: "Dolphins"},
	{Name: "Minnesota Vikings", Abbr: "MIN", City: "Minnesota", Mascot: "Vikings"},
	{Name: "New England Patriots", Abbr: "NE", City: "New England", Mascot: "Patriots", Aliases: []string{"NE Patriots"}},
	{Name: "New Orleans Saints", Abbr: "NO", City: "New Orleans", Mascot: "Saints", Aliases: []string{"NO Saints"}},
	{Name: "New York Giants", Abbr: "NYG", City: "New York", Mascot: "Giants", Aliases: []string{"NY Giants"}},
	{Name: "New York Jets", Abbr: "NYJ", City: "New York", Mascot: "Jets", Aliases: []string{"NY Jets"}},
	{Name: "Philadelphia Eagles", Abbr: "PHI", City: "Philadelphia", Mascot: "Eagles"},
	{Name: "Pittsburgh Steelers", Abbr: "PIT", City: "Pittsburgh", Mascot: "Steelers"},
	{Name: "San Francisco 49ers", Abbr: "SF", City: "San Francisco", Mascot: "49ers", Aliases: []string{"SF 49ers"}},
	{Name: "Seattle Seahawks", Abbr: "SEA", City: "Seattle", Mascot: "Seahawks"},
	{Name: "Tampa Bay Buccaneers", Abbr: "TB", City: "Tampa Bay", Mascot: "Buccaneers", Aliases: []string{"TB Buccaneers"}},
	{Name: "Tennessee Titans", Abbr: "TEN", City: "Tennessee", Mascot: "Titans"},
	{Name: "Washington Commanders", Abbr: "WAS", City: "Washington", Mascot: "Commanders"},
}

// variations maps every known spelling (lowercased) to the canonical full name
var variations = buildVariations()

func buildVariations() map[string]string {
	m := make(map[string]string, len(Teams)*5)
	for _, t := range Teams {
		m[strings.ToLower(t.Name)] = t.Name
		m[strings.ToLower(t.Abbr)] = t.Name
		m[strings.ToLower(t.Mascot)] = t.Name
		m[strings.ToLower(t.City)] = t.Name
		for _, a := range t.Aliases {
			m[strings.ToLower(a)] = t.Name
		}
	}
	return m
}

// Canonical resolves any team name spelling, abbreviation or alias to the
// canonical full name. Unknown names are returned unchanged so callers can
// still index by whatever the payload used.
func Canonical(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if full, ok := variations[key]; ok {
		return full
	}
	// DraftKings sometimes prefixes the abbreviation ("TB Buccaneers")
	if parts := strings.Fields(key); len(parts) > 1 {
		if full, ok := variations[parts[0]]; ok {
			return full
		}
		if full, ok := variations[parts[len(parts)-1]]; ok {
			return full
		}
	}
	return strings.TrimSpace(name)
}

// Abbr returns the standard abbreviation for any team name spelling,
// or the input unchanged when the team is unknown.
func Abbr(name string) string {
	canonical := Canonical(name)
	for _, t := range Teams {
		if t.Name == canonical {
			return t.Abbr
		}
	}
	return name
}

// Match reports whether two team references point at the same team,
// tolerating partial spellings ("bears" vs "Chicago Bears").
func Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ca := strings.ToLower(Canonical(a))
	cb := strings.ToLower(Canonical(b))
	if ca == cb {
		return true
	}
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(ca, lb) || strings.Contains(cb, la)
}
