// Package settlement grades previously recommended bets against finalized
// game results and aggregates the outcome at a fixed stake per bet.
package settlement

import (
	"strings"

	"github.com/yourusername/gridline/internal/models"
	"github.com/yourusername/gridline/internal/stats"
)

// nameSuffixes are generational suffixes dropped before comparison
var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
}

// normalizeName lowercases a player name, strips punctuation and drops
// generational suffixes so "Marvin Harrison Jr." compares as "marvin harrison".
func normalizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '\'':
			return -1
		}
		return r
	}, strings.ToLower(name))

	parts := strings.Fields(cleaned)
	for len(parts) > 1 && nameSuffixes[parts[len(parts)-1]] {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, " ")
}

// nameVariants expands a normalized name into its nickname forms in both
// directions, so "Cameron Ward" and "Cam Ward" produce overlapping sets.
func nameVariants(normalized string) []string {
	parts := strings.Fields(normalized)
	if len(parts) == 0 {
		return nil
	}

	firsts := stats.FirstNameForms(parts[0])
	variants := make([]string, 0, len(firsts))
	rest := strings.Join(parts[1:], " ")
	for _, first := range firsts {
		if rest == "" {
			variants = append(variants, first)
			continue
		}
		variants = append(variants, first+" "+rest)
	}
	return variants
}

// NameSimilarity scores two player names in [0,1], taking the best sequence
// match across all nickname variant combinations.
func NameSimilarity(a, b string) float64 {
	na, nb := normalizeName(a), normalizeName(b)
	if na == nb {
		return 1.0
	}

	best := 0.0
	for _, va := range nameVariants(na) {
		for _, vb := range nameVariants(nb) {
			if va == vb {
				return 1.0
			}
			if r := matchRatio(va, vb); r > best {
				best = r
			}
		}
	}
	return best
}

// matchRatio is 2*M/T where M is the total length of matched blocks and T
// the combined length, matched blocks found by recursively taking the longest
// common substring.
func matchRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2 * float64(matchedChars(a, b)) / float64(total)
}

func matchedChars(a, b string) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchedChars(a[:ai], b[:bi]) +
		matchedChars(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the longest common substring, ties broken by the
// earliest position in a, then in b.
func longestCommonBlock(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			curr[j+1] = prev[j] + 1
			if curr[j+1] > size {
				size = curr[j+1]
				ai = i - size + 1
				bi = j - size + 1
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}

// findPlayerRow locates a player's row in a box-score table by fuzzy name
// match at or above the threshold, preferring the highest score.
func findPlayerRow(rows []models.TableRow, player string, threshold float64) (models.TableRow, bool) {
	var bestRow models.TableRow
	best := 0.0
	for _, row := range rows {
		name, _ := row["name_display"].(string)
		if name == "" {
			continue
		}
		if score := NameSimilarity(player, name); score >= threshold && score > best {
			best = score
			bestRow = row
		}
	}
	return bestRow, bestRow != nil
}
