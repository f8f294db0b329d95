package standings

import (
	"sort"
	"strings"

	"github.com/Dosada05/league-standings/models"
)

// topTenSize is the number of leaderboard positions carrying the
// War-Master override.
const topTenSize = 10

// AssembleLeaderboard turns a fold result into the globally ranked
// player list: sorted by rating descending, 1-based rank, with the
// top-10 War-Master override applied to the displayed tier. Players
// with equal ratings are ordered by name for a stable output.
func AssembleLeaderboard(players []models.Player, res *FoldResult) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(players))
	for _, p := range players {
		rating, ok := res.Ratings[p.ID]
		if !ok {
			rating = DefaultStartingRating
		}
		entry := models.LeaderboardEntry{
			PlayerID: p.ID,
			Name:     p.Name,
			State:    p.State,
			Country:  p.Country,
			Rating:   rating,
		}
		if stats, ok := res.Stats[p.ID]; ok {
			entry.Wins = stats.Wins
			entry.Losses = stats.Losses
			entry.Draws = stats.Draws
			entry.Games = stats.Games
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].Name < entries[j].Name
	})

	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Tier = string(RankTier(entries[i].Rating, i < topTenSize))
	}

	return entries
}

// LeaderboardFilter narrows an assembled leaderboard. Filtering never
// recomputes ratings — it selects over the already-folded list.
type LeaderboardFilter struct {
	NameQuery    string
	State        string
	HideInactive bool
}

// contextualNumbering reports whether filtered rows should be
// renumbered within the filtered set. Only a bare region filter does
// that; any combination with a name search or the hide-inactive toggle
// keeps the global rank numbers.
func (f LeaderboardFilter) contextualNumbering() bool {
	return f.State != "" && f.NameQuery == "" && !f.HideInactive
}

// Filter applies f over a globally ranked leaderboard.
func Filter(entries []models.LeaderboardEntry, f LeaderboardFilter) []models.LeaderboardEntry {
	query := strings.ToLower(strings.TrimSpace(f.NameQuery))

	filtered := make([]models.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		if f.State != "" && (e.State == nil || !strings.EqualFold(*e.State, f.State)) {
			continue
		}
		if f.HideInactive && e.Games == 0 {
			continue
		}
		filtered = append(filtered, e)
	}

	if f.contextualNumbering() {
		for i := range filtered {
			filtered[i].Rank = i + 1
		}
	}

	return filtered
}
