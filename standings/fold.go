package standings

import (
	"fmt"
	"sort"

	"github.com/Dosada05/league-standings/models"
)

// FoldResult bundles everything one replay of the match history
// produces. It is built from scratch on every call; nothing in it is
// shared between invocations.
type FoldResult struct {
	Ratings   map[string]float64
	Stats     map[string]*models.PlayerStats
	Histories map[string][]models.RatedMatchEntry

	// Dropped counts matches that contributed nothing: duplicates and
	// matches referencing players missing from the roster.
	Dropped int
}

// NormalizeRows runs the normalizer over a batch of raw rows, dropping
// invalid ones. The second return value is the number of dropped rows.
func NormalizeRows(rows []RawRow) ([]models.MatchRecord, int) {
	records := make([]models.MatchRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec, err := Normalize(row)
		if err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	return records, dropped
}

// matchKey identifies a logical match for deduplication. Team rows
// additionally carry the unordered team pairing, standing in for the
// table identifier the legacy sheets used.
func matchKey(m models.MatchRecord) string {
	key := fmt.Sprintf("%s|%s|%d|%s", m.Player1ID, m.Player2ID, m.RoundNumber, m.EventName)
	if m.IsTeamMatch {
		t1, t2 := m.Team1ID, m.Team2ID
		if t2 < t1 {
			t1, t2 = t2, t1
		}
		key += "|" + t1 + "|" + t2
	}
	return key
}

func resultFor(own, opp int) models.MatchResult {
	switch {
	case own > opp:
		return models.ResultWin
	case own < opp:
		return models.ResultLoss
	default:
		return models.ResultDraw
	}
}

// Recompute replays the full match list in chronological order and
// returns final ratings, win/loss/draw counters and annotated
// per-player histories. Only players present in the roster take part;
// a match referencing an unknown player is skipped entirely, since a
// rating update needs both starting ratings.
//
// The replay is deterministic: matches are stably sorted by date with
// the round number as tie-breaker, so any pre-sort input order yields
// identical results.
func Recompute(players []models.Player, matches []models.MatchRecord, startingRating float64) *FoldResult {
	roster := make(map[string]string, len(players))
	for _, p := range players {
		roster[p.ID] = p.Name
	}

	ordered := make([]models.MatchRecord, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].RoundNumber < ordered[j].RoundNumber
	})

	res := &FoldResult{
		Ratings:   make(map[string]float64),
		Stats:     make(map[string]*models.PlayerStats),
		Histories: make(map[string][]models.RatedMatchEntry),
	}

	rating := func(id string) float64 {
		if r, ok := res.Ratings[id]; ok {
			return r
		}
		res.Ratings[id] = startingRating
		res.Stats[id] = &models.PlayerStats{}
		return startingRating
	}

	seen := make(map[string]struct{}, len(ordered))

	for _, m := range ordered {
		if _, ok := roster[m.Player1ID]; !ok {
			res.Dropped++
			continue
		}
		if _, ok := roster[m.Player2ID]; !ok {
			res.Dropped++
			continue
		}

		key := matchKey(m)
		if _, dup := seen[key]; dup {
			res.Dropped++
			continue
		}
		seen[key] = struct{}{}

		r1 := rating(m.Player1ID)
		r2 := rating(m.Player2ID)

		var d1, d2 float64
		matchType := models.MatchTypeSingles
		if m.IsTeamMatch {
			matchType = models.MatchTypeTeams
			d1 = TeamRatingDelta(r1, r2, m.Score1, m.Score2, m.TeamScore1, m.TeamScore2)
			d2 = TeamRatingDelta(r2, r1, m.Score2, m.Score1, m.TeamScore2, m.TeamScore1)
		} else {
			d1 = RatingDelta(r1, r2, m.Score1, m.Score2)
			d2 = -d1
		}

		res.Histories[m.Player1ID] = append(res.Histories[m.Player1ID], models.RatedMatchEntry{
			Date:          m.Date,
			EventName:     m.EventName,
			RoundNumber:   m.RoundNumber,
			OpponentID:    m.Player2ID,
			OpponentName:  roster[m.Player2ID],
			OwnScore:      m.Score1,
			OpponentScore: m.Score2,
			OwnFaction:    m.Player1Faction,
			OppFaction:    m.Player2Faction,
			MatchType:     matchType,
			Result:        resultFor(m.Score1, m.Score2),
			RatingBefore:  r1,
			RatingAfter:   r1 + d1,
			RatingDelta:   d1,
		})
		res.Histories[m.Player2ID] = append(res.Histories[m.Player2ID], models.RatedMatchEntry{
			Date:          m.Date,
			EventName:     m.EventName,
			RoundNumber:   m.RoundNumber,
			OpponentID:    m.Player1ID,
			OpponentName:  roster[m.Player1ID],
			OwnScore:      m.Score2,
			OpponentScore: m.Score1,
			OwnFaction:    m.Player2Faction,
			OppFaction:    m.Player1Faction,
			MatchType:     matchType,
			Result:        resultFor(m.Score2, m.Score1),
			RatingBefore:  r2,
			RatingAfter:   r2 + d2,
			RatingDelta:   d2,
		})

		bumpStats(res.Stats[m.Player1ID], m.Score1, m.Score2)
		bumpStats(res.Stats[m.Player2ID], m.Score2, m.Score1)

		res.Ratings[m.Player1ID] = r1 + d1
		res.Ratings[m.Player2ID] = r2 + d2
	}

	annotateRankTransitions(res.Histories)

	return res
}

func bumpStats(s *models.PlayerStats, own, opp int) {
	s.Games++
	switch {
	case own > opp:
		s.Wins++
	case own < opp:
		s.Losses++
	default:
		s.Draws++
	}
}

// annotateRankTransitions marks history entries that cross a tier
// boundary. Historical tiers never use the top-10 override: only the
// current overall standings apply it.
func annotateRankTransitions(histories map[string][]models.RatedMatchEntry) {
	for id, entries := range histories {
		for i := range entries {
			before := RankTier(entries[i].RatingBefore, false)
			after := RankTier(entries[i].RatingAfter, false)
			if before == after {
				continue
			}
			var note string
			if entries[i].RatingDelta > 0 {
				note = fmt.Sprintf("Promoted to %s", after)
			} else {
				note = fmt.Sprintf("Demoted to %s", after)
			}
			entries[i].RankTransition = &note
		}
		histories[id] = entries
	}
}
