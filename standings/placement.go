package standings

import (
	"sort"

	"github.com/Dosada05/league-standings/models"
)

const (
	// combinedGameScore is the fixed raw-score total of one game in a
	// team round. An event where every match sums to this value is a
	// teams event; a single deviation makes the whole event singles.
	combinedGameScore = 20

	// teamDrawMargin is the aggregate-score band counted as a drawn
	// round, regardless of how many players the round had.
	teamDrawMargin = 10

	// eightPlayerRoundTotal marks a round as 8-player for display.
	eightPlayerRoundTotal = 160

	// rttMaxRounds — турниры на 1–3 раунда считаются RTT, длиннее — GT.
	rttMaxRounds = 3
)

// ClassifyEvent returns the format of one event instance given all of
// its matches.
func ClassifyEvent(matches []models.MatchRecord) models.EventFormat {
	if len(matches) == 0 {
		return models.EventFormatSingles
	}
	for _, m := range matches {
		if m.Score1+m.Score2 != combinedGameScore {
			return models.EventFormatSingles
		}
	}
	return models.EventFormatTeams
}

// ClassifyEventSize names the event class by round count.
func ClassifyEventSize(rounds int) string {
	if rounds >= 1 && rounds <= rttMaxRounds {
		return "RTT"
	}
	return "GT"
}

// PlaceEvent aggregates the per-round results of one event instance
// into final placements. The matches must all belong to the same event
// (one date + name); an empty slice yields empty placements.
func PlaceEvent(matches []models.MatchRecord) *models.EventPlacements {
	out := &models.EventPlacements{Format: ClassifyEvent(matches)}
	if len(matches) == 0 {
		return out
	}

	maxRound := 0
	for _, m := range matches {
		if m.RoundNumber > maxRound {
			maxRound = m.RoundNumber
		}
	}
	out.Rounds = maxRound

	if out.Format == models.EventFormatTeams {
		out.Teams = placeTeams(matches, maxRound)
	} else {
		out.Singles = placeSingles(matches, maxRound)
	}
	return out
}

type singlesAcc struct {
	playerID     string
	wins         int
	totalScore   int
	factionCount map[string]int
	factionOrder []string
	rounds       []*models.RoundResult
}

func placeSingles(matches []models.MatchRecord, maxRound int) []models.SinglesPlacement {
	accs := make(map[string]*singlesAcc)
	order := make([]string, 0)

	get := func(id string) *singlesAcc {
		if acc, ok := accs[id]; ok {
			return acc
		}
		acc := &singlesAcc{
			playerID:     id,
			factionCount: make(map[string]int),
			rounds:       make([]*models.RoundResult, maxRound),
		}
		accs[id] = acc
		order = append(order, id)
		return acc
	}

	record := func(id, oppID, faction string, own, opp, round int) {
		acc := get(id)
		acc.totalScore += own
		if own > opp {
			acc.wins++
		}
		if _, seen := acc.factionCount[faction]; !seen {
			acc.factionOrder = append(acc.factionOrder, faction)
		}
		acc.factionCount[faction]++
		if round >= 1 && round <= maxRound {
			acc.rounds[round-1] = &models.RoundResult{
				OpponentID:    oppID,
				OwnScore:      own,
				OpponentScore: opp,
				Result:        resultFor(own, opp),
			}
		}
	}

	for _, m := range matches {
		record(m.Player1ID, m.Player2ID, m.Player1Faction, m.Score1, m.Score2, m.RoundNumber)
		record(m.Player2ID, m.Player1ID, m.Player2Faction, m.Score2, m.Score1, m.RoundNumber)
	}

	placements := make([]models.SinglesPlacement, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		placements = append(placements, models.SinglesPlacement{
			PlayerID:    acc.playerID,
			Wins:        acc.wins,
			TotalScore:  acc.totalScore,
			MainFaction: mainFaction(acc),
			Rounds:      acc.rounds,
		})
	}

	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].Wins != placements[j].Wins {
			return placements[i].Wins > placements[j].Wins
		}
		return placements[i].TotalScore > placements[j].TotalScore
	})
	return placements
}

// mainFaction picks the faction with the highest play count; the first
// faction encountered wins ties.
func mainFaction(acc *singlesAcc) string {
	best, bestCount := defaultFaction, 0
	for _, faction := range acc.factionOrder {
		if acc.factionCount[faction] > bestCount {
			best = faction
			bestCount = acc.factionCount[faction]
		}
	}
	return best
}

// pairingAgg accumulates one team-vs-team pairing within one round.
type pairingAgg struct {
	team1, team2 string
	points1      int
	points2      int
}

func placeTeams(matches []models.MatchRecord, maxRound int) []models.TeamPlacement {
	// Per round, individual games collapse into one aggregate per
	// unordered team pair, so a pairing is evaluated exactly once even
	// when several player rows map to it.
	rounds := make(map[int]map[string]*pairingAgg)
	for _, m := range matches {
		if m.RoundNumber < 1 {
			continue
		}
		t1, t2, s1, s2 := m.Team1ID, m.Team2ID, m.Score1, m.Score2
		if t2 < t1 {
			t1, t2 = t2, t1
			s1, s2 = s2, s1
		}
		key := t1 + "|" + t2
		if rounds[m.RoundNumber] == nil {
			rounds[m.RoundNumber] = make(map[string]*pairingAgg)
		}
		agg, ok := rounds[m.RoundNumber][key]
		if !ok {
			agg = &pairingAgg{team1: t1, team2: t2}
			rounds[m.RoundNumber][key] = agg
		}
		agg.points1 += s1
		agg.points2 += s2
	}

	type teamAcc struct {
		teamID      string
		roundWins   int
		totalPoints int
		rounds      []*models.TeamRoundResult
	}
	accs := make(map[string]*teamAcc)
	order := make([]string, 0)
	get := func(id string) *teamAcc {
		if acc, ok := accs[id]; ok {
			return acc
		}
		acc := &teamAcc{teamID: id, rounds: make([]*models.TeamRoundResult, maxRound)}
		accs[id] = acc
		order = append(order, id)
		return acc
	}

	roundNums := make([]int, 0, len(rounds))
	for n := range rounds {
		roundNums = append(roundNums, n)
	}
	sort.Ints(roundNums)

	for _, n := range roundNums {
		pairKeys := make([]string, 0, len(rounds[n]))
		for k := range rounds[n] {
			pairKeys = append(pairKeys, k)
		}
		sort.Strings(pairKeys)

		for _, k := range pairKeys {
			agg := rounds[n][k]
			diff := agg.points1 - agg.points2
			drawn := diff >= -teamDrawMargin && diff <= teamDrawMargin
			eight := agg.points1+agg.points2 == eightPlayerRoundTotal

			acc1 := get(agg.team1)
			acc2 := get(agg.team2)
			acc1.totalPoints += agg.points1
			acc2.totalPoints += agg.points2

			res1 := &models.TeamRoundResult{
				OpponentTeamID: agg.team2,
				OwnPoints:      agg.points1,
				OpponentPoints: agg.points2,
				Drawn:          drawn,
				EightPlayer:    eight,
			}
			res2 := &models.TeamRoundResult{
				OpponentTeamID: agg.team1,
				OwnPoints:      agg.points2,
				OpponentPoints: agg.points1,
				Drawn:          drawn,
				EightPlayer:    eight,
			}
			if !drawn {
				if diff > 0 {
					acc1.roundWins++
					res1.Won = true
				} else {
					acc2.roundWins++
					res2.Won = true
				}
			}
			acc1.rounds[n-1] = res1
			acc2.rounds[n-1] = res2
		}
	}

	placements := make([]models.TeamPlacement, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		placements = append(placements, models.TeamPlacement{
			TeamID:      acc.teamID,
			RoundWins:   acc.roundWins,
			TotalPoints: acc.totalPoints,
			Rounds:      acc.rounds,
		})
	}
	sort.SliceStable(placements, func(i, j int) bool {
		if placements[i].RoundWins != placements[j].RoundWins {
			return placements[i].RoundWins > placements[j].RoundWins
		}
		return placements[i].TotalPoints > placements[j].TotalPoints
	})
	return placements
}
