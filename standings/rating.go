// Package standings implements the league's rating-and-placement
// computation engine: a deterministic replay of the full match history
// into per-player ratings, annotated histories, leaderboards and
// tournament placements. The package is pure — no I/O, no shared
// state; callers load rows and hand them in as in-memory slices.
package standings

import "math"

const (
	// DefaultStartingRating is the rating every player begins at.
	// Ratings are never persisted; they are recomputed from the full
	// match history on every request.
	DefaultStartingRating = 1500.0

	baseKFactor = 32.0

	// maxCombinedTeamScore is the ceiling of the two aggregate team
	// scores in one round of the 20-points-per-game format
	// (8 players x 20 points).
	maxCombinedTeamScore = 160.0
)

// expectedScore returns the classic Elo expectation for side A.
func expectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// actualScore maps raw scores to 1 / 0.5 / 0 for side A.
func actualScore(scoreA, scoreB int) float64 {
	switch {
	case scoreA > scoreB:
		return 1.0
	case scoreA < scoreB:
		return 0.0
	default:
		return 0.5
	}
}

// movMultiplier is the margin-of-victory multiplier: larger score gaps
// amplify the rating change, dampened when the winner is already rated
// far above the loser. winnerGap is the winner's rating minus the
// loser's rating, which keeps the multiplier identical from both
// sides' perspectives.
func movMultiplier(margin int, winnerGap float64) float64 {
	return math.Log(math.Abs(float64(margin))+1) * (2.2 / (winnerGap*0.001 + 2.2))
}

// RatingDelta returns the signed rating change for side A of a singles
// match. Draws never move the rating. The same call with the sides
// swapped yields the exact negative, so singles updates are zero-sum.
func RatingDelta(ratingA, ratingB float64, scoreA, scoreB int) float64 {
	if scoreA == scoreB {
		return 0
	}

	winnerGap := ratingA - ratingB
	if scoreB > scoreA {
		winnerGap = ratingB - ratingA
	}

	mov := movMultiplier(scoreA-scoreB, winnerGap)
	return math.Round(baseKFactor * mov * (actualScore(scoreA, scoreB) - expectedScore(ratingA, ratingB)))
}

// TeamRatingDelta returns the signed rating change for one player of a
// team match. Unlike singles, the two sides are computed independently
// and are not forced zero-sum: the margin component is scaled by the
// team-aggregate score differential, so an individual result on the
// winning team is worth more than the same result on a losing team.
func TeamRatingDelta(ratingSelf, ratingOpp float64, selfScore, oppScore, selfTeamScore, oppTeamScore int) float64 {
	if selfScore == oppScore {
		return 0
	}

	winnerGap := ratingSelf - ratingOpp
	if oppScore > selfScore {
		winnerGap = ratingOpp - ratingSelf
	}

	teamFactor := 1.0 + float64(selfTeamScore-oppTeamScore)/maxCombinedTeamScore
	if teamFactor < 0.25 {
		teamFactor = 0.25
	} else if teamFactor > 1.75 {
		teamFactor = 1.75
	}

	mov := movMultiplier(selfScore-oppScore, winnerGap) * teamFactor
	return math.Round(baseKFactor * mov * (actualScore(selfScore, oppScore) - expectedScore(ratingSelf, ratingOpp)))
}
