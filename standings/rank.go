package standings

// Tier — именованный ранг игрока, производный от рейтинга.
type Tier string

const (
	TierWarMaster     Tier = "War-Master"
	TierChapterMaster Tier = "Chapter-Master"
	TierWarLord       Tier = "War-Lord"
	TierCaptain       Tier = "Captain"
	TierLieutenant    Tier = "Lieutenant"
	TierSergeant      Tier = "Sergeant"
	TierTrooper       Tier = "Trooper"
	TierScout         Tier = "Scout"
)

// tierThresholds is walked top-down; the first threshold at or below
// the rating wins.
var tierThresholds = []struct {
	min  float64
	tier Tier
}{
	{2000, TierChapterMaster},
	{1900, TierWarLord},
	{1750, TierCaptain},
	{1600, TierLieutenant},
	{1450, TierSergeant},
	{1300, TierTrooper},
}

// RankTier maps a rating to its tier. A player currently inside the
// global top 10 is always War-Master regardless of raw rating; callers
// that classify historical ratings pass inTopTen=false, since only
// current overall standings apply the override.
func RankTier(rating float64, inTopTen bool) Tier {
	if inTopTen {
		return TierWarMaster
	}
	for _, t := range tierThresholds {
		if rating >= t.min {
			return t.tier
		}
	}
	return TierScout
}
