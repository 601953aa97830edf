package pet

import "time"

const (
	HungerCap          = 100
	FeedHungerRelief   = 30
	FeedHappinessBoost = 10
	FeedXP             = 10
	HappinessCap       = 100
)

// HungerAt projects the stored hunger value forward to now. Hunger grows
// ratePerHour points per full hour since the last feeding, capped at 100.
// Clock skew that puts lastFed in the future leaves hunger unchanged.
func HungerAt(stored int, lastFed, now time.Time, ratePerHour int) int {
	if ratePerHour <= 0 {
		ratePerHour = 5
	}
	elapsed := now.Sub(lastFed)
	if elapsed < 0 {
		elapsed = 0
	}
	hunger := stored + int(elapsed.Hours())*ratePerHour
	if hunger > HungerCap {
		return HungerCap
	}
	if hunger < 0 {
		return 0
	}
	return hunger
}

// applyFeeding returns the post-meal hunger and happiness.
func applyFeeding(hunger, happiness int) (int, int) {
	hunger -= FeedHungerRelief
	if hunger < 0 {
		hunger = 0
	}
	happiness += FeedHappinessBoost
	if happiness > HappinessCap {
		happiness = HappinessCap
	}
	return hunger, happiness
}
