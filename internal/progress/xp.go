package progress

import "errors"

// LevelBaseCost scales the leveling curve: advancing from level L costs
// L * LevelBaseCost XP.
const LevelBaseCost = 100

// ErrInsufficientXP is returned by Spend when the balance cannot cover the
// cost. The caller's state is unchanged.
var ErrInsufficientXP = errors.New("insufficient xp")

// NextLevelCost returns the XP needed to advance from the given level.
func NextLevelCost(level int) int {
	if level < 1 {
		level = 1
	}
	return level * LevelBaseCost
}

// Award applies an XP award and returns the new (xp, level) pair. Crossing
// a level threshold consumes exactly the threshold amount and increments
// the level; a large award can cross several thresholds. XP and level
// never decrease from an award.
func Award(xp int64, level int, points int) (int64, int) {
	if level < 1 {
		level = 1
	}
	if points <= 0 {
		return xp, level
	}

	xp += int64(points)
	for xp >= int64(NextLevelCost(level)) {
		xp -= int64(NextLevelCost(level))
		level++
	}
	return xp, level
}

// Spend deducts cost from the balance, used for cosmetic unlocks. It
// returns ErrInsufficientXP and the original balance when the balance is
// too low.
func Spend(xp int64, cost int) (int64, error) {
	if cost < 0 {
		cost = 0
	}
	if xp < int64(cost) {
		return xp, ErrInsufficientXP
	}
	return xp - int64(cost), nil
}
