package progression

// level thresholds up to level 5, indexed by level-1
var levelThresholds = []int{0, 100, 250, 450, 700}

const (
	linearLevelsFromXP = 1000
	xpPerLinearLevel   = 300
	firstLinearLevel   = 6
)

// Level maps cumulative xp to a level. Below 1000 xp levels follow a fixed
// table, from 1000 on every 300 xp is one more level (1000 -> 6, 1300 -> 7).
func Level(xp int) int {
	if xp >= linearLevelsFromXP {
		return firstLinearLevel + (xp-linearLevelsFromXP)/xpPerLinearLevel
	}
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// LevelThreshold returns the minimal xp needed for the given level.
func LevelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= len(levelThresholds) {
		return levelThresholds[level-1]
	}
	return linearLevelsFromXP + (level-firstLinearLevel)*xpPerLinearLevel
}

// LevelProgress describes where xp sits between the current and the next level.
type LevelProgress struct {
	Level          int `json:"level"`
	LevelXP        int `json:"levelXp"`
	NextLevelXP    int `json:"nextLevelXp"`
	XPToNextLevel  int `json:"xpToNextLevel"`
	ProgressPerMil int `json:"progressPerMil"`
}

func ProgressOf(xp int) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	level := Level(xp)
	from := LevelThreshold(level)
	to := LevelThreshold(level + 1)
	return LevelProgress{
		Level:          level,
		LevelXP:        from,
		NextLevelXP:    to,
		XPToNextLevel:  to - xp,
		ProgressPerMil: (xp - from) * 1000 / (to - from),
	}
}
