package progression_test

import (
	"testing"

	"github.com/2beens/fitcoach/internal/progression"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	cases := map[int]int{
		-50:  1,
		0:    1,
		99:   1,
		100:  2,
		249:  2,
		250:  3,
		449:  3,
		450:  4,
		699:  4,
		700:  5,
		999:  5,
		1000: 6,
		1299: 6,
		1300: 7,
		1600: 8,
		4000: 16,
	}
	for xp, level := range cases {
		assert.Equal(t, level, progression.Level(xp), "xp %d", xp)
	}
}

func TestLevel_Monotonic(t *testing.T) {
	prev := progression.Level(0)
	for xp := 1; xp <= 5000; xp++ {
		l := progression.Level(xp)
		assert.GreaterOrEqual(t, l, prev, "xp %d", xp)
		assert.LessOrEqual(t, l-prev, 1, "xp %d", xp)
		prev = l
	}
}

func TestLevelThreshold(t *testing.T) {
	for level := 1; level <= 20; level++ {
		threshold := progression.LevelThreshold(level)
		assert.Equal(t, level, progression.Level(threshold), "level %d", level)
		if threshold > 0 {
			assert.Equal(t, level-1, progression.Level(threshold-1), "level %d", level)
		}
	}
	assert.Equal(t, 0, progression.LevelThreshold(0))
}

func TestProgressOf(t *testing.T) {
	p := progression.ProgressOf(175)
	assert.Equal(t, progression.LevelProgress{
		Level:          2,
		LevelXP:        100,
		NextLevelXP:    250,
		XPToNextLevel:  75,
		ProgressPerMil: 500,
	}, p)

	p = progression.ProgressOf(1000)
	assert.Equal(t, 6, p.Level)
	assert.Equal(t, 1300, p.NextLevelXP)
	assert.Equal(t, 0, p.ProgressPerMil)

	assert.Equal(t, 1, progression.ProgressOf(-10).Level)
}
