// Package catalog holds the immutable content the engine runs against: the
// 100-level curriculum, the achievement definition table and the coin shop.
// Everything is built once at startup and only read afterwards.
package catalog

import (
	"codequest/internal/models"
)

const (
	// TotalLevels is the size of the curriculum.
	TotalLevels = 100
	// TestInterval makes every 10th level an assessment.
	TestInterval = 10
	// ChallengeInterval makes every 25th level a challenge project.
	ChallengeInterval = 25

	// LessonPassingScore applies to lessons and challenges.
	LessonPassingScore = 70
	// TestPassingScore is the stricter bar for assessment levels.
	TestPassingScore = 80
)

// Catalog is the read-only content store.
type Catalog struct {
	levels       []models.Level
	byID         map[int]models.Level
	achievements []models.AchievementDef
	rewards      []models.ShopReward
	rewardByID   map[string]models.ShopReward
}

// New builds the full catalog.
func New() *Catalog {
	levels := generateLevels()
	byID := make(map[int]models.Level, len(levels))
	for _, l := range levels {
		byID[l.ID] = l
	}

	rewards := shopRewards()
	rewardByID := make(map[string]models.ShopReward, len(rewards))
	for _, r := range rewards {
		rewardByID[r.ID] = r
	}

	return &Catalog{
		levels:       levels,
		byID:         byID,
		achievements: achievementDefs(),
		rewards:      rewards,
		rewardByID:   rewardByID,
	}
}

// Level returns the level with the given id. The second return is false for
// unknown ids; callers treat that as a normal condition (e.g. last level + 1).
func (c *Catalog) Level(id int) (models.Level, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Levels returns all levels in catalog order.
func (c *Catalog) Levels() []models.Level {
	return c.levels
}

// Achievements returns the achievement definition table.
func (c *Catalog) Achievements() []models.AchievementDef {
	return c.achievements
}

// ShopRewards returns the purchasable reward table.
func (c *Catalog) ShopRewards() []models.ShopReward {
	return c.rewards
}

// ShopReward returns one shop reward by id.
func (c *Catalog) ShopReward(id string) (models.ShopReward, bool) {
	r, ok := c.rewardByID[id]
	return r, ok
}
