package catalog

import (
	"fmt"

	"codequest/internal/models"
)

var topics = []string{
	"Go Basics", "Variables & Types", "Strings & Runes",
	"Operators & Expressions", "Control Flow", "Conditionals & Switch",
	"Loops & Iteration", "Functions & Scope", "Slices & Indexing",
	"Maps & Sets", "Arrays & Structs", "File Handling",
	"Errors & Debugging", "Methods & Receivers", "Interfaces & Embedding",
	"Closures & Deferred Calls", "Generics & Constraints", "Packages & Modules",
	"Testing & Benchmarks", "Regular Expressions", "JSON & Encoding",
	"Database Access", "HTTP Servers", "API Design",
	"Goroutines & Channels", "Concurrency Patterns", "Context & Cancellation",
	"Reflection & Tags", "Performance & Profiling", "Advanced Topics",
}

var difficulties = []string{"Beginner", "Easy", "Intermediate", "Advanced", "Expert"}

func generateLevels() []models.Level {
	levels := make([]models.Level, 0, TotalLevels)
	for id := 1; id <= TotalLevels; id++ {
		levels = append(levels, buildLevel(id))
	}
	return levels
}

func buildLevel(id int) models.Level {
	topic := topics[((id-1)/3)%len(topics)]
	diffIdx := (id - 1) / 15
	if diffIdx >= len(difficulties) {
		diffIdx = len(difficulties) - 1
	}

	baseXP := 50 + (id/5)*10
	baseCoins := 20 + (id/10)*5

	// Challenges take precedence where the intervals coincide (50, 100).
	switch {
	case id%ChallengeInterval == 0:
		return buildChallengeLevel(id, topic, diffIdx, baseXP, baseCoins)
	case id%TestInterval == 0:
		return buildTestLevel(id, topic, diffIdx, baseXP, baseCoins)
	default:
		return buildLessonLevel(id, topic, diffIdx, baseXP, baseCoins)
	}
}

func buildLessonLevel(id int, topic string, diffIdx, baseXP, baseCoins int) models.Level {
	return models.Level{
		ID:           id,
		Kind:         models.LevelLesson,
		Title:        fmt.Sprintf("Level %d: %s", id, topic),
		Topic:        topic,
		Difficulty:   difficulties[diffIdx],
		Description:  fmt.Sprintf("Learn %s with hands-on practice", topic),
		PassingScore: LessonPassingScore,
		Questions:    lessonQuestions(topic),
		Rewards: models.Rewards{
			Stars: 1,
			Coins: baseCoins,
			XP:    baseXP,
		},
		Prerequisites: prerequisites(id, models.LevelLesson),
	}
}

func buildTestLevel(id int, topic string, diffIdx, baseXP, baseCoins int) models.Level {
	return models.Level{
		ID:           id,
		Kind:         models.LevelTest,
		Title:        fmt.Sprintf("Assessment Level %d", id),
		Topic:        fmt.Sprintf("%s - Comprehensive Test", topic),
		Difficulty:   difficulties[diffIdx],
		Description:  fmt.Sprintf("Test your mastery of %s", topic),
		PassingScore: TestPassingScore,
		Questions:    testQuestions(id, topic),
		Rewards: models.Rewards{
			Stars: 3,
			Coins: baseCoins * 2,
			XP:    baseXP * 3,
		},
		Prerequisites: prerequisites(id, models.LevelTest),
	}
}

func buildChallengeLevel(id int, topic string, diffIdx, baseXP, baseCoins int) models.Level {
	// Challenges are pitched one difficulty tier above their position.
	challengeIdx := diffIdx + 1
	if challengeIdx >= len(difficulties) {
		challengeIdx = len(difficulties) - 1
	}
	return models.Level{
		ID:           id,
		Kind:         models.LevelChallenge,
		Title:        fmt.Sprintf("Challenge Level %d: Master %s", id, topic),
		Topic:        fmt.Sprintf("%s - Master Challenge", topic),
		Difficulty:   difficulties[challengeIdx],
		Description:  fmt.Sprintf("Ultimate challenge to master %s", topic),
		PassingScore: LessonPassingScore,
		Questions:    challengeQuestions(topic),
		Rewards: models.Rewards{
			Stars: 5,
			Coins: baseCoins * 3,
			XP:    baseXP * 4,
		},
		Prerequisites: prerequisites(id, models.LevelChallenge),
	}
}

// prerequisites never reference an id at or above the level's own: lessons
// need the previous level, tests a window of 5 recent levels, challenges a
// window of 10.
func prerequisites(id int, kind models.LevelKind) []int {
	if id == 1 {
		return nil
	}

	window := 1
	switch kind {
	case models.LevelTest:
		window = 5
	case models.LevelChallenge:
		window = 10
	}

	start := id - window
	if start < 1 {
		start = 1
	}
	prereqs := make([]int, 0, id-start)
	for p := start; p < id; p++ {
		prereqs = append(prereqs, p)
	}
	return prereqs
}
