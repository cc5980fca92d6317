package models

// LevelKind identifies the flavor of a catalog level.
type LevelKind string

const (
	LevelLesson    LevelKind = "lesson"
	LevelTest      LevelKind = "test"
	LevelChallenge LevelKind = "challenge"
)

// Level is an immutable catalog entry. Levels are generated once at startup
// and shared by reference; nothing mutates them after construction.
type Level struct {
	ID            int        `json:"id"`
	Kind          LevelKind  `json:"kind"`
	Title         string     `json:"title"`
	Topic         string     `json:"topic"`
	Difficulty    string     `json:"difficulty"`
	Description   string     `json:"description"`
	PassingScore  float64    `json:"passing_score"`
	Questions     []Question `json:"questions"`
	Rewards       Rewards    `json:"rewards"`
	Prerequisites []int      `json:"prerequisites"`
}

// Rewards is the base grant for a passing attempt, before the stars multiplier.
type Rewards struct {
	Stars int `json:"stars"`
	Coins int `json:"coins"`
	XP    int `json:"xp"`
}

// LevelMapEntry is the level-select view of one level for a given player.
type LevelMapEntry struct {
	ID         int       `json:"id"`
	Kind       LevelKind `json:"kind"`
	Title      string    `json:"title"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Completed  bool      `json:"completed"`
	Unlocked   bool      `json:"unlocked"`
	Stars      int       `json:"stars"`
	Attempts   int       `json:"attempts"`
	Rewards    Rewards   `json:"rewards"`
}

// LevelView is a level as shown to a player who has unlocked it. Correct answers
// and expected concepts are stripped so the client cannot read them.
type LevelView struct {
	ID           int            `json:"id"`
	Kind         LevelKind      `json:"kind"`
	Title        string         `json:"title"`
	Topic        string         `json:"topic"`
	Difficulty   string         `json:"difficulty"`
	Description  string         `json:"description"`
	PassingScore float64        `json:"passing_score"`
	Questions    []QuestionView `json:"questions"`
	Rewards      Rewards        `json:"rewards"`
	Stars        int            `json:"stars"`
	Attempts     int            `json:"attempts"`
	Completed    bool           `json:"completed"`
}
