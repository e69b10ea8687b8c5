package game

const (
	MaxLevels   = 3
	MaxGridSize = 100

	// ScreenOffset is added to grid coordinates when drawing.
	ScreenOffset = 3

	// SpawnRow and SpawnCol are in grid space.
	SpawnRow = 17
	SpawnCol = 1

	MaxNameLength        = 10
	DefaultHighScoreName = "Default"
	DefaultPlayerName    = "Player"

	DefaultScoreFile = "score.dat"
	DefaultDBPath    = "highscores.db"
	DefaultLogFile   = "mulawee.log"
)

// Config carries the runtime options chosen at process startup.
type Config struct {
	LevelDir    string // empty means the embedded levels
	ScoreFile   string
	ScoreStore  string // "file" or "sqlite"
	Frontend    string // "tea" or "tcell"
	LegacyTurns bool
	LogFile     string
	Debug       bool
}

func DefaultConfig() Config {
	return Config{
		ScoreFile:  DefaultScoreFile,
		ScoreStore: "file",
		Frontend:   "tea",
		LogFile:    DefaultLogFile,
	}
}

// SpawnPosition returns the fixed grid-space start cell shared by every level.
func SpawnPosition() Position {
	return Position{Row: SpawnRow, Col: SpawnCol}
}
