package tetris

import "time"

// Scoring and progression constants.
const (
	HardDropPoints = 2  // Per row travelled by a hard drop
	SoftDropPoints = 1  // Per successful soft-drop step
	LinesPerLevel  = 10 // Cleared lines needed to advance a level
	MaxLevel       = 20

	BaseDropInterval = time.Second
	DropIntervalStep = 50 * time.Millisecond
	MinDropInterval  = 50 * time.Millisecond
)

// lineClearScores is indexed by the number of rows cleared at once.
var lineClearScores = [...]int{0, 40, 100, 300, 1200}

// BaseScore returns the unscaled award for clearing n rows at once.
// Counts outside 0..4 score nothing.
func BaseScore(n int) int {
	if n < 0 || n >= len(lineClearScores) {
		return 0
	}
	return lineClearScores[n]
}

// ClearScore returns the points for clearing n rows while at the given level.
func ClearScore(n, level int) int {
	return BaseScore(n) * (level + 1)
}

// LevelForLines returns the level reached after clearing the given number of lines.
func LevelForLines(lines int) int {
	return min(MaxLevel, lines/LinesPerLevel+1)
}

// DropIntervalForLevel returns the gravity interval at the given level.
func DropIntervalForLevel(level int) time.Duration {
	return max(MinDropInterval, BaseDropInterval-time.Duration(level-1)*DropIntervalStep)
}
