package tetris

import "time"

// DefaultBaseScore is the score of a single cleared line
const DefaultBaseScore = 100

// NewScorer creates a scorer; base <= 0 uses DefaultBaseScore
func NewScorer(base int, startLevel int) *Scorer {
	if base <= 0 {
		base = DefaultBaseScore
	}
	startLevel = ClampLevel(startLevel)
	return &Scorer{
		base:       base,
		startLevel: startLevel,
		level:      startLevel,
	}
}

// ClampLevel bounds a level to 1..30
func ClampLevel(level int) int {
	return min(max(level, 1), maxLevel)
}

// Points returns the reward for clearing lines at once.
// Four lines pay one and a half times the regular reward.
func (scorer *Scorer) Points(lines int) int {
	if lines <= 0 {
		return 0
	}
	points := lines * scorer.base
	if lines == 4 {
		points = int(float64(points) * 1.5)
	}
	return points
}

// AddLines adds cleared lines and their points, returning the new score
func (scorer *Scorer) AddLines(lines int) int {
	if lines <= 0 {
		return scorer.score
	}

	scorer.lines = min(scorer.lines+lines, maxLines)
	scorer.AddScore(scorer.Points(lines))

	scorer.level = ClampLevel(max(scorer.startLevel, 1+scorer.lines/10))
	return scorer.score
}

// AddScore adds to score
func (scorer *Scorer) AddScore(add int) {
	scorer.score = min(scorer.score+add, maxScore)
}

// Reset clears score and lines and returns to the start level
func (scorer *Scorer) Reset() {
	scorer.score = 0
	scorer.lines = 0
	scorer.level = scorer.startLevel
}

// Score returns the accumulated score
func (scorer *Scorer) Score() int {
	return scorer.score
}

// Lines returns the total cleared lines
func (scorer *Scorer) Lines() int {
	return scorer.lines
}

// Level returns the current level
func (scorer *Scorer) Level() int {
	return scorer.level
}

// TickTime returns the gravity interval for a level
func TickTime(level int) time.Duration {
	switch level = ClampLevel(level); {
	case level > 29:
		return 10 * time.Millisecond
	case level > 25:
		return 20 * time.Millisecond
	case level > 19:
		// 50 to 30
		return time.Duration(10*(15-level/2)) * time.Millisecond
	case level > 9:
		// 150 to 60
		return time.Duration(10*(25-level)) * time.Millisecond
	default:
		// 480 to 160
		return time.Duration(10*(52-4*level)) * time.Millisecond
	}
}
