package scoring

// Scoring tracks score, level and cleared lines for one session.
type Scoring struct {
	// public
	CurrentScore int
	Level        int
	Lines        int
	// private
	scoreTable map[string]int
}

// InitScoring creates a Scoring at level 1 with zero score, using the given
// points per cleared row and per-level threshold step.
func InitScoring(pointsPerRow, levelThreshold int) *Scoring {
	s := &Scoring{
		scoreTable: getScoreTable(),
	}
	if pointsPerRow > 0 {
		s.scoreTable["rowCleared"] = pointsPerRow
	}
	if levelThreshold > 0 {
		s.scoreTable["levelThreshold"] = levelThreshold
	}
	s.Reset()
	return s
}

// ApplyClear scores a single landing that removed rowsCleared rows. Points
// are flat per row. The level goes up by one when the score reaches
// levelThreshold times the current level; one landing raises the level at
// most once, even if the score passes several thresholds.
func (s *Scoring) ApplyClear(rowsCleared int) (scoreDelta int, leveledUp bool) {
	if rowsCleared <= 0 {
		return 0, false
	}
	scoreDelta = s.scoreTable["rowCleared"] * rowsCleared
	s.CurrentScore += scoreDelta
	s.Lines += rowsCleared

	if s.CurrentScore >= s.NextLevelAt() {
		s.Level++
		leveledUp = true
	}
	return scoreDelta, leveledUp
}

// NextLevelAt is the score at which the next level-up happens.
func (s *Scoring) NextLevelAt() int {
	return s.scoreTable["levelThreshold"] * s.Level
}

// Reset returns to level 1 with no score and no lines.
func (s *Scoring) Reset() {
	s.CurrentScore = 0
	s.Level = 1
	s.Lines = 0
}

// getScoreTable returns the default values for scoring rules.
func getScoreTable() map[string]int {
	return map[string]int{
		"rowCleared":     10,
		"levelThreshold": 100,
	}
}
